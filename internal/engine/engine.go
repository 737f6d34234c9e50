// Package engine filters and ranks the tabular datasets against an extracted
// constraint set. Each domain and intent pair has a fixed cascade of
// narrowing predicates followed by an intent-specific sort; recommendation
// never fails, degrading to an empty result on any internal error.
package engine

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/annai/internal/models"
)

// Engine produces ranked recommendations. Safe for concurrent use; the
// datasets are passed per call so hot reloads never race with requests.
type Engine struct {
	config *Config
	logger *zap.Logger
}

// NewEngine creates an Engine. cfg and logger may be nil.
func NewEngine(cfg *Config, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.ApplyDefaults()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{config: cfg, logger: logger}
}

// RecommendRestaurants returns at most topN restaurants matching cs, ordered
// by the intent's sort, plus similar-cuisine suggestions when a cuisine was
// recognized. topN <= 0 means the configured default.
func (e *Engine) RecommendRestaurants(cs *models.ConstraintSet, data []models.Restaurant, topN int) (out []models.Restaurant, alternatives []string) {
	defer e.recoverEmpty(cs, func() { out, alternatives = nil, nil })

	rows := restaurantRows(data)
	rows = e.applyCascade(rows, cascadeFor(models.DomainRestaurant, cs.Intent), models.DomainRestaurant, cs)
	rows = e.sortByIntent(rows, models.DomainRestaurant, cs.Intent)

	for _, r := range e.truncate(rows, topN) {
		out = append(out, data[r.idx])
	}
	return out, cuisineAlternatives(cs)
}

// RecommendHotels returns at most topN hotels matching cs. A hotel name
// appearing verbatim in the query short-circuits to that single record.
// Amenity queries use scored matching instead of the plain cascade.
func (e *Engine) RecommendHotels(cs *models.ConstraintSet, data []models.Hotel, topN int) (out []models.Hotel) {
	defer e.recoverEmpty(cs, func() { out = nil })

	rows := hotelRows(data)
	if idx, ok := directNameMatch(rows, cs.Query); ok {
		return []models.Hotel{data[idx]}
	}

	if cs.Intent == models.IntentAmenities && len(cs.Amenities) > 0 {
		rows = e.amenityFilter(rows, cs)
	} else {
		rows = e.applyCascade(rows, cascadeFor(models.DomainHotel, cs.Intent), models.DomainHotel, cs)
	}
	rows = e.sortByIntent(rows, models.DomainHotel, cs.Intent)

	for _, r := range e.truncate(rows, topN) {
		out = append(out, data[r.idx])
	}
	return out
}

// RecommendVehicles returns at most topN vehicles matching cs, with the same
// direct-name short-circuit as hotels.
func (e *Engine) RecommendVehicles(cs *models.ConstraintSet, data []models.Vehicle, topN int) (out []models.Vehicle) {
	defer e.recoverEmpty(cs, func() { out = nil })

	rows := vehicleRows(data)
	if idx, ok := directNameMatch(rows, cs.Query); ok {
		return []models.Vehicle{data[idx]}
	}

	rows = e.applyCascade(rows, cascadeFor(models.DomainVehicle, cs.Intent), models.DomainVehicle, cs)
	rows = e.sortByIntent(rows, models.DomainVehicle, cs.Intent)

	for _, r := range e.truncate(rows, topN) {
		out = append(out, data[r.idx])
	}
	return out
}

func (e *Engine) recoverEmpty(cs *models.ConstraintSet, reset func()) {
	if r := recover(); r != nil {
		e.logger.Warn("recommendation panic, returning empty result",
			zap.Any("panic", r), zap.String("query", cs.Query))
		reset()
	}
}

func (e *Engine) truncate(rows []row, topN int) []row {
	if topN <= 0 {
		topN = e.config.TopN
	}
	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// directNameMatch finds a record whose name appears verbatim in the query.
// Names of three characters or fewer are skipped; they collide with ordinary
// words too often.
func directNameMatch(rows []row, query string) (int, bool) {
	for _, r := range rows {
		name := strings.ToLower(strings.TrimSpace(r.name))
		if len(name) > 3 && strings.Contains(query, name) {
			return r.idx, true
		}
	}
	return 0, false
}

// amenityFilter scores each hotel by requested amenities (a full point for a
// whole-word match in the amenities column, half for a description mention)
// and keeps scored rows, then applies the secondary rating and price bounds.
// Location narrows only when it leaves something; if nothing scored at all,
// the match relaxes to a plain description substring over the original set.
func (e *Engine) amenityFilter(rows []row, cs *models.ConstraintSet) []row {
	scored := rows[:0:0]
	for _, r := range rows {
		score := 0.0
		for _, amenity := range cs.Amenities {
			pat := regexp.MustCompile(`\b` + regexp.QuoteMeta(amenity) + `\b`)
			if pat.MatchString(r.amenities) {
				score += e.config.AmenityFieldWeight
			}
			if pat.MatchString(r.description) {
				score += e.config.AmenityDescriptionWeight
			}
		}
		if score > 0 {
			r.amenityScore = score
			scored = append(scored, r)
		}
	}

	if len(scored) == 0 {
		for _, r := range rows {
			for _, amenity := range cs.Amenities {
				if strings.Contains(r.description, amenity) {
					scored = append(scored, r)
					break
				}
			}
		}
		return scored
	}

	if bound, ok := minRatingBound(step{useLevel: true}, cs, e.config); ok {
		scored = keep(scored, func(r row) bool { return r.rating >= bound })
	}
	if cs.MaxPrice != nil {
		scored = keep(scored, func(r row) bool { return r.priceCeil <= *cs.MaxPrice })
	}
	if cs.MinPrice != nil {
		scored = keep(scored, func(r row) bool { return r.priceFloor >= *cs.MinPrice })
	}
	if cs.Location != "" {
		located := keep(scored, func(r row) bool { return strings.Contains(r.loc, cs.Location) })
		if len(located) > 0 {
			scored = located
		}
	}
	return scored
}

// cuisineAlternatives renders the similar-cuisine suggestion line. It is
// emitted whenever a cuisine with known relatives was recognized, whether or
// not the main result list is empty.
func cuisineAlternatives(cs *models.ConstraintSet) []string {
	if cs.Cuisine == "" || len(cs.SimilarCuisines) == 0 {
		return nil
	}
	titled := make([]string, len(cs.SimilarCuisines))
	for i, c := range cs.SimilarCuisines {
		titled[i] = titleWords(c)
	}
	return []string{fmt.Sprintf("If you like %s cuisine, you might also enjoy: %s",
		titleWords(cs.Cuisine), strings.Join(titled, ", "))}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
