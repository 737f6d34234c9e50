package engine

import (
	"math"
	"sort"

	"github.com/hyperjump/annai/internal/models"
)

// Sorting after the cascade is keyed by intent. All sorts are stable, so
// ties fall back to original dataset order and repeated runs over the same
// input produce identical output. NaN values order last in both directions.

func ascLess(a, b float64) bool {
	return !math.IsNaN(a) && (math.IsNaN(b) || a < b)
}

func descLess(a, b float64) bool {
	return !math.IsNaN(a) && (math.IsNaN(b) || a > b)
}

// byKeys builds a less function from ordered (value, descending) keys.
type sortKey struct {
	value func(row) float64
	desc  bool
}

func sortRows(rows []row, keys []sortKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			a, b := k.value(rows[i]), k.value(rows[j])
			if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
				continue
			}
			if k.desc {
				return descLess(a, b)
			}
			return ascLess(a, b)
		}
		return false
	})
}

var (
	keyPriceCeil    = func(r row) float64 { return r.priceCeil }
	keyPriceFloor   = func(r row) float64 { return r.priceFloor }
	keyRating       = func(r row) float64 { return r.rating }
	keyReviews      = func(r row) float64 { return r.reviews }
	keyScore        = func(r row) float64 { return r.score }
	keyAmenityScore = func(r row) float64 { return r.amenityScore }
)

// sortByIntent orders rows for presentation. The price-quality mix computes
// its blended score first; every other intent is a two-key comparison.
func (e *Engine) sortByIntent(rows []row, domain models.EntityDomain, intent models.Intent) []row {
	switch intent {
	case models.IntentCheap:
		sortRows(rows, []sortKey{{keyPriceCeil, false}, {keyRating, true}})
	case models.IntentExpensive:
		sortRows(rows, []sortKey{{keyPriceFloor, true}, {keyRating, true}})
	case models.IntentBest:
		switch domain {
		case models.DomainRestaurant:
			sortRows(rows, []sortKey{{keyRating, true}, {keyReviews, true}})
		case models.DomainHotel:
			sortRows(rows, []sortKey{{keyRating, true}})
		default:
			sortRows(rows, []sortKey{{keyRating, true}, {keyPriceCeil, false}})
		}
	case models.IntentWorst:
		sortRows(rows, []sortKey{{keyRating, false}, {keyPriceFloor, true}})
	case models.IntentAmenities:
		sortRows(rows, []sortKey{{keyAmenityScore, true}, {keyRating, true}, {keyPriceCeil, false}})
	case models.IntentLocation, models.IntentCuisine, models.IntentCategory,
		models.IntentType, models.IntentCapacity:
		sortRows(rows, []sortKey{{keyRating, true}, {keyPriceCeil, false}})
	default: // price_quality_mix
		e.applyQualityScore(rows)
		sortRows(rows, []sortKey{{keyScore, true}})
	}
	return rows
}

// applyQualityScore computes the blended value score, once, over the
// filtered set: ratingWeight × (rating/5) + priceWeight × (1 − price/max).
// Both terms are normalized to [0,1], so the score is bounded in [0,1].
func (e *Engine) applyQualityScore(rows []row) {
	maxPrice := 0.0
	for _, r := range rows {
		if !math.IsNaN(r.priceCeil) && r.priceCeil > maxPrice {
			maxPrice = r.priceCeil
		}
	}
	if maxPrice <= 0 {
		maxPrice = 1
	}
	for i := range rows {
		normRating := rows[i].rating / 5
		normPrice := 1 - rows[i].priceCeil/maxPrice
		rows[i].score = e.config.ScoreRatingWeight*normRating + e.config.ScorePriceWeight*normPrice
	}
}
