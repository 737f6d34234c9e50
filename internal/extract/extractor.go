// Package extract turns raw query text into a ConstraintSet: the flat set of
// recognized filters (location, price, rating, intent, and domain-specific
// fields) that the engine applies. Extraction is independent of ranking and
// never fails; on any internal error the result degrades to the bare query.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperjump/annai/internal/lexicon"
	"github.com/hyperjump/annai/internal/models"
	"go.uber.org/zap"
)

// Extractor extracts constraints from queries. Safe for concurrent use.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an Extractor. logger may be nil.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

var (
	locationPattern = regexp.MustCompile(`(?:in|at|near|around)\s+(\w+\s+\w+|\w+)`)

	maxPricePattern   = regexp.MustCompile(`(?i)(?:under|below|less than|maximum|max)\s+(?:rs\.?|₹)?\s*(\d+)`)
	minPricePattern   = regexp.MustCompile(`(?i)(?:above|over|more than|minimum|min)\s+(?:rs\.?|₹)?\s*(\d+)`)
	priceRangePattern = regexp.MustCompile(`(?i)(?:between|from)\s+(?:rs\.?|₹)?\s*(\d+)\s+(?:to|and|-)\s+(?:rs\.?|₹)?\s*(\d+)`)

	minRatingPattern = regexp.MustCompile(`(?i)(?:rating|rated|score)(?:\s+(?:of|above|over|more than|higher than))?\s+(\d+(?:\.\d+)?)`)
	maxRatingPattern = regexp.MustCompile(`(?i)(?:rating|rated)\s+(?:below|under|less than|lower than)\s+(\d+(?:\.\d+)?)`)

	passengerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:for|with)?\s*(\d+)\s*(?:people|persons|person|passengers|passenger|seats)`),
		regexp.MustCompile(`(\d+)[- ]seater`),
		regexp.MustCompile(`seats\s+(\d+)`),
		regexp.MustCompile(`capacity\s+of\s+(\d+)`),
		regexp.MustCompile(`fits\s+(\d+)`),
	}
)

// Extract returns the constraints recognized in query for the given domain.
// Only domain-appropriate fields are populated. Never fails: any internal
// panic degrades to a ConstraintSet holding only the query text.
func (e *Extractor) Extract(query string, domain models.EntityDomain) (cs models.ConstraintSet) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("constraint extraction panic, degrading to bare query", zap.Any("panic", r))
			cs = models.ConstraintSet{Query: query}
		}
	}()

	text := strings.ToLower(query)
	cs = models.ConstraintSet{Query: text}

	cs.Location = extractLocation(text)
	extractPrice(text, &cs)
	extractRating(text, &cs)

	switch domain {
	case models.DomainRestaurant:
		cs.Cuisine = extractCuisine(text)
		if cs.Cuisine != "" {
			cs.SimilarCuisines = lexicon.SimilarCuisines(cs.Cuisine)
		}
	case models.DomainHotel:
		cs.Category = extractHotelCategory(text)
		cs.Amenities = extractAmenities(text)
	case models.DomainVehicle:
		cs.VehicleType = extractVehicleType(text)
		cs.Passengers = extractPassengers(text)
		cs.Preference = extractVehiclePreference(text)
	}

	cs.Intent = extractIntent(text, domain, &cs)
	return cs
}

// extractLocation matches the known-locality gazetteer by substring, falling
// back to the object of a locality preposition. The fallback is returned
// verbatim even when unrecognized: downstream filtering only needs a
// case-insensitive text match, so best effort is acceptable.
func extractLocation(text string) string {
	for _, loc := range lexicon.Localities {
		if strings.Contains(text, loc) {
			return loc
		}
	}
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractPrice applies the numeric price patterns and the qualitative price
// keywords. A "between N and M" range overrides single-sided bounds.
func extractPrice(text string, cs *models.ConstraintSet) {
	if m := maxPricePattern.FindStringSubmatch(text); m != nil {
		cs.MaxPrice = parsePrice(m[1])
	}
	if m := minPricePattern.FindStringSubmatch(text); m != nil {
		cs.MinPrice = parsePrice(m[1])
	}
	if m := priceRangePattern.FindStringSubmatch(text); m != nil {
		cs.MinPrice = parsePrice(m[1])
		cs.MaxPrice = parsePrice(m[2])
	}

	if containsAny(text, "cheap", "budget", "affordable", "inexpensive") {
		cs.PriceLevel = models.PriceLevelCheap
	} else if containsAny(text, "expensive", "luxury", "premium", "high-end") {
		cs.PriceLevel = models.PriceLevelExpensive
	}
}

func parsePrice(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return models.Float64(v)
}

// extractRating applies the numeric rating patterns and the qualitative
// rating keywords. A bare "rated N" is treated as a minimum.
func extractRating(text string, cs *models.ConstraintSet) {
	if m := maxRatingPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			cs.MaxRating = models.Float64(v)
		}
	}
	if m := minRatingPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			cs.MinRating = models.Float64(v)
		}
	}

	if containsAny(text, "best", "top", "highest rated", "excellent") {
		cs.RatingLevel = models.RatingLevelHigh
	} else if containsAny(text, "worst", "lowest rated", "bad", "terrible") {
		cs.RatingLevel = models.RatingLevelLow
	}
}

// extractIntent picks the dominant interpretation by priority: explicit
// sentiment keywords, then domain-specific focus, then locality preposition,
// then the universal price-quality default.
func extractIntent(text string, domain models.EntityDomain, cs *models.ConstraintSet) models.Intent {
	expensiveWords := lexicon.ExpensiveKeywords
	if domain == models.DomainVehicle {
		// Luxury words carry the vehicle preference field, not a price
		// sentiment: "a luxury vehicle for 4 passengers" is a capacity
		// query about premium vehicles, not an expensive-price query.
		expensiveWords = []string{"expensive", "pricey", "costly", "upscale", "fancy"}
	}
	switch {
	case containsAny(text, lexicon.CheapKeywords...):
		return models.IntentCheap
	case containsAny(text, expensiveWords...):
		return models.IntentExpensive
	case containsAny(text, lexicon.BestKeywords...):
		return models.IntentBest
	case containsAny(text, lexicon.WorstKeywords...):
		return models.IntentWorst
	}

	switch domain {
	case models.DomainRestaurant:
		if cs.Cuisine != "" {
			return models.IntentCuisine
		}
	case models.DomainHotel:
		if containsAny(text, lexicon.AmenityPhrases...) || len(cs.Amenities) > 0 {
			return models.IntentAmenities
		}
		if containsAny(text, lexicon.CategoryPhrases...) || cs.Category != "" {
			return models.IntentCategory
		}
	case models.DomainVehicle:
		if containsAny(text, lexicon.VehicleTypeWords...) || cs.VehicleType != "" {
			return models.IntentType
		}
		if containsAny(text, lexicon.CapacityPhrases...) || cs.Passengers > 0 {
			return models.IntentCapacity
		}
	}

	if hasLocalityPreposition(text) {
		return models.IntentLocation
	}
	return models.IntentPriceQualityMix
}

// hasLocalityPreposition checks for a locality preposition: single-word
// prepositions match whole tokens, multi-word phrases match by substring.
func hasLocalityPreposition(text string) bool {
	tokens := strings.Fields(text)
	for _, kw := range lexicon.LocationPrepositions {
		if strings.Contains(kw, " ") {
			if strings.Contains(text, kw) {
				return true
			}
			continue
		}
		for _, t := range tokens {
			if t == kw {
				return true
			}
		}
	}
	return false
}

// extractCuisine returns the first cuisine found as a substring. The lexicon
// orders multi-word cuisines first, so "south indian" wins over "indian".
func extractCuisine(text string) string {
	for _, cuisine := range lexicon.Cuisines {
		if strings.Contains(text, cuisine) {
			return cuisine
		}
	}
	return ""
}

func extractHotelCategory(text string) string {
	for _, category := range lexicon.HotelCategories {
		if strings.Contains(text, category) {
			return category
		}
	}
	return ""
}

// extractAmenities resolves amenity mentions through the synonym map so
// multiple phrasings collapse to one canonical token, deduplicated.
func extractAmenities(text string) []string {
	var out []string
	for _, a := range lexicon.Amenities {
		for _, variation := range a.Variations {
			if strings.Contains(text, variation) {
				out = append(out, a.Canonical)
				break
			}
		}
	}
	return out
}

// extractVehicleType resolves type mentions through the synonym map
// (e.g. "jeep" and "4x4" both normalize to "suv").
func extractVehicleType(text string) string {
	for _, vt := range lexicon.VehicleTypes {
		for _, syn := range vt.Synonyms {
			if strings.Contains(text, syn) {
				return vt.Canonical
			}
		}
	}
	return ""
}

// extractPassengers finds a passenger count from the numeric patterns, with
// two semantic defaults when no number is stated: a family is four, a
// couple is two.
func extractPassengers(text string) int {
	for _, p := range passengerPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	if strings.Contains(text, "family") {
		return 4
	}
	if strings.Contains(text, "couple") || strings.Contains(text, "two people") {
		return 2
	}
	return 0
}

func extractVehiclePreference(text string) string {
	if containsAny(text, "luxury", "premium", "high-end") {
		return "luxury"
	}
	if containsAny(text, "cheap", "budget", "affordable") {
		return "cheap"
	}
	return ""
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
