package models

// Intent is the dominant interpretation of a query. It selects which filter
// cascade and which sort rule the engine applies. Exactly one intent is
// chosen per query; IntentPriceQualityMix is the universal default.
type Intent string

const (
	IntentCheap     Intent = "cheap"
	IntentExpensive Intent = "expensive"
	IntentBest      Intent = "best"
	IntentWorst     Intent = "worst"
	IntentLocation  Intent = "location"

	// Restaurant-specific.
	IntentCuisine Intent = "cuisine"

	// Hotel-specific.
	IntentCategory  Intent = "category"
	IntentAmenities Intent = "amenities"

	// Vehicle-specific.
	IntentType     Intent = "type"
	IntentCapacity Intent = "capacity"

	// IntentPriceQualityMix is the fallback when nothing else is detected.
	IntentPriceQualityMix Intent = "price_quality_mix"
)

// PriceLevel is a qualitative price hint extracted from the query.
type PriceLevel string

const (
	PriceLevelCheap     PriceLevel = "cheap"
	PriceLevelExpensive PriceLevel = "expensive"
)

// RatingLevel is a qualitative rating hint extracted from the query.
type RatingLevel string

const (
	RatingLevelHigh RatingLevel = "high"
	RatingLevelLow  RatingLevel = "low"
)
