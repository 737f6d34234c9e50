package models

// ConstraintSet is the flat set of recognized filters extracted from a query.
// Only domain-appropriate fields are ever populated (cuisine never appears for
// a hotel query, and so on). The original query text is always retained in
// Query for traceability and direct-name lookup. Zero values mean "not given";
// numeric bounds use pointers so an explicit zero is representable.
type ConstraintSet struct {
	Query string `json:"query"`

	Location string `json:"location,omitempty"`

	MinPrice   *float64   `json:"min_price,omitempty"`
	MaxPrice   *float64   `json:"max_price,omitempty"`
	PriceLevel PriceLevel `json:"price_level,omitempty"`

	MinRating   *float64    `json:"min_rating,omitempty"`
	MaxRating   *float64    `json:"max_rating,omitempty"`
	RatingLevel RatingLevel `json:"rating_level,omitempty"`

	Intent Intent `json:"intent"`

	// Restaurant.
	Cuisine         string   `json:"cuisine,omitempty"`
	SimilarCuisines []string `json:"similar_cuisines,omitempty"`

	// Hotel.
	Category  string   `json:"category,omitempty"`
	Amenities []string `json:"amenities,omitempty"`

	// Vehicle.
	VehicleType string `json:"vehicle_type,omitempty"`
	Passengers  int    `json:"passengers,omitempty"`
	Preference  string `json:"preference,omitempty"`
}

// Float64 returns a pointer to v, for building constraint bounds.
func Float64(v float64) *float64 { return &v }
