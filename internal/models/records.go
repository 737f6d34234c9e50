package models

// Catalog records are one row of a loaded dataset. Numeric fields that were
// unparsable in the source are NaN; comparisons against NaN are false, so
// such rows simply never pass a numeric predicate. Text fields used for
// matching arrive lower-cased from the store.

// Restaurant is one row of the restaurant dataset.
type Restaurant struct {
	Name           string
	PriceRangeFrom float64 // 0 when missing
	PriceRangeTo   float64 // 1000 when missing
	Rating         float64 // NaN when missing
	ReviewCount    float64 // NaN when missing
	Address        string  // lower-cased
	Cuisines       string  // lower-cased, comma-separated free text
	Phone          string
}

// Hotel is one row of the hotel dataset.
type Hotel struct {
	Name        string
	Price       float64 // NaN when missing
	Rating      float64 // NaN when missing
	Location    string  // lower-cased
	Amenities   string  // lower-cased free text
	Category    string  // lower-cased
	Description string  // original case, free text
}

// ModelInfo holds the structured attributes recovered from a vehicle's
// model blob. Parse failures degrade to the zero value, never an error.
type ModelInfo struct {
	Colors []string
}

// Vehicle is one row of the vehicle rental dataset.
type Vehicle struct {
	Name            string
	PricePerDay     float64 // NaN when missing
	PricePerHour    float64 // NaN when missing
	Rating          float64 // NaN when missing
	Passengers      float64 // NaN when missing
	PickupLocation  string  // lower-cased
	DropOffLocation string  // lower-cased
	Type            string  // lower-cased
	Preference      string  // lower-cased
	ModelInfo       ModelInfo
}
