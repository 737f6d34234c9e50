package engine

// Config holds the engine's tunable bounds. All values have working
// defaults; zero values are replaced by ApplyDefaults.
type Config struct {
	// TopN is the result list length after sorting.
	TopN int

	// Percentile is the fraction of the table kept when a qualitative
	// price hint ("cheap", "expensive") arrives without a numeric bound.
	Percentile float64

	// BestMinRating is the primary bound for "best" when none is given.
	BestMinRating float64
	// WorstMaxRating is the primary bound for "worst" when none is given.
	WorstMaxRating float64
	// QualityMinRating is the primary bound for the price-quality mix.
	QualityMinRating float64

	// AmenityFieldWeight scores an amenity found in the amenities column.
	AmenityFieldWeight float64
	// AmenityDescriptionWeight scores an amenity found in the description.
	AmenityDescriptionWeight float64

	// ScoreRatingWeight and ScorePriceWeight blend the price-quality score.
	ScoreRatingWeight float64
	ScorePriceWeight  float64
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in defaults for zero values.
func (c *Config) ApplyDefaults() {
	if c.TopN == 0 {
		c.TopN = 5
	}
	if c.Percentile == 0 {
		c.Percentile = 0.3
	}
	if c.BestMinRating == 0 {
		c.BestMinRating = 4.0
	}
	if c.WorstMaxRating == 0 {
		c.WorstMaxRating = 3.0
	}
	if c.QualityMinRating == 0 {
		c.QualityMinRating = 3.5
	}
	if c.AmenityFieldWeight == 0 {
		c.AmenityFieldWeight = 1.0
	}
	if c.AmenityDescriptionWeight == 0 {
		c.AmenityDescriptionWeight = 0.5
	}
	if c.ScoreRatingWeight == 0 {
		c.ScoreRatingWeight = 0.7
	}
	if c.ScorePriceWeight == 0 {
		c.ScorePriceWeight = 0.3
	}
}
