package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.RestaurantsPath == "" {
		cfg.Data.RestaurantsPath = "/usr/local/var/annai/data/restaurants.csv"
	}
	if cfg.Data.HotelsPath == "" {
		cfg.Data.HotelsPath = "/usr/local/var/annai/data/hotels.csv"
	}
	if cfg.Data.VehiclesPath == "" {
		cfg.Data.VehiclesPath = "/usr/local/var/annai/data/vehicles.csv"
	}
	if cfg.Engine.TopN == 0 {
		cfg.Engine.TopN = 5
	}
	if cfg.Engine.Percentile == 0 {
		cfg.Engine.Percentile = 0.3
	}
	if cfg.Engine.BestMinRating == 0 {
		cfg.Engine.BestMinRating = 4.0
	}
	if cfg.Engine.WorstMaxRating == 0 {
		cfg.Engine.WorstMaxRating = 3.0
	}
	if cfg.Engine.QualityMinRating == 0 {
		cfg.Engine.QualityMinRating = 3.5
	}
	if cfg.Watch.DebounceMS == 0 {
		cfg.Watch.DebounceMS = 500
	}
}
