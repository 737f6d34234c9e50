// Package config provides configuration loading and structs for the Annai server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Engine EngineConfig `yaml:"engine"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataConfig holds paths to the dataset files. DatabasePath, when set,
// switches loading to the SQLite database instead of the flat files.
type DataConfig struct {
	RestaurantsPath string `yaml:"restaurants_path"`
	HotelsPath      string `yaml:"hotels_path"`
	VehiclesPath    string `yaml:"vehicles_path"`
	DatabasePath    string `yaml:"database_path"`
}

// EngineConfig holds recommendation tunables.
type EngineConfig struct {
	TopN             int     `yaml:"top_n"`
	Percentile       float64 `yaml:"percentile"`
	BestMinRating    float64 `yaml:"best_min_rating"`
	WorstMaxRating   float64 `yaml:"worst_max_rating"`
	QualityMinRating float64 `yaml:"quality_min_rating"`
}

// WatchConfig holds dataset file watch settings.
type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMS int  `yaml:"debounce_ms"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Data.RestaurantsPath = expandPath(cfg.Data.RestaurantsPath, configDir)
	cfg.Data.HotelsPath = expandPath(cfg.Data.HotelsPath, configDir)
	cfg.Data.VehiclesPath = expandPath(cfg.Data.VehiclesPath, configDir)
	if cfg.Data.DatabasePath != "" {
		cfg.Data.DatabasePath = expandPath(cfg.Data.DatabasePath, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
