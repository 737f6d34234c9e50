package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
data:
  restaurants_path: "./data/restaurants.csv"
  hotels_path: "./data/hotels.csv"
  vehicles_path: "./data/vehicles.csv"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Data.RestaurantsPath == "" {
		t.Error("restaurants_path should be set")
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: "localhost"
  port: 8080
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "localhost"
  port: 8080
data:
  restaurants_path: "./data/restaurants.csv"
  hotels_path: "./data/hotels.csv"
  vehicles_path: "./data/vehicles.csv"
  database_path: "./data/annai.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	wantRestaurants := filepath.Join(dir, "data", "restaurants.csv")
	if cfg.Data.RestaurantsPath != wantRestaurants {
		t.Errorf("restaurants_path = %s, want %s", cfg.Data.RestaurantsPath, wantRestaurants)
	}
	wantDB := filepath.Join(dir, "data", "annai.db")
	if cfg.Data.DatabasePath != wantDB {
		t.Errorf("database_path = %s, want %s", cfg.Data.DatabasePath, wantDB)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Engine.TopN != 5 {
		t.Errorf("default top_n: got %d", cfg.Engine.TopN)
	}
	if cfg.Engine.Percentile != 0.3 {
		t.Errorf("default percentile: got %v", cfg.Engine.Percentile)
	}
	if cfg.Engine.BestMinRating != 4.0 || cfg.Engine.WorstMaxRating != 3.0 || cfg.Engine.QualityMinRating != 3.5 {
		t.Errorf("default rating bounds: %+v", cfg.Engine)
	}
	if cfg.Watch.DebounceMS != 500 {
		t.Errorf("default debounce: got %d", cfg.Watch.DebounceMS)
	}
}

func TestApplyDefaults_keepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Engine.TopN = 10
	ApplyDefaults(cfg)
	if cfg.Server.Port != 9999 {
		t.Errorf("explicit port overwritten: got %d", cfg.Server.Port)
	}
	if cfg.Engine.TopN != 10 {
		t.Errorf("explicit top_n overwritten: got %d", cfg.Engine.TopN)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := &Config{}
	ApplyDefaults(cfg)
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != cfg.Server.Port {
		t.Errorf("roundtrip port: got %d, want %d", loaded.Server.Port, cfg.Server.Port)
	}
}
