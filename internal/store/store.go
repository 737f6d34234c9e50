package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/annai/internal/models"
)

// Sources names where the datasets come from. When DatabasePath is set the
// datasets load from SQLite; otherwise from the three flat files.
type Sources struct {
	RestaurantsPath string
	HotelsPath      string
	VehiclesPath    string
	DatabasePath    string
}

// Snapshot is one immutable view of the loaded datasets. Callers keep the
// snapshot they were handed; a concurrent reload swaps in a new one without
// touching records already being read.
type Snapshot struct {
	Restaurants []models.Restaurant
	Hotels      []models.Hotel
	Vehicles    []models.Vehicle

	// HotelNames and VehicleNames are the lower-cased record names, used by
	// the classifier for direct-name detection.
	HotelNames   []string
	VehicleNames []string

	LoadedAt time.Time
}

// Store owns the current dataset snapshot and reloads it on demand.
// Safe for concurrent use.
type Store struct {
	sources Sources
	logger  *zap.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates a Store and performs the initial load.
func NewStore(ctx context.Context, sources Sources, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{sources: sources, logger: logger}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the current dataset snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Reload loads all three datasets and atomically swaps the snapshot. On
// error the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) error {
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.logger.Info("datasets loaded",
		zap.Int("restaurants", len(snap.Restaurants)),
		zap.Int("hotels", len(snap.Hotels)),
		zap.Int("vehicles", len(snap.Vehicles)))
	return nil
}

func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if s.sources.DatabasePath != "" {
		snap, err = loadFromDB(ctx, s.sources.DatabasePath)
	} else {
		snap, err = loadFromFiles(s.sources)
	}
	if err != nil {
		return nil, err
	}

	snap.HotelNames = lowerNames(len(snap.Hotels), func(i int) string { return snap.Hotels[i].Name })
	snap.VehicleNames = lowerNames(len(snap.Vehicles), func(i int) string { return snap.Vehicles[i].Name })
	snap.LoadedAt = time.Now()
	return &snap, nil
}

func loadFromFiles(sources Sources) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Restaurants, err = LoadRestaurants(sources.RestaurantsPath); err != nil {
		return snap, fmt.Errorf("restaurants: %w", err)
	}
	if snap.Hotels, err = LoadHotels(sources.HotelsPath); err != nil {
		return snap, fmt.Errorf("hotels: %w", err)
	}
	if snap.Vehicles, err = LoadVehicles(sources.VehiclesPath); err != nil {
		return snap, fmt.Errorf("vehicles: %w", err)
	}
	return snap, nil
}

func loadFromDB(ctx context.Context, dbPath string) (Snapshot, error) {
	var snap Snapshot
	db, err := OpenSQLite(dbPath)
	if err != nil {
		return snap, err
	}
	defer db.Close()

	if snap.Restaurants, err = db.Restaurants(ctx); err != nil {
		return snap, fmt.Errorf("restaurants: %w", err)
	}
	if snap.Hotels, err = db.Hotels(ctx); err != nil {
		return snap, fmt.Errorf("hotels: %w", err)
	}
	if snap.Vehicles, err = db.Vehicles(ctx); err != nil {
		return snap, fmt.Errorf("vehicles: %w", err)
	}
	return snap, nil
}

func lowerNames(n int, name func(int) string) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if s := strings.TrimSpace(name(i)); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}
