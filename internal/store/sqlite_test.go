package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/hyperjump/annai/internal/models"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "annai.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLite_restaurantRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	in := []models.Restaurant{
		{Name: "Trattoria Roma", PriceRangeFrom: 300, PriceRangeTo: 600, Rating: 4.5, ReviewCount: 120, Address: "bandra, mumbai", Cuisines: "italian", Phone: "+91 22 1234"},
		{Name: "Mystery Diner", PriceRangeFrom: 0, PriceRangeTo: 1000, Rating: math.NaN(), ReviewCount: math.NaN(), Address: "mg road"},
	}
	if err := db.ImportRestaurants(ctx, in); err != nil {
		t.Fatal(err)
	}

	got, err := db.Restaurants(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Trattoria Roma" || got[0].Rating != 4.5 {
		t.Errorf("first record mangled: %+v", got[0])
	}
	// NaN maps to NULL on write and back to NaN on read.
	if !math.IsNaN(got[1].Rating) || !math.IsNaN(got[1].ReviewCount) {
		t.Errorf("NULL columns should scan as NaN: %+v", got[1])
	}
}

func TestSQLite_importReplaces(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first := []models.Hotel{{Name: "Old Hotel", Price: 1000, Rating: 3.0}}
	second := []models.Hotel{{Name: "New Hotel", Price: 2000, Rating: 4.0}}
	if err := db.ImportHotels(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := db.ImportHotels(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := db.Hotels(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "New Hotel" {
		t.Errorf("import should replace, got %+v", got)
	}
}

func TestSQLite_vehicleColors(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	in := []models.Vehicle{
		{Name: "Honda Activa 6G", PricePerDay: 400, PricePerHour: 60, Rating: 4.3, Passengers: 2, Type: "scooter", ModelInfo: models.ModelInfo{Colors: []string{"white", "blue"}}},
		{Name: "Maruti Swift", PricePerDay: 1500, PricePerHour: 200, Rating: 4.1, Passengers: 4, Type: "car"},
	}
	if err := db.ImportVehicles(ctx, in); err != nil {
		t.Fatal(err)
	}

	got, err := db.Vehicles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0].ModelInfo.Colors) != 2 || got[0].ModelInfo.Colors[0] != "white" {
		t.Errorf("colors = %v", got[0].ModelInfo.Colors)
	}
	if got[1].ModelInfo.Colors != nil {
		t.Errorf("empty colors should stay nil, got %v", got[1].ModelInfo.Colors)
	}
}

func TestSQLite_counts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.ImportRestaurants(ctx, []models.Restaurant{{Name: "A"}, {Name: "B"}}); err != nil {
		t.Fatal(err)
	}
	if err := db.ImportVehicles(ctx, []models.Vehicle{{Name: "C"}}); err != nil {
		t.Fatal(err)
	}

	restaurants, hotels, vehicles, err := db.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if restaurants != 2 || hotels != 0 || vehicles != 1 {
		t.Errorf("counts = %d/%d/%d", restaurants, hotels, vehicles)
	}
}
