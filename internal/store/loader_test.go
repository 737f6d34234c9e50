package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRestaurants(t *testing.T) {
	path := writeFixture(t, "restaurants.csv", `Name,Price_Range_From,Price_Range_To,Rating,Review_Count,Address,Cuisines,Phone
Trattoria Roma,300,600,4.5,120,"Hill Road, Bandra, Mumbai","Italian, Pizza",+91 22 1234
Mystery Diner,,,not-a-number,,MG Road,,
`)
	got, err := LoadRestaurants(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if first.Name != "Trattoria Roma" {
		t.Errorf("name = %q, should keep original casing", first.Name)
	}
	if first.Address != "hill road, bandra, mumbai" {
		t.Errorf("address = %q, should be lower-cased", first.Address)
	}
	if first.Cuisines != "italian, pizza" {
		t.Errorf("cuisines = %q, should be lower-cased", first.Cuisines)
	}
	if first.Rating != 4.5 || first.ReviewCount != 120 {
		t.Errorf("rating/reviews = %v/%v", first.Rating, first.ReviewCount)
	}

	second := got[1]
	if second.PriceRangeFrom != 0 {
		t.Errorf("missing price floor = %v, want 0", second.PriceRangeFrom)
	}
	if second.PriceRangeTo != 1000 {
		t.Errorf("missing price ceiling = %v, want 1000", second.PriceRangeTo)
	}
	if !math.IsNaN(second.Rating) {
		t.Errorf("unparsable rating = %v, want NaN", second.Rating)
	}
	if !math.IsNaN(second.ReviewCount) {
		t.Errorf("empty review count = %v, want NaN", second.ReviewCount)
	}
}

func TestLoadRestaurants_thousandsSeparator(t *testing.T) {
	path := writeFixture(t, "restaurants.csv", `name,price_range_from,price_range_to,rating,review_count,address,cuisines,phone
Fancy Place,500,"1,200",4.8,"2,340",Marine Drive,continental,
`)
	got, err := LoadRestaurants(path)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].PriceRangeTo != 1200 {
		t.Errorf("price ceiling = %v, want 1200", got[0].PriceRangeTo)
	}
	if got[0].ReviewCount != 2340 {
		t.Errorf("review count = %v, want 2340", got[0].ReviewCount)
	}
}

func TestLoadHotels(t *testing.T) {
	path := writeFixture(t, "hotels.csv", `name,price,rating,location,amenities,category,description
Grand Orchid,4500,4.6,"Linking Road, Bandra","WiFi, Pool, Spa",Luxury,Rooftop Pool and sea view.
`)
	got, err := LoadHotels(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	h := got[0]
	if h.Location != "linking road, bandra" || h.Amenities != "wifi, pool, spa" || h.Category != "luxury" {
		t.Errorf("text fields not lower-cased: %+v", h)
	}
	if h.Description != "Rooftop Pool and sea view." {
		t.Errorf("description = %q, should keep original casing", h.Description)
	}
}

func TestLoadVehicles(t *testing.T) {
	path := writeFixture(t, "vehicles.csv", `name,pricePerDay,pricePerHour,Ratings,Passengers,pickupLocation,dropOffLocation,Type,Preference,Model
Honda Activa 6G,400,60,4.3,2,"Borivali West, Mumbai","Borivali West, Mumbai",Scooter,Cheap,"{'v1': {'color': 'white'}, 'v2': {'color': 'blue'}}"
Maruti Swift,1500,200,4.1,4,Andheri East,Bandra,Car,Cheap,
`)
	got, err := LoadVehicles(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	v := got[0]
	if v.Type != "scooter" || v.Preference != "cheap" {
		t.Errorf("type/preference = %q/%q", v.Type, v.Preference)
	}
	if v.PickupLocation != "borivali west, mumbai" {
		t.Errorf("pickup = %q", v.PickupLocation)
	}
	if len(v.ModelInfo.Colors) != 2 {
		t.Errorf("colors = %v, want two entries", v.ModelInfo.Colors)
	}
	if got[1].ModelInfo.Colors != nil {
		t.Errorf("empty model blob should yield no colors, got %v", got[1].ModelInfo.Colors)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := LoadRestaurants(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_emptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")
	if _, err := LoadHotels(path); err == nil {
		t.Error("expected error for file without header row")
	}
}

func TestTable_raggedRow(t *testing.T) {
	path := writeFixture(t, "ragged.csv", `name,price,rating,location,amenities,category,description
Short Row,1200
`)
	got, err := LoadHotels(path)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Price != 1200 {
		t.Errorf("price = %v", got[0].Price)
	}
	if !math.IsNaN(got[0].Rating) {
		t.Errorf("rating beyond row end = %v, want NaN", got[0].Rating)
	}
	if got[0].Location != "" {
		t.Errorf("location = %q, want empty", got[0].Location)
	}
}
