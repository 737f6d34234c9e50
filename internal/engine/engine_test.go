package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/hyperjump/annai/internal/models"
)

func testRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{Name: "Trattoria Roma", PriceRangeFrom: 300, PriceRangeTo: 600, Rating: 4.5, ReviewCount: 120, Address: "hill road, bandra, mumbai", Cuisines: "italian, pizza"},
		{Name: "Curry Leaf", PriceRangeFrom: 100, PriceRangeTo: 300, Rating: 4.2, ReviewCount: 80, Address: "sv road, borivali, mumbai", Cuisines: "south indian, indian"},
		{Name: "Golden Dragon", PriceRangeFrom: 800, PriceRangeTo: 1500, Rating: 4.7, ReviewCount: 200, Address: "juhu tara road, juhu, mumbai", Cuisines: "chinese, asian"},
		{Name: "Pasta Palace", PriceRangeFrom: 200, PriceRangeTo: 450, Rating: 3.9, ReviewCount: 40, Address: "linking road, bandra, mumbai", Cuisines: "italian, continental"},
		{Name: "Noodle Shack", PriceRangeFrom: 50, PriceRangeTo: 150, Rating: 2.5, ReviewCount: 10, Address: "station road, thane", Cuisines: "chinese, fast food"},
		{Name: "Corner Cafe", PriceRangeFrom: 100, PriceRangeTo: 250, Rating: math.NaN(), ReviewCount: math.NaN(), Address: "mg road, thane", Cuisines: "cafe"},
	}
}

func testHotels() []models.Hotel {
	return []models.Hotel{
		{Name: "Grand Orchid", Price: 4500, Rating: 4.6, Location: "linking road, bandra, mumbai", Amenities: "wifi, pool, gym, spa", Category: "luxury", Description: "Rooftop pool and sea view."},
		{Name: "Budget Stay", Price: 1200, Rating: 2.9, Location: "station road, borivali, mumbai", Amenities: "wifi, parking", Category: "budget", Description: "Simple rooms near the station."},
		{Name: "Sea View Inn", Price: 2800, Rating: 4.1, Location: "juhu beach road, juhu, mumbai", Amenities: "wifi, breakfast, bar", Category: "family", Description: "Breakfast included, walking distance to the beach."},
		{Name: "City Comfort", Price: 2000, Rating: 3.8, Location: "mg road, thane", Amenities: "parking, restaurant", Category: "business", Description: "Business center and meeting rooms."},
	}
}

func testVehicles() []models.Vehicle {
	return []models.Vehicle{
		{Name: "Honda Activa 6G", PricePerDay: 400, PricePerHour: 60, Rating: 4.3, Passengers: 2, PickupLocation: "borivali west, mumbai", DropOffLocation: "borivali west, mumbai", Type: "scooter", Preference: "cheap"},
		{Name: "Maruti Swift", PricePerDay: 1500, PricePerHour: 200, Rating: 4.1, Passengers: 4, PickupLocation: "andheri east, mumbai", DropOffLocation: "bandra, mumbai", Type: "car", Preference: "cheap"},
		{Name: "Toyota Fortuner", PricePerDay: 4500, PricePerHour: 600, Rating: 4.6, Passengers: 7, PickupLocation: "bandra west, mumbai", DropOffLocation: "bandra west, mumbai", Type: "suv", Preference: "luxury"},
		{Name: "Mahindra Scorpio", PricePerDay: 3200, PricePerHour: 450, Rating: 4.0, Passengers: 7, PickupLocation: "thane west", DropOffLocation: "thane west", Type: "suv", Preference: "luxury"},
		{Name: "Eicher Starline", PricePerDay: 6000, PricePerHour: 800, Rating: 3.6, Passengers: 20, PickupLocation: "dadar, mumbai", DropOffLocation: "dadar, mumbai", Type: "bus", Preference: "cheap"},
	}
}

func names(rs []models.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestRecommendRestaurants_cheapCascade(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:     "cheap italian restaurants in mumbai under 700 with rating above 4",
		MaxPrice:  models.Float64(700),
		MinRating: models.Float64(4),
		Location:  "mumbai",
		Cuisine:   "italian",
		Intent:    models.IntentCheap,
	}
	got, _ := e.RecommendRestaurants(cs, testRestaurants(), 0)
	if want := []string{"Trattoria Roma"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("got %v, want %v", names(got), want)
	}
}

func TestRecommendRestaurants_percentileCutWithoutNumericBound(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:      "cheap places",
		PriceLevel: models.PriceLevelCheap,
		Intent:     models.IntentCheap,
	}
	got, _ := e.RecommendRestaurants(cs, testRestaurants(), 0)
	// 30% of 6 rows truncates to 1: the single cheapest by price ceiling.
	if want := []string{"Noodle Shack"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("got %v, want %v", names(got), want)
	}
}

func TestRecommendRestaurants_bestDropsUnratedRows(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:       "best restaurants",
		RatingLevel: models.RatingLevelHigh,
		Intent:      models.IntentBest,
	}
	got, _ := e.RecommendRestaurants(cs, testRestaurants(), 0)
	want := []string{"Golden Dragon", "Trattoria Roma", "Curry Leaf"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("got %v, want %v", names(got), want)
	}
}

func TestRecommendRestaurants_defaultIntentUsesQualityMix(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{Query: "somewhere to eat"}
	got, _ := e.RecommendRestaurants(cs, testRestaurants(), 0)
	if len(got) == 0 {
		t.Fatal("quality mix fallback returned nothing")
	}
	// Curry Leaf has the best rating-per-rupee blend in the fixture.
	if got[0].Name != "Curry Leaf" {
		t.Errorf("top result = %s, want Curry Leaf", got[0].Name)
	}
}

func TestQualityScore_boundedZeroToOne(t *testing.T) {
	e := NewEngine(nil, nil)
	rows := restaurantRows(testRestaurants())
	e.applyQualityScore(rows)
	for _, r := range rows {
		if math.IsNaN(r.rating) {
			continue
		}
		if r.score < 0 || r.score > 1 {
			t.Errorf("score %v for %s out of [0,1]", r.score, r.name)
		}
	}
}

func TestRecommendRestaurants_alternativesFromSimilarCuisines(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:           "italian restaurants",
		Cuisine:         "italian",
		SimilarCuisines: []string{"mediterranean", "pizza", "pasta"},
		Intent:          models.IntentCuisine,
	}
	_, alts := e.RecommendRestaurants(cs, testRestaurants(), 0)
	if len(alts) != 1 {
		t.Fatalf("alternatives = %v", alts)
	}
	want := "If you like Italian cuisine, you might also enjoy: Mediterranean, Pizza, Pasta"
	if alts[0] != want {
		t.Errorf("got %q, want %q", alts[0], want)
	}
}

func TestRecommendRestaurants_alternativesEvenWhenEmpty(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:           "impossible italian",
		Cuisine:         "italian",
		SimilarCuisines: []string{"pizza"},
		MinRating:       models.Float64(5),
		Intent:          models.IntentCuisine,
	}
	got, alts := e.RecommendRestaurants(cs, testRestaurants(), 0)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", names(got))
	}
	if len(alts) != 1 {
		t.Errorf("alternatives should still be suggested, got %v", alts)
	}
}

func TestRecommendRestaurants_topNTruncates(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{Query: "food"}
	got, _ := e.RecommendRestaurants(cs, testRestaurants(), 2)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRecommendRestaurants_deterministic(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{Query: "food in mumbai", Location: "mumbai", Intent: models.IntentLocation}
	first, _ := e.RecommendRestaurants(cs, testRestaurants(), 0)
	second, _ := e.RecommendRestaurants(cs, testRestaurants(), 0)
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("results differ across runs: %v vs %v", names(first), names(second))
	}
}

func TestRecommendRestaurants_extraConstraintNeverWidens(t *testing.T) {
	e := NewEngine(nil, nil)
	base := &models.ConstraintSet{Query: "restaurants in mumbai", Location: "mumbai", Intent: models.IntentLocation}
	narrowed := &models.ConstraintSet{
		Query:     "restaurants in mumbai rated 4",
		Location:  "mumbai",
		MinRating: models.Float64(4),
		Intent:    models.IntentLocation,
	}
	wide, _ := e.RecommendRestaurants(base, testRestaurants(), 100)
	narrow, _ := e.RecommendRestaurants(narrowed, testRestaurants(), 100)
	if len(narrow) > len(wide) {
		t.Errorf("narrowed query returned more rows (%d) than base (%d)", len(narrow), len(wide))
	}
}

func TestRecommendHotels_directNameShortCircuits(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{Query: "book grand orchid for two nights"}
	got := e.RecommendHotels(cs, testHotels(), 0)
	if len(got) != 1 || got[0].Name != "Grand Orchid" {
		t.Errorf("got %+v, want single Grand Orchid", got)
	}
}

func TestRecommendHotels_amenityScoring(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:     "hotels with pool",
		Amenities: []string{"pool"},
		Intent:    models.IntentAmenities,
	}
	got := e.RecommendHotels(cs, testHotels(), 0)
	if len(got) != 1 || got[0].Name != "Grand Orchid" {
		t.Errorf("got %+v, want single Grand Orchid", got)
	}
}

func TestRecommendHotels_amenityRelaxesToDescription(t *testing.T) {
	e := NewEngine(nil, nil)
	hotels := []models.Hotel{
		{Name: "Harbour Lodge", Price: 2200, Rating: 4.0, Location: "harbour road, mumbai", Amenities: "wifi", Description: "Spacious rooms overlooking the harbour."},
		{Name: "Plain Stay", Price: 900, Rating: 3.1, Location: "station road, thane", Amenities: "parking", Description: "No frills lodging."},
	}
	cs := &models.ConstraintSet{
		Query:     "hotel with spa",
		Amenities: []string{"spa"},
		Intent:    models.IntentAmenities,
	}
	// No whole-word "spa" anywhere, but "Spacious" contains it as a
	// substring, so the relaxed description pass keeps Harbour Lodge.
	got := e.RecommendHotels(cs, hotels, 0)
	if len(got) != 1 || got[0].Name != "Harbour Lodge" {
		t.Errorf("got %+v, want single Harbour Lodge", got)
	}
}

func TestRecommendHotels_worstUsesRatingCeiling(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:       "worst hotels",
		RatingLevel: models.RatingLevelLow,
		Intent:      models.IntentWorst,
	}
	got := e.RecommendHotels(cs, testHotels(), 0)
	if len(got) != 1 || got[0].Name != "Budget Stay" {
		t.Errorf("got %+v, want single Budget Stay", got)
	}
}

func TestRecommendHotels_categoryFilter(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:    "luxury hotels",
		Category: "luxury",
		Intent:   models.IntentCategory,
	}
	got := e.RecommendHotels(cs, testHotels(), 0)
	if len(got) != 1 || got[0].Name != "Grand Orchid" {
		t.Errorf("got %+v, want single Grand Orchid", got)
	}
}

func TestRecommendVehicles_directNameShortCircuits(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{Query: "rent the honda activa 6g today"}
	got := e.RecommendVehicles(cs, testVehicles(), 0)
	if len(got) != 1 || got[0].Name != "Honda Activa 6G" {
		t.Errorf("got %+v, want single Honda Activa 6G", got)
	}
}

func TestRecommendVehicles_capacity(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:      "vehicle for 4 passengers",
		Passengers: 4,
		Intent:     models.IntentCapacity,
	}
	got := e.RecommendVehicles(cs, testVehicles(), 0)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0].Name != "Toyota Fortuner" {
		t.Errorf("top result = %s, want Toyota Fortuner", got[0].Name)
	}
	for _, v := range got {
		if v.Passengers < 4 {
			t.Errorf("%s seats %v, below requested capacity", v.Name, v.Passengers)
		}
	}
}

func TestRecommendVehicles_type(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:       "suv rental",
		VehicleType: "suv",
		Intent:      models.IntentType,
	}
	got := e.RecommendVehicles(cs, testVehicles(), 0)
	want := []string{"Toyota Fortuner", "Mahindra Scorpio"}
	gotNames := make([]string, len(got))
	for i, v := range got {
		gotNames[i] = v.Name
	}
	if !reflect.DeepEqual(gotNames, want) {
		t.Errorf("got %v, want %v", gotNames, want)
	}
}

func TestRecommendVehicles_locationMatchesEitherEnd(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{
		Query:    "vehicles in bandra",
		Location: "bandra",
		Intent:   models.IntentLocation,
	}
	got := e.RecommendVehicles(cs, testVehicles(), 0)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (pickup or drop-off match)", len(got))
	}
	// Maruti Swift only matches on its drop-off location.
	found := false
	for _, v := range got {
		if v.Name == "Maruti Swift" {
			found = true
		}
	}
	if !found {
		t.Error("drop-off-only match missing from results")
	}
}

func TestSortRows_nanOrdersLast(t *testing.T) {
	rows := []row{
		{name: "unrated", rating: math.NaN()},
		{name: "low", rating: 2.0},
		{name: "high", rating: 4.5},
	}
	sortRows(rows, []sortKey{{keyRating, true}})
	if rows[len(rows)-1].name != "unrated" {
		t.Errorf("NaN row not last in descending sort: %v", rows)
	}
	sortRows(rows, []sortKey{{keyRating, false}})
	if rows[len(rows)-1].name != "unrated" {
		t.Errorf("NaN row not last in ascending sort: %v", rows)
	}
}

func TestDirectNameMatch_ignoresShortNames(t *testing.T) {
	rows := []row{{idx: 0, name: "Kia"}}
	if _, ok := directNameMatch(rows, "kia for the weekend"); ok {
		t.Error("three-letter name should not short-circuit")
	}
}

func TestRecommend_emptyDataset(t *testing.T) {
	e := NewEngine(nil, nil)
	cs := &models.ConstraintSet{Query: "anything"}
	if got, _ := e.RecommendRestaurants(cs, nil, 0); len(got) != 0 {
		t.Errorf("got %v from empty dataset", got)
	}
	if got := e.RecommendHotels(cs, nil, 0); len(got) != 0 {
		t.Errorf("got %v from empty dataset", got)
	}
	if got := e.RecommendVehicles(cs, nil, 0); len(got) != 0 {
		t.Errorf("got %v from empty dataset", got)
	}
}

func TestConfig_defaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TopN != 5 || cfg.Percentile != 0.3 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ScoreRatingWeight+cfg.ScorePriceWeight != 1.0 {
		t.Errorf("score weights should sum to 1, got %v", cfg.ScoreRatingWeight+cfg.ScorePriceWeight)
	}
}

func TestEngine_queryTextIsNotAFilter(t *testing.T) {
	e := NewEngine(nil, nil)
	// Same constraints, different raw text: results must match.
	a := &models.ConstraintSet{Query: "cheap food", PriceLevel: models.PriceLevelCheap, Intent: models.IntentCheap}
	b := &models.ConstraintSet{Query: "budget eats please", PriceLevel: models.PriceLevelCheap, Intent: models.IntentCheap}
	ra, _ := e.RecommendRestaurants(a, testRestaurants(), 0)
	rb, _ := e.RecommendRestaurants(b, testRestaurants(), 0)
	if !reflect.DeepEqual(names(ra), names(rb)) {
		t.Errorf("results depend on raw query text: %v vs %v", names(ra), names(rb))
	}
}

func TestRecommendHotels_directNameRequiresVerbatimMatch(t *testing.T) {
	e := NewEngine(nil, nil)
	// "orchid" alone is not a catalog name, so the query goes through the
	// normal cascade instead of returning Grand Orchid by itself.
	cs := &models.ConstraintSet{Query: "orchid getaway please"}
	got := e.RecommendHotels(cs, testHotels(), 0)
	if len(got) == 1 {
		t.Errorf("partial name short-circuited to %s", got[0].Name)
	}
}
