// Package lexicon holds the static keyword tables the classifier and
// extractor match against. Pure data, no state: every accessor returns the
// same values for the life of the process.
package lexicon

// Domain keyword sets. Used both for substring scoring and for exact
// token counting, so entries are single lower-case words.
var (
	RestaurantKeywords = []string{
		"restaurant", "restaurants", "food", "eat", "dining", "dine",
		"cuisine", "meal", "breakfast", "lunch", "dinner", "cafe", "bistro",
		"eatery", "pizzeria", "steakhouse", "bakery",
	}

	HotelKeywords = []string{
		"hotel", "hotels", "motel", "inn", "stay", "accommodation", "lodge",
		"lodging", "resort", "room", "bed", "suite", "guesthouse", "homestay",
	}

	VehicleKeywords = []string{
		"vehicle", "vehicles", "car", "cars", "bike", "bikes", "motorcycle",
		"scooter", "rental", "rentals", "rent", "transport", "transportation",
		"cab", "taxi", "drive", "driving", "ride", "riding", "bus", "cycle",
	}
)

// Sentiment keyword lists, in intent-priority order.
var (
	CheapKeywords     = []string{"cheap", "budget", "affordable", "inexpensive", "economical", "low price", "low cost"}
	ExpensiveKeywords = []string{"expensive", "luxury", "premium", "high-end", "pricey", "costly", "upscale", "fancy"}
	BestKeywords      = []string{"best", "top", "highest rated", "highly rated", "excellent", "5 star", "five star", "top rated"}
	WorstKeywords     = []string{"worst", "lowest rated", "poorly rated", "bad", "terrible", "avoid"}
)

// LocationPrepositions mark a locality focus ("restaurants in Bandra").
var LocationPrepositions = []string{
	"in", "at", "near", "around", "close to", "vicinity", "area",
	"neighborhood", "zone", "region", "locality", "district",
}

// Localities is the known-locality gazetteer, matched by substring.
var Localities = []string{
	"mumbai", "borivali", "andheri", "bandra", "dadar", "churchgate",
	"kurla", "thane", "powai", "juhu", "malad", "goregaon", "vikhroli",
	"chembur", "ghatkopar", "kandivali", "vile parle", "santacruz",
	"khar", "marine lines", "fort", "mira road", "vasai", "virar",
}

// Cuisines is matched by substring in order, multi-word names first so
// "south indian" wins over "indian".
var Cuisines = []string{
	"south indian", "north indian", "middle eastern", "fast food",
	"street food",
	"indian", "chinese", "italian", "mexican", "japanese", "thai",
	"continental", "mughlai", "asian", "american", "mediterranean",
	"lebanese", "french", "spanish", "greek", "korean", "vietnamese",
	"seafood", "vegetarian", "vegan", "fusion", "pizza", "burger",
	"sushi", "steak", "bbq", "barbecue", "cafe", "bakery", "dessert",
}

// cuisineSimilarity is the static adjacency table behind the "you might
// also enjoy" suggestions. It is never used for filtering.
var cuisineSimilarity = map[string][]string{
	"chinese":        {"asian", "japanese", "korean", "thai", "vietnamese"},
	"japanese":       {"asian", "chinese", "korean", "sushi"},
	"thai":           {"asian", "chinese", "vietnamese"},
	"korean":         {"asian", "japanese", "chinese"},
	"vietnamese":     {"asian", "thai", "chinese"},
	"indian":         {"south indian", "north indian", "mughlai"},
	"south indian":   {"indian", "vegetarian"},
	"north indian":   {"indian", "mughlai"},
	"mughlai":        {"indian", "north indian"},
	"italian":        {"mediterranean", "pizza", "pasta"},
	"mexican":        {"spanish", "american"},
	"mediterranean":  {"greek", "lebanese", "middle eastern", "italian"},
	"middle eastern": {"mediterranean", "lebanese"},
	"american":       {"burger", "fast food", "bbq"},
	"fast food":      {"burger", "american", "street food"},
	"street food":    {"fast food"},
	"vegetarian":     {"vegan", "south indian"},
	"vegan":          {"vegetarian"},
	"seafood":        {"asian", "mediterranean"},
}

// SimilarCuisines returns the similar-cuisine list for cuisine, or nil.
func SimilarCuisines(cuisine string) []string {
	return cuisineSimilarity[cuisine]
}

// HotelCategories is matched by substring against the query.
var HotelCategories = []string{"luxury", "budget", "family", "business", "resort", "friendly"}

// AmenityPhrases flag an amenity-focused hotel query before any single
// amenity is resolved.
var AmenityPhrases = []string{
	"with pool", "free wifi", "gym", "fitness", "breakfast included",
	"spa", "parking", "pet friendly",
}

// CategoryPhrases flag a category-focused hotel query.
var CategoryPhrases = []string{
	"boutique", "resort", "motel", "hostel", "bed and breakfast",
	"family hotel", "business hotel",
}

// Amenity holds one canonical amenity token and the phrasings that
// normalize to it.
type Amenity struct {
	Canonical  string
	Variations []string
}

// Amenities maps query phrasings to the canonical tokens used against the
// dataset's amenities column. Ordered so extraction output is deterministic.
var Amenities = []Amenity{
	{"wifi", []string{"wifi", "wi-fi", "wi fi", "wireless", "internet", "free wifi", "free wi-fi"}},
	{"pool", []string{"pool", "swimming pool", "rooftop pool", "outdoor pool", "indoor pool"}},
	{"gym", []string{"gym", "fitness center", "fitness room", "workout", "exercise"}},
	{"spa", []string{"spa", "wellness", "massage", "sauna"}},
	{"restaurant", []string{"restaurant", "dining", "cafe", "eatery", "food", "fine dining"}},
	{"bar", []string{"bar", "lounge", "pub", "cocktail"}},
	{"breakfast", []string{"breakfast", "complimentary breakfast", "free breakfast", "morning meal"}},
	{"parking", []string{"parking", "free parking", "valet", "car park"}},
	{"air conditioning", []string{"air conditioning", "ac", "a/c", "climate control", "air-conditioned"}},
	{"room service", []string{"room service", "24-hour service", "24/7 service"}},
	{"business", []string{"business center", "conference", "meeting rooms"}},
	{"laundry", []string{"laundry", "dry cleaning", "cleaning service"}},
}

// VehicleType holds one canonical vehicle type and its synonyms.
type VehicleType struct {
	Canonical string
	Synonyms  []string
}

// VehicleTypes maps query phrasings to the canonical types used against the
// dataset's type column. Multi-word and more specific synonyms come before
// the generic ones.
var VehicleTypes = []VehicleType{
	{"suv", []string{"suv", "jeep", "4x4", "four wheel drive"}},
	{"bike", []string{"motorcycle", "motorbike", "bike"}},
	{"scooter", []string{"scooter", "moped", "scooty"}},
	{"cycle", []string{"bicycle", "cycle"}},
	{"bus", []string{"minibus", "bus"}},
	{"van", []string{"van", "tempo"}},
	{"car", []string{"sedan", "hatchback", "car"}},
}

// CapacityPhrases flag a capacity-focused vehicle query.
var CapacityPhrases = []string{
	"seats", "passengers", "people", "person", "capacity", "for 2",
	"for 4", "for 6", "fit",
}

// VehicleTypeWords flag a type-focused vehicle query.
var VehicleTypeWords = []string{"car", "truck", "van", "bus", "motorcycle", "suv", "cycle", "bike"}
