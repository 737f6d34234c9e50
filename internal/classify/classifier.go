// Package classify decides which entity domain a free-text query is about.
//
// The decision is a prioritized rule chain: an ordered list of rules
// evaluated until one fires, from most-specific evidence (a verbatim catalog
// name in the query) to least (a heuristic word hint), with Restaurant as the
// documented final default.
package classify

import (
	"regexp"
	"strings"

	"github.com/hyperjump/annai/internal/lexicon"
	"github.com/hyperjump/annai/internal/models"
	"go.uber.org/zap"
)

// CatalogNames carries the catalog name columns the direct-name rule checks.
// Names must be lower-cased; the store provides them that way.
type CatalogNames struct {
	Hotels   []string
	Vehicles []string
}

// Classifier classifies queries into an EntityDomain. Safe for concurrent use.
type Classifier struct {
	rules  []rule
	logger *zap.Logger
}

// rule is one link of the chain: it either fires with a domain or passes.
type rule struct {
	name string
	fire func(q *queryContext) (models.EntityDomain, bool)
}

// queryContext is the pre-processed view of one query shared by all rules.
type queryContext struct {
	text   string // lower-cased raw query
	tokens []string
	names  CatalogNames
}

// NewClassifier creates a Classifier. logger may be nil.
func NewClassifier(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{logger: logger}
	c.rules = []rule{
		{"direct_name", ruleDirectName},
		{"keyword_substring_count", ruleSubstringCount},
		{"forced_override", ruleForcedOverride},
		{"keyword_token_count", ruleTokenCount},
		{"heuristic", ruleHeuristic},
	}
	return c
}

// Classify returns the entity domain for query. It never fails: any internal
// panic is downgraded to the Restaurant default.
func (c *Classifier) Classify(query string, names CatalogNames) (domain models.EntityDomain) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("classification panic, defaulting to restaurant", zap.Any("panic", r))
			domain = models.DomainRestaurant
		}
	}()

	q := &queryContext{
		text:   strings.ToLower(query),
		tokens: strings.Fields(strings.ToLower(query)),
		names:  names,
	}
	for _, r := range c.rules {
		if d, ok := r.fire(q); ok {
			c.logger.Debug("query classified",
				zap.String("rule", r.name),
				zap.String("domain", string(d)),
			)
			return d
		}
	}
	return models.DomainRestaurant
}

// ruleDirectName fires when the query names a specific catalog entity.
// Named-entity precision outranks heuristic recall, so this runs first.
func ruleDirectName(q *queryContext) (models.EntityDomain, bool) {
	for _, name := range q.names.Hotels {
		if len(name) > 3 && strings.Contains(q.text, name) {
			return models.DomainHotel, true
		}
	}
	for _, name := range q.names.Vehicles {
		if len(name) > 3 && strings.Contains(q.text, name) {
			return models.DomainVehicle, true
		}
	}
	// Popular scooter model referenced by bare model name.
	if containsToken(q.tokens, "activa") {
		for _, name := range q.names.Vehicles {
			if strings.Contains(name, "activa") {
				return models.DomainVehicle, true
			}
		}
	}
	return "", false
}

// ruleSubstringCount counts how many keywords of each domain occur anywhere
// in the query text (substring containment, not tokenized equality). The
// strictly highest count wins; ties fall through.
func ruleSubstringCount(q *queryContext) (models.EntityDomain, bool) {
	return pickStrictMax(
		countSubstrings(q.text, lexicon.RestaurantKeywords),
		countSubstrings(q.text, lexicon.HotelKeywords),
		countSubstrings(q.text, lexicon.VehicleKeywords),
	)
}

// ruleForcedOverride handles short queries with exactly one unambiguous
// keyword hit, which is not enough to win the count comparison.
func ruleForcedOverride(q *queryContext) (models.EntityDomain, bool) {
	for _, w := range []string{"hotel", "pool", "swimming pool"} {
		if strings.Contains(q.text, w) {
			return models.DomainHotel, true
		}
	}
	for _, w := range []string{"suv", "car", "seat", "passenger"} {
		if strings.Contains(q.text, w) {
			return models.DomainVehicle, true
		}
	}
	return "", false
}

// ruleTokenCount recounts keywords with exact whitespace-tokenized matches,
// stricter than the substring pass. Kept distinct deliberately: the two
// passes behave differently on compound words.
func ruleTokenCount(q *queryContext) (models.EntityDomain, bool) {
	return pickStrictMax(
		countTokens(q.tokens, lexicon.RestaurantKeywords),
		countTokens(q.tokens, lexicon.HotelKeywords),
		countTokens(q.tokens, lexicon.VehicleKeywords),
	)
}

var peopleCountPattern = regexp.MustCompile(`(?:for|with|seats)\s+\d+\s+(?:people|persons|person|passengers)`)

// ruleHeuristic is the last evidence-based fallback before the default.
func ruleHeuristic(q *queryContext) (models.EntityDomain, bool) {
	for _, cuisine := range lexicon.Cuisines {
		if strings.Contains(q.text, cuisine) {
			return models.DomainRestaurant, true
		}
	}
	for _, w := range []string{"room", "stay", "night", "spa", "accommodation"} {
		if strings.Contains(q.text, w) {
			return models.DomainHotel, true
		}
	}
	for _, w := range []string{"drive", "ride", "seat", "capacity"} {
		if strings.Contains(q.text, w) {
			return models.DomainVehicle, true
		}
	}
	if peopleCountPattern.MatchString(q.text) {
		return models.DomainVehicle, true
	}
	return "", false
}

func countSubstrings(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func countTokens(tokens []string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if containsToken(tokens, kw) {
			n++
		}
	}
	return n
}

func containsToken(tokens []string, word string) bool {
	for _, t := range tokens {
		if t == word {
			return true
		}
	}
	return false
}

// pickStrictMax returns the domain with the strictly highest count, or
// passes when the maximum is zero or tied.
func pickStrictMax(restaurant, hotel, vehicle int) (models.EntityDomain, bool) {
	switch {
	case restaurant > hotel && restaurant > vehicle:
		return models.DomainRestaurant, true
	case hotel > restaurant && hotel > vehicle:
		return models.DomainHotel, true
	case vehicle > restaurant && vehicle > hotel:
		return models.DomainVehicle, true
	}
	return "", false
}
