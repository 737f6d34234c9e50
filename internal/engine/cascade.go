package engine

import (
	"sort"
	"strings"

	"github.com/hyperjump/annai/internal/models"
)

// Each (domain, intent) pair has a fixed filter cascade: an ordered sequence
// of narrowing predicates. The first step is the intent's primary axis and
// carries a concrete bound, a relative default (percentile cut), or an
// intent default; later steps apply only when their constraint is present.
// One generic applier walks a declarative step table instead of hand-written
// per-pair filter functions.

type stepKind int

const (
	// stepPriceMax filters priceCeil ≤ max_price; with only a qualitative
	// "cheap" hint it keeps the cheapest percentile instead.
	stepPriceMax stepKind = iota
	// stepPriceMin filters priceFloor ≥ min_price; with only "expensive"
	// it keeps the most expensive percentile.
	stepPriceMin
	// stepPriceMaxOnly and stepPriceMinOnly have no relative default.
	stepPriceMaxOnly
	stepPriceMinOnly
	// stepPriceWorst prefers min_price ≥, falling back to max_price ≤.
	stepPriceWorst
	// stepRatingMin filters rating ≥ bound. The bound is min_rating, or
	// 4.0 for a qualitative "high" when the step honors rating levels, or
	// the step default when neither is given (0 = skip).
	stepRatingMin
	// stepRatingMax filters rating ≤ bound (max_rating, 3.0 for "low",
	// or the step default).
	stepRatingMax
	// stepLocation matches the locality substring in the primary location
	// field; stepLocationEither also accepts the secondary (drop-off).
	stepLocation
	stepLocationEither
	// stepDomainText matches the domain-specific categorical field
	// (cuisines / category / type).
	stepDomainText
	// stepCapacity filters passengers ≥ the requested count.
	stepCapacity
	// stepAmenitiesAll requires every requested amenity in the amenities
	// field. The scored amenity cascade is separate (see amenityFilter).
	stepAmenitiesAll
)

// stepDefault names the intent default used when a rating step has no
// explicit bound: none (skip), the "best" floor, the quality-mix floor, or
// the "worst" ceiling. Concrete values come from Config.
type stepDefault int

const (
	defNone stepDefault = iota
	defBest
	defQuality
	defWorst
)

type step struct {
	kind stepKind
	def  stepDefault
	// useLevel lets qualitative rating hints supply the bound (hotel and
	// vehicle cascades honor them; restaurant ones do not).
	useLevel bool
}

// cascades maps domain × intent to its ordered predicate list. Intents not
// listed for a domain (including the empty intent) fall back to the
// price-quality mix cascade.
var cascades = map[models.EntityDomain]map[models.Intent][]step{
	models.DomainRestaurant: {
		models.IntentCheap:     {{kind: stepPriceMax}, {kind: stepRatingMin}, {kind: stepLocation}, {kind: stepDomainText}},
		models.IntentExpensive: {{kind: stepPriceMin}, {kind: stepRatingMin}, {kind: stepLocation}, {kind: stepDomainText}},
		models.IntentBest:      {{kind: stepRatingMin, def: defBest}, {kind: stepPriceMaxOnly}, {kind: stepDomainText}, {kind: stepLocation}},
		models.IntentWorst:     {{kind: stepRatingMax, def: defWorst}, {kind: stepPriceMinOnly}, {kind: stepDomainText}, {kind: stepLocation}},
		models.IntentLocation:  {{kind: stepLocation}, {kind: stepRatingMin}, {kind: stepPriceMaxOnly}, {kind: stepDomainText}},
		models.IntentCuisine:   {{kind: stepDomainText}, {kind: stepRatingMin}, {kind: stepPriceMaxOnly}, {kind: stepLocation}},

		models.IntentPriceQualityMix: {{kind: stepRatingMin, def: defQuality}, {kind: stepPriceMaxOnly}, {kind: stepLocation}, {kind: stepDomainText}},
	},
	models.DomainHotel: {
		models.IntentCheap:     {{kind: stepPriceMax}, {kind: stepRatingMin, useLevel: true}, {kind: stepLocation}, {kind: stepDomainText}},
		models.IntentExpensive: {{kind: stepPriceMin}, {kind: stepRatingMin, useLevel: true}, {kind: stepLocation}, {kind: stepDomainText}},
		models.IntentBest:      {{kind: stepRatingMin, def: defBest, useLevel: true}, {kind: stepPriceMaxOnly}, {kind: stepLocation}, {kind: stepDomainText}},
		models.IntentWorst:     {{kind: stepRatingMax, def: defWorst, useLevel: true}, {kind: stepPriceWorst}, {kind: stepLocation}, {kind: stepDomainText}},
		models.IntentCategory:  {{kind: stepDomainText}, {kind: stepRatingMin, useLevel: true}, {kind: stepPriceMaxOnly}, {kind: stepLocation}},
		models.IntentLocation:  {{kind: stepLocation}, {kind: stepRatingMin, useLevel: true}, {kind: stepPriceMaxOnly}, {kind: stepAmenitiesAll}},

		models.IntentPriceQualityMix: {{kind: stepRatingMin, def: defQuality, useLevel: true}, {kind: stepPriceMaxOnly}, {kind: stepLocation}, {kind: stepAmenitiesAll}},
	},
	models.DomainVehicle: {
		models.IntentCheap:     {{kind: stepPriceMax}, {kind: stepDomainText}, {kind: stepRatingMin, useLevel: true}, {kind: stepLocation}},
		models.IntentExpensive: {{kind: stepPriceMin}, {kind: stepDomainText}, {kind: stepRatingMin, useLevel: true}, {kind: stepCapacity}},
		models.IntentBest:      {{kind: stepRatingMin, def: defBest, useLevel: true}, {kind: stepDomainText}, {kind: stepPriceMaxOnly}, {kind: stepCapacity}},
		models.IntentWorst:     {{kind: stepRatingMax, def: defWorst, useLevel: true}, {kind: stepDomainText}, {kind: stepPriceMinOnly}, {kind: stepCapacity}},
		models.IntentType:      {{kind: stepDomainText}, {kind: stepPriceMaxOnly}, {kind: stepRatingMin, useLevel: true}, {kind: stepLocation}},
		models.IntentCapacity:  {{kind: stepCapacity}, {kind: stepDomainText}, {kind: stepPriceMaxOnly}, {kind: stepRatingMin, useLevel: true}},
		models.IntentLocation:  {{kind: stepLocationEither}, {kind: stepDomainText}, {kind: stepPriceMaxOnly}, {kind: stepRatingMin, useLevel: true}},

		models.IntentPriceQualityMix: {{kind: stepRatingMin, def: defQuality, useLevel: true}, {kind: stepPriceMaxOnly}, {kind: stepDomainText}, {kind: stepCapacity}},
	},
}

// cascadeFor resolves the step list, defaulting to price_quality_mix.
func cascadeFor(domain models.EntityDomain, intent models.Intent) []step {
	table := cascades[domain]
	if steps, ok := table[intent]; ok {
		return steps
	}
	return table[models.IntentPriceQualityMix]
}

// domainValue returns the categorical constraint matched by stepDomainText.
func domainValue(domain models.EntityDomain, cs *models.ConstraintSet) string {
	switch domain {
	case models.DomainRestaurant:
		return cs.Cuisine
	case models.DomainHotel:
		return cs.Category
	case models.DomainVehicle:
		return cs.VehicleType
	}
	return ""
}

// applyCascade runs each step in order over a shrinking row set. Absent
// constraint keys are no-ops; every step output is a subset of its input
// (the percentile cuts reorder but still only narrow).
func (e *Engine) applyCascade(rows []row, steps []step, domain models.EntityDomain, cs *models.ConstraintSet) []row {
	dv := domainValue(domain, cs)
	for _, st := range steps {
		rows = e.applyStep(rows, st, dv, cs)
	}
	return rows
}

func (e *Engine) applyStep(rows []row, st step, domainVal string, cs *models.ConstraintSet) []row {
	switch st.kind {
	case stepPriceMax:
		if cs.MaxPrice != nil {
			return keep(rows, func(r row) bool { return r.priceCeil <= *cs.MaxPrice })
		}
		if cs.PriceLevel == models.PriceLevelCheap {
			return e.percentileCut(rows, false)
		}
	case stepPriceMin:
		if cs.MinPrice != nil {
			return keep(rows, func(r row) bool { return r.priceFloor >= *cs.MinPrice })
		}
		if cs.PriceLevel == models.PriceLevelExpensive {
			return e.percentileCut(rows, true)
		}
	case stepPriceMaxOnly:
		if cs.MaxPrice != nil {
			return keep(rows, func(r row) bool { return r.priceCeil <= *cs.MaxPrice })
		}
	case stepPriceMinOnly:
		if cs.MinPrice != nil {
			return keep(rows, func(r row) bool { return r.priceFloor >= *cs.MinPrice })
		}
	case stepPriceWorst:
		if cs.MinPrice != nil {
			return keep(rows, func(r row) bool { return r.priceFloor >= *cs.MinPrice })
		}
		if cs.MaxPrice != nil {
			return keep(rows, func(r row) bool { return r.priceCeil <= *cs.MaxPrice })
		}
	case stepRatingMin:
		if bound, ok := minRatingBound(st, cs, e.config); ok {
			return keep(rows, func(r row) bool { return r.rating >= bound })
		}
	case stepRatingMax:
		if bound, ok := maxRatingBound(st, cs, e.config); ok {
			return keep(rows, func(r row) bool { return r.rating <= bound })
		}
	case stepLocation:
		if cs.Location != "" {
			return keep(rows, func(r row) bool { return strings.Contains(r.loc, cs.Location) })
		}
	case stepLocationEither:
		if cs.Location != "" {
			return keep(rows, func(r row) bool {
				return strings.Contains(r.loc, cs.Location) || strings.Contains(r.loc2, cs.Location)
			})
		}
	case stepDomainText:
		if domainVal != "" {
			return keep(rows, func(r row) bool { return strings.Contains(r.domainText, domainVal) })
		}
	case stepCapacity:
		if cs.Passengers > 0 {
			n := float64(cs.Passengers)
			return keep(rows, func(r row) bool { return r.passengers >= n })
		}
	case stepAmenitiesAll:
		for _, amenity := range cs.Amenities {
			a := amenity
			rows = keep(rows, func(r row) bool { return strings.Contains(r.amenities, a) })
		}
		return rows
	}
	return rows
}

// minRatingBound resolves the rating floor for a stepRatingMin: an explicit
// min_rating, the qualitative "high" level (when honored), or the intent
// default named by the step.
func minRatingBound(st step, cs *models.ConstraintSet, cfg *Config) (float64, bool) {
	if cs.MinRating != nil {
		return *cs.MinRating, true
	}
	if st.useLevel && cs.RatingLevel == models.RatingLevelHigh {
		return cfg.BestMinRating, true
	}
	switch st.def {
	case defBest:
		return cfg.BestMinRating, true
	case defQuality:
		return cfg.QualityMinRating, true
	}
	return 0, false
}

func maxRatingBound(st step, cs *models.ConstraintSet, cfg *Config) (float64, bool) {
	if cs.MaxRating != nil {
		return *cs.MaxRating, true
	}
	if st.useLevel && cs.RatingLevel == models.RatingLevelLow {
		return cfg.WorstMaxRating, true
	}
	if st.def == defWorst {
		return cfg.WorstMaxRating, true
	}
	return 0, false
}

// percentileCut keeps the cheapest (or most expensive) fraction of rows by
// the price axis. The count truncates: two rows at 30% keep zero.
func (e *Engine) percentileCut(rows []row, expensive bool) []row {
	sorted := make([]row, len(rows))
	copy(sorted, rows)
	if expensive {
		sort.SliceStable(sorted, func(i, j int) bool {
			return descLess(sorted[i].priceFloor, sorted[j].priceFloor)
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return ascLess(sorted[i].priceCeil, sorted[j].priceCeil)
		})
	}
	n := int(float64(len(sorted)) * e.config.Percentile)
	return sorted[:n]
}

func keep(rows []row, pred func(row) bool) []row {
	out := rows[:0:0]
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
