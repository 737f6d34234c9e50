package models

// Answer is the result of processing one query end to end: the classified
// domain, the extracted constraints, the ordered matching records (at most
// one of the three slices is non-empty), and any alternative suggestions.
type Answer struct {
	ID          string
	Query       string
	Domain      EntityDomain
	Constraints ConstraintSet

	Restaurants []Restaurant
	Hotels      []Hotel
	Vehicles    []Vehicle

	Alternatives []string
}

// Count returns the number of matched records.
func (a *Answer) Count() int {
	switch a.Domain {
	case DomainRestaurant:
		return len(a.Restaurants)
	case DomainHotel:
		return len(a.Hotels)
	case DomainVehicle:
		return len(a.Vehicles)
	}
	return 0
}
