// Package models defines core data structures for domains, constraints, and catalog records.
package models

// EntityDomain identifies which catalog a query is about. It selects the
// dataset and the filter cascade; computed once per query and never mutated.
type EntityDomain string

const (
	DomainRestaurant EntityDomain = "restaurant"
	DomainHotel      EntityDomain = "hotel"
	DomainVehicle    EntityDomain = "vehicle"
)

// Category returns the plural collection name used in API responses.
func (d EntityDomain) Category() string {
	switch d {
	case DomainRestaurant:
		return "restaurants"
	case DomainHotel:
		return "hotels"
	case DomainVehicle:
		return "vehicles"
	}
	return "unknown"
}

// Valid reports whether d is one of the three known domains.
func (d EntityDomain) Valid() bool {
	return d == DomainRestaurant || d == DomainHotel || d == DomainVehicle
}
