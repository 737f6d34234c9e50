// Package present renders records as display text: star ratings, rupee
// price strings, and wrapped multi-line blocks. Missing values become
// explicit stand-in strings here rather than in the records themselves.
package present

import (
	"fmt"
	"math"
	"strings"

	"github.com/hyperjump/annai/internal/models"
	"github.com/hyperjump/annai/pkg/utils"
)

const (
	wrapWidth         = 60
	descriptionMaxLen = 200
	noRatings         = "No ratings"
	priceNotAvailable = "Price not available"
)

// Stars renders a rating as filled stars with an optional half. NaN or zero
// ratings render as "No ratings".
func Stars(rating float64) string {
	if math.IsNaN(rating) || rating <= 0 {
		return noRatings
	}
	full := int(rating)
	s := strings.Repeat("★", full)
	if rating-float64(full) >= 0.5 {
		s += "½"
	}
	return s
}

// PriceRange renders a from/to rupee range, degrading to a single-sided
// string when one bound is missing.
func PriceRange(from, to float64) string {
	hasFrom := !math.IsNaN(from) && from > 0
	hasTo := !math.IsNaN(to) && to > 0
	switch {
	case hasFrom && hasTo:
		return fmt.Sprintf("₹%d - ₹%d", int(from), int(to))
	case hasTo:
		return fmt.Sprintf("Up to ₹%d", int(to))
	case hasFrom:
		return fmt.Sprintf("From ₹%d", int(from))
	}
	return priceNotAvailable
}

// Price renders a single rupee amount.
func Price(v float64) string {
	if math.IsNaN(v) || v <= 0 {
		return priceNotAvailable
	}
	return fmt.Sprintf("₹%d", int(v))
}

func orStandIn(s, standIn string) string {
	if strings.TrimSpace(s) == "" {
		return standIn
	}
	return s
}

// FormatRestaurant renders one restaurant as a display block.
func FormatRestaurant(r *models.Restaurant) string {
	reviewInfo := ""
	if !math.IsNaN(r.ReviewCount) && r.ReviewCount > 0 {
		reviewInfo = fmt.Sprintf(" (%d reviews)", int(r.ReviewCount))
	}
	return fmt.Sprintf("%s\nRating: %s%s\nPrice: %s\nCuisines: %s\nAddress: %s\nPhone: %s",
		r.Name,
		Stars(r.Rating), reviewInfo,
		PriceRange(r.PriceRangeFrom, r.PriceRangeTo),
		orStandIn(r.Cuisines, "Cuisine not specified"),
		utils.Wrap(orStandIn(r.Address, "Address not available"), wrapWidth),
		orStandIn(r.Phone, "Phone not available"))
}

// FormatHotel renders one hotel as a display block. The description is
// truncated before wrapping.
func FormatHotel(h *models.Hotel) string {
	amenities := "Not specified"
	if h.Amenities != "" {
		parts := make([]string, 0)
		for _, a := range strings.Split(h.Amenities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				parts = append(parts, a)
			}
		}
		amenities = utils.Wrap(strings.Join(parts, ", "), wrapWidth)
	}
	description := "No description available"
	if h.Description != "" {
		description = utils.Wrap(utils.Truncate(h.Description, descriptionMaxLen), wrapWidth)
	}
	return fmt.Sprintf("%s\nRating: %s\nPrice: %s\nCategory: %s\nLocation: %s\nAmenities: %s\nDescription: %s",
		h.Name,
		Stars(h.Rating),
		Price(h.Price),
		orStandIn(h.Category, "Not specified"),
		utils.Wrap(orStandIn(h.Location, "Location not available"), wrapWidth),
		amenities,
		description)
}

// FormatVehicle renders one vehicle as a display block.
func FormatVehicle(v *models.Vehicle) string {
	daily := "Not available"
	if !math.IsNaN(v.PricePerDay) && v.PricePerDay > 0 {
		daily = fmt.Sprintf("₹%d", int(v.PricePerDay))
	}
	hourly := "Not available"
	if !math.IsNaN(v.PricePerHour) && v.PricePerHour > 0 {
		hourly = fmt.Sprintf("₹%d", int(v.PricePerHour))
	}
	passengers := "Not specified"
	if !math.IsNaN(v.Passengers) && v.Passengers > 0 {
		passengers = fmt.Sprintf("%d", int(v.Passengers))
	}
	colors := "Not specified"
	if len(v.ModelInfo.Colors) > 0 {
		colors = strings.Join(v.ModelInfo.Colors, ", ")
	}
	return fmt.Sprintf("%s (%s)\nRating: %s\nPrice: %s/day | %s/hour\nPreference: %s\nPassenger Capacity: %s\nAvailable Colors: %s\nPickup Locations: %s\nDrop-off Locations: %s",
		v.Name, utils.Title(orStandIn(v.Type, "Not specified")),
		Stars(v.Rating),
		daily, hourly,
		orStandIn(v.Preference, "Not specified"),
		passengers,
		colors,
		utils.Wrap(orStandIn(v.PickupLocation, "Not specified"), wrapWidth),
		utils.Wrap(orStandIn(v.DropOffLocation, "Not specified"), wrapWidth))
}

// FormatAnswer renders the matched records of an answer, numbered and
// separated by blank lines. Empty answers render the domain-specific
// no-match message.
func FormatAnswer(a *models.Answer) string {
	if a.Count() == 0 {
		return NoMatchMessage(a.Domain)
	}
	var blocks []string
	switch a.Domain {
	case models.DomainRestaurant:
		for i := range a.Restaurants {
			blocks = append(blocks, numbered(i, FormatRestaurant(&a.Restaurants[i])))
		}
	case models.DomainHotel:
		for i := range a.Hotels {
			blocks = append(blocks, numbered(i, FormatHotel(&a.Hotels[i])))
		}
	case models.DomainVehicle:
		for i := range a.Vehicles {
			blocks = append(blocks, numbered(i, FormatVehicle(&a.Vehicles[i])))
		}
	}
	out := strings.Join(blocks, "\n\n")
	for _, alt := range a.Alternatives {
		out += "\n\n" + alt
	}
	return out
}

// NoMatchMessage returns the stand-in line shown when nothing matched.
func NoMatchMessage(domain models.EntityDomain) string {
	return fmt.Sprintf("No %s found matching your criteria. Try adjusting your filters.", domain.Category())
}

func numbered(i int, block string) string {
	return fmt.Sprintf("%d. %s", i+1, block)
}
