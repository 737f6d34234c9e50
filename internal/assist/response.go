package assist

import (
	"github.com/hyperjump/annai/internal/models"
	"github.com/hyperjump/annai/internal/present"
)

// Response is the wire shape of an answered query. Recommendations are
// pre-formatted display blocks, so numeric gaps in the records never reach
// the JSON encoder.
type Response struct {
	Success         bool           `json:"success"`
	Query           string         `json:"query"`
	QueryType       string         `json:"query_type"`
	Category        string         `json:"category"`
	Filters         map[string]any `json:"filters"`
	Count           int            `json:"count"`
	Recommendations []string       `json:"recommendations"`
	Alternatives    []string       `json:"alternatives,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// BuildResponse converts an Answer to its wire shape.
func BuildResponse(a *models.Answer) *Response {
	resp := &Response{
		Success:         true,
		Query:           a.Query,
		QueryType:       string(a.Domain),
		Category:        a.Domain.Category(),
		Filters:         filterMap(&a.Constraints),
		Count:           a.Count(),
		Recommendations: []string{},
		Alternatives:    a.Alternatives,
	}
	switch a.Domain {
	case models.DomainRestaurant:
		for i := range a.Restaurants {
			resp.Recommendations = append(resp.Recommendations, present.FormatRestaurant(&a.Restaurants[i]))
		}
	case models.DomainHotel:
		for i := range a.Hotels {
			resp.Recommendations = append(resp.Recommendations, present.FormatHotel(&a.Hotels[i]))
		}
	case models.DomainVehicle:
		for i := range a.Vehicles {
			resp.Recommendations = append(resp.Recommendations, present.FormatVehicle(&a.Vehicles[i]))
		}
	}
	return resp
}

// filterMap flattens the constraint set to the filters object, omitting
// absent keys so the response only shows what was actually recognized.
func filterMap(cs *models.ConstraintSet) map[string]any {
	m := map[string]any{}
	if cs.Intent != "" {
		m["intent"] = string(cs.Intent)
	}
	if cs.Location != "" {
		m["location"] = cs.Location
	}
	if cs.MinPrice != nil {
		m["min_price"] = *cs.MinPrice
	}
	if cs.MaxPrice != nil {
		m["max_price"] = *cs.MaxPrice
	}
	if cs.PriceLevel != "" {
		m["price_level"] = string(cs.PriceLevel)
	}
	if cs.MinRating != nil {
		m["min_rating"] = *cs.MinRating
	}
	if cs.MaxRating != nil {
		m["max_rating"] = *cs.MaxRating
	}
	if cs.RatingLevel != "" {
		m["rating_level"] = string(cs.RatingLevel)
	}
	if cs.Cuisine != "" {
		m["cuisine"] = cs.Cuisine
	}
	if cs.Category != "" {
		m["category"] = cs.Category
	}
	if len(cs.Amenities) > 0 {
		m["amenities"] = cs.Amenities
	}
	if cs.VehicleType != "" {
		m["vehicle_type"] = cs.VehicleType
	}
	if cs.Passengers > 0 {
		m["passengers"] = cs.Passengers
	}
	if cs.Preference != "" {
		m["preference"] = cs.Preference
	}
	return m
}
