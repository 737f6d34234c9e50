package engine

import (
	"strings"

	"github.com/hyperjump/annai/internal/models"
)

// row is the domain-neutral view of one record that the cascade steps and
// sort rules operate on. The idx field points back into the source slice and
// doubles as the deterministic tie-break (original dataset order).
type row struct {
	idx  int
	name string

	// priceCeil is the upper price axis (restaurant price_range_to, hotel
	// price, vehicle pricePerDay); priceFloor the lower (price_range_from,
	// or the same single price).
	priceCeil  float64
	priceFloor float64

	rating  float64
	reviews float64

	loc        string // address / location / pickup location
	loc2       string // vehicle drop-off location, empty elsewhere
	domainText string // cuisines / category / type

	amenities   string
	description string
	passengers  float64

	// amenityScore and score are filled during amenity matching and
	// price-quality scoring respectively.
	amenityScore float64
	score        float64
}

func restaurantRows(data []models.Restaurant) []row {
	rows := make([]row, len(data))
	for i, r := range data {
		rows[i] = row{
			idx:        i,
			name:       r.Name,
			priceCeil:  r.PriceRangeTo,
			priceFloor: r.PriceRangeFrom,
			rating:     r.Rating,
			reviews:    r.ReviewCount,
			loc:        r.Address,
			domainText: r.Cuisines,
		}
	}
	return rows
}

func hotelRows(data []models.Hotel) []row {
	rows := make([]row, len(data))
	for i, h := range data {
		rows[i] = row{
			idx:         i,
			name:        h.Name,
			priceCeil:   h.Price,
			priceFloor:  h.Price,
			rating:      h.Rating,
			loc:         h.Location,
			domainText:  h.Category,
			amenities:   h.Amenities,
			description: strings.ToLower(h.Description),
		}
	}
	return rows
}

func vehicleRows(data []models.Vehicle) []row {
	rows := make([]row, len(data))
	for i, v := range data {
		rows[i] = row{
			idx:        i,
			name:       v.Name,
			priceCeil:  v.PricePerDay,
			priceFloor: v.PricePerDay,
			rating:     v.Rating,
			loc:        v.PickupLocation,
			loc2:       v.DropOffLocation,
			domainText: v.Type,
			passengers: v.Passengers,
		}
	}
	return rows
}
