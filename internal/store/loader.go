// Package store loads the restaurant, hotel, and vehicle datasets from CSV,
// XLSX, or SQLite sources into typed records and serves immutable snapshots
// to the rest of the application.
package store

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/annai/internal/models"
)

// table is a header-keyed view over raw sheet rows. Header lookup is
// case-insensitive so "Ratings" and "ratings" resolve alike.
type table struct {
	cols map[string]int
	rows [][]string
}

func newTable(records [][]string) (*table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return &table{cols: cols, rows: records[1:]}, nil
}

func (t *table) cell(row []string, name string) string {
	i, ok := t.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) text(row []string, name string) string {
	return strings.ToLower(t.cell(row, name))
}

// num coerces a cell to float64, NaN when empty or unparsable. Filters treat
// NaN comparisons as false, so bad cells drop out instead of failing loads.
func (t *table) num(row []string, name string) float64 {
	s := t.cell(row, name)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// readTable parses a CSV or XLSX file into a table, dispatching on extension.
func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return newTable(records)
}

func readXLSX(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet from %s: %w", path, err)
	}
	return newTable(rows)
}

// LoadRestaurants reads the restaurant dataset. Missing price bounds get the
// 0 / 1000 defaults; address and cuisines are lower-cased for matching.
func LoadRestaurants(path string) ([]models.Restaurant, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, 0, len(t.rows))
	for _, row := range t.rows {
		r := models.Restaurant{
			Name:           t.cell(row, "name"),
			PriceRangeFrom: t.num(row, "price_range_from"),
			PriceRangeTo:   t.num(row, "price_range_to"),
			Rating:         t.num(row, "rating"),
			ReviewCount:    t.num(row, "review_count"),
			Address:        t.text(row, "address"),
			Cuisines:       t.text(row, "cuisines"),
			Phone:          t.cell(row, "phone"),
		}
		if math.IsNaN(r.PriceRangeFrom) {
			r.PriceRangeFrom = 0
		}
		if math.IsNaN(r.PriceRangeTo) {
			r.PriceRangeTo = 1000
		}
		out = append(out, r)
	}
	return out, nil
}

// LoadHotels reads the hotel dataset. Location, amenities, and category are
// lower-cased; description keeps its original casing for display.
func LoadHotels(path string) ([]models.Hotel, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.Hotel, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, models.Hotel{
			Name:        t.cell(row, "name"),
			Price:       t.num(row, "price"),
			Rating:      t.num(row, "rating"),
			Location:    t.text(row, "location"),
			Amenities:   t.text(row, "amenities"),
			Category:    t.text(row, "category"),
			Description: t.cell(row, "description"),
		})
	}
	return out, nil
}

// LoadVehicles reads the vehicle dataset. The model column holds a loosely
// structured blob that is parsed best-effort into ModelInfo.
func LoadVehicles(path string) ([]models.Vehicle, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	out := make([]models.Vehicle, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, models.Vehicle{
			Name:            t.cell(row, "name"),
			PricePerDay:     t.num(row, "priceperday"),
			PricePerHour:    t.num(row, "priceperhour"),
			Rating:          t.num(row, "ratings"),
			Passengers:      t.num(row, "passengers"),
			PickupLocation:  t.text(row, "pickuplocation"),
			DropOffLocation: t.text(row, "dropofflocation"),
			Type:            t.text(row, "type"),
			Preference:      t.text(row, "preference"),
			ModelInfo:       ParseModelInfo(t.cell(row, "model")),
		})
	}
	return out, nil
}
