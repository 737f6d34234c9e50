package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/annai/internal/models"
)

// SQLiteStore persists the three datasets in a SQLite database, as an
// alternative to flat files. Numeric NaN maps to NULL on write and back to
// NaN on read.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS restaurants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price_range_from REAL,
		price_range_to REAL,
		rating REAL,
		review_count REAL,
		address TEXT,
		cuisines TEXT,
		phone TEXT
	);

	CREATE TABLE IF NOT EXISTS hotels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price REAL,
		rating REAL,
		location TEXT,
		amenities TEXT,
		category TEXT,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price_per_day REAL,
		price_per_hour REAL,
		rating REAL,
		passengers REAL,
		pickup_location TEXT,
		drop_off_location TEXT,
		type TEXT,
		preference TEXT,
		colors TEXT
	);
	`
	_, err := db.Exec(schema)
	return err
}

// nullable converts NaN to NULL for binding.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// floatOrNaN converts a scanned NULL back to NaN.
func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// ImportRestaurants replaces the restaurants table contents in a transaction.
func (s *SQLiteStore) ImportRestaurants(ctx context.Context, data []models.Restaurant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM restaurants`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO restaurants (name, price_range_from, price_range_to, rating, review_count, address, cuisines, phone)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range data {
		if _, err := stmt.ExecContext(ctx, r.Name, nullable(r.PriceRangeFrom), nullable(r.PriceRangeTo),
			nullable(r.Rating), nullable(r.ReviewCount), r.Address, r.Cuisines, r.Phone); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportHotels replaces the hotels table contents in a transaction.
func (s *SQLiteStore) ImportHotels(ctx context.Context, data []models.Hotel) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hotels`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hotels (name, price, rating, location, amenities, category, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, h := range data {
		if _, err := stmt.ExecContext(ctx, h.Name, nullable(h.Price), nullable(h.Rating),
			h.Location, h.Amenities, h.Category, h.Description); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ImportVehicles replaces the vehicles table contents in a transaction.
// Colors are stored as a comma-joined list.
func (s *SQLiteStore) ImportVehicles(ctx context.Context, data []models.Vehicle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO vehicles (name, price_per_day, price_per_hour, rating, passengers, pickup_location, drop_off_location, type, preference, colors)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, v := range data {
		if _, err := stmt.ExecContext(ctx, v.Name, nullable(v.PricePerDay), nullable(v.PricePerHour),
			nullable(v.Rating), nullable(v.Passengers), v.PickupLocation, v.DropOffLocation,
			v.Type, v.Preference, strings.Join(v.ModelInfo.Colors, ",")); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Restaurants returns all restaurants in insertion order.
func (s *SQLiteStore) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, price_range_from, price_range_to, rating, review_count, address, cuisines, phone
		 FROM restaurants ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		var from, to, rating, reviews sql.NullFloat64
		if err := rows.Scan(&r.Name, &from, &to, &rating, &reviews, &r.Address, &r.Cuisines, &r.Phone); err != nil {
			return nil, err
		}
		r.PriceRangeFrom = floatOrNaN(from)
		r.PriceRangeTo = floatOrNaN(to)
		r.Rating = floatOrNaN(rating)
		r.ReviewCount = floatOrNaN(reviews)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Hotels returns all hotels in insertion order.
func (s *SQLiteStore) Hotels(ctx context.Context) ([]models.Hotel, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, price, rating, location, amenities, category, description
		 FROM hotels ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Hotel
	for rows.Next() {
		var h models.Hotel
		var price, rating sql.NullFloat64
		if err := rows.Scan(&h.Name, &price, &rating, &h.Location, &h.Amenities, &h.Category, &h.Description); err != nil {
			return nil, err
		}
		h.Price = floatOrNaN(price)
		h.Rating = floatOrNaN(rating)
		out = append(out, h)
	}
	return out, rows.Err()
}

// Vehicles returns all vehicles in insertion order.
func (s *SQLiteStore) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, price_per_day, price_per_hour, rating, passengers, pickup_location, drop_off_location, type, preference, colors
		 FROM vehicles ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		var day, hour, rating, passengers sql.NullFloat64
		var colors string
		if err := rows.Scan(&v.Name, &day, &hour, &rating, &passengers, &v.PickupLocation,
			&v.DropOffLocation, &v.Type, &v.Preference, &colors); err != nil {
			return nil, err
		}
		v.PricePerDay = floatOrNaN(day)
		v.PricePerHour = floatOrNaN(hour)
		v.Rating = floatOrNaN(rating)
		v.Passengers = floatOrNaN(passengers)
		if colors != "" {
			v.ModelInfo.Colors = strings.Split(colors, ",")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Counts returns the row count of each table.
func (s *SQLiteStore) Counts(ctx context.Context) (restaurants, hotels, vehicles int64, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&restaurants); err != nil {
		return
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&hotels); err != nil {
		return
	}
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&vehicles)
	return
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
