package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id BIGSERIAL PRIMARY KEY,
		start_address TEXT NOT NULL,
		end_address TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		distance_meters DOUBLE PRECISION,
		duration_seconds DOUBLE PRECISION,
		computed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trips_status
	ON trips(status);
	`

	statements := []string{
		createTripsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TripSeed struct {
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
}

// ReadSeeds parses and checks a JSON array of trip seeds.
func ReadSeeds(jsonPath string) ([]TripSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed trips: read %q: %w", jsonPath, err)
	}

	var data []TripSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed trips: parse json: %w", err)
	}

	rows := make([]TripSeed, 0, len(data))
	for i, item := range data {
		start := strings.TrimSpace(item.StartAddress)
		end := strings.TrimSpace(item.EndAddress)
		if start == "" || end == "" {
			return nil, fmt.Errorf("seed trips: item at index %d: addresses cannot be empty", i+1)
		}
		rows = append(rows, TripSeed{StartAddress: start, EndAddress: end})
	}

	return rows, nil
}

// Populate the trips table with pending trips from a JSON file.
func SeedFromJSON(ctx context.Context, db *sqlx.DB, jsonPath string) (int, error) {
	rows, err := ReadSeeds(jsonPath)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed trips: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO trips (
		start_address,
		end_address
	)
	VALUES ($1, $2);
	`
	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed trips: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range rows {
		if _, err := stmt.ExecContext(ctx, t.StartAddress, t.EndAddress); err != nil {
			return 0, fmt.Errorf("seed trips: insert item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed trips: commit tx: %w", err)
	}

	return len(rows), nil
}
