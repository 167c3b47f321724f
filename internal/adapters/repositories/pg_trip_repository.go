package repositories

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Postgres-backed implementation of the TripRepository port.
type PgTripRepository struct{ DB *sqlx.DB }

var _ ports.TripRepository = (*PgTripRepository)(nil)

func NewPgTripRepository(db *sqlx.DB) *PgTripRepository {
	return &PgTripRepository{DB: db}
}

type tripRow struct {
	TripID          int             `db:"trip_id"`
	StartAddress    string          `db:"start_address"`
	EndAddress      string          `db:"end_address"`
	Status          string          `db:"status"`
	DistanceMeters  sql.NullFloat64 `db:"distance_meters"`
	DurationSeconds sql.NullFloat64 `db:"duration_seconds"`
	ComputedAt      sql.NullTime    `db:"computed_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

const tripColumns = `
	trip_id,
	start_address,
	end_address,
	status,
	distance_meters,
	duration_seconds,
	computed_at,
	created_at
`

func (r tripRow) toDomain() *domain.Trip {
	t := &domain.Trip{
		TripID:       r.TripID,
		StartAddress: r.StartAddress,
		EndAddress:   r.EndAddress,
		Status:       domain.TripStatus(r.Status),
		CreatedAt:    r.CreatedAt,
	}
	if r.DistanceMeters.Valid {
		v := r.DistanceMeters.Float64
		t.DistanceMeters = &v
	}
	if r.DurationSeconds.Valid {
		v := r.DurationSeconds.Float64
		t.DurationSeconds = &v
	}
	if r.ComputedAt.Valid {
		v := r.ComputedAt.Time
		t.ComputedAt = &v
	}
	return t
}

// Return all trips stored in the database.
func (s *PgTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.list(ctx, "list trips", `SELECT`+tripColumns+`FROM trips ORDER BY trip_id;`)
}

// Return trips still waiting for a distance.
func (s *PgTripRepository) ListPendingTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.list(
		ctx,
		"list pending trips",
		`SELECT`+tripColumns+`FROM trips WHERE status = $1 ORDER BY trip_id;`,
		string(domain.TripPending),
	)
}

func (s *PgTripRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Trip, error) {
	if s.DB == nil {
		return nil, errors.New("pg trip repository: DB is nil")
	}

	var rows []tripRow
	if err := s.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: query trips table: %w", op, err)
	}

	trips := make([]*domain.Trip, 0, len(rows))
	for _, r := range rows {
		trips = append(trips, r.toDomain())
	}

	return trips, nil
}

// Insert a pending trip.
func (s *PgTripRepository) CreateTrip(ctx context.Context, startAddress, endAddress string) (*domain.Trip, error) {
	if s.DB == nil {
		return nil, errors.New("pg trip repository: DB is nil")
	}

	query := `
	INSERT INTO trips (
		start_address,
		end_address,
		status
	)
	VALUES ($1, $2, $3)
	RETURNING` + tripColumns + `;`

	var row tripRow
	if err := s.DB.GetContext(ctx, &row, query, startAddress, endAddress, string(domain.TripPending)); err != nil {
		return nil, fmt.Errorf("create trip: insert: %w", err)
	}

	return row.toDomain(), nil
}

// Persist status, distance, duration and computation time of a trip.
func (s *PgTripRepository) SaveResult(ctx context.Context, trip *domain.Trip) error {
	if s.DB == nil {
		return errors.New("pg trip repository: DB is nil")
	}

	query := `
	UPDATE trips
	SET status = $2,
		distance_meters = $3,
		duration_seconds = $4,
		computed_at = $5
	WHERE trip_id = $1;
	`

	res, err := s.DB.ExecContext(
		ctx, query,
		trip.TripID, string(trip.Status), trip.DistanceMeters, trip.DurationSeconds, trip.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("save trip_id=%d: %w", trip.TripID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save trip_id=%d: rows affected: %w", trip.TripID, err)
	}
	if n == 0 {
		return fmt.Errorf("save trip_id=%d: %w", trip.TripID, sql.ErrNoRows)
	}

	return nil
}
