package repositories

import (
	"address-distance-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tripColumnNames = []string{
	"trip_id", "start_address", "end_address", "status",
	"distance_meters", "duration_seconds", "computed_at", "created_at",
}

func setupTripRepoTest(t *testing.T) (*PgTripRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlxDB.Close()
	})

	return NewPgTripRepository(sqlxDB), mock
}

func TestListPendingTrips(t *testing.T) {
	repo, mock := setupTripRepoTest(t)
	created := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(tripColumnNames).
		AddRow(1, "10 rue de Rivoli, Paris", "1 place Bellecour, Lyon", "pending", nil, nil, nil, created).
		AddRow(3, "Vieux-Port, Marseille", "Nice", "pending", nil, nil, nil, created)
	mock.ExpectQuery("FROM trips WHERE status = \\$1 ORDER BY trip_id").
		WithArgs("pending").
		WillReturnRows(rows)

	trips, err := repo.ListPendingTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)

	assert.Equal(t, 1, trips[0].TripID)
	assert.Equal(t, "1 place Bellecour, Lyon", trips[0].EndAddress)
	assert.Equal(t, domain.TripPending, trips[0].Status)
	assert.Nil(t, trips[0].DistanceMeters)
	assert.Nil(t, trips[0].ComputedAt)
	assert.True(t, created.Equal(trips[0].CreatedAt))
	assert.Equal(t, 3, trips[1].TripID)
}

func TestListTripsWithResults(t *testing.T) {
	repo, mock := setupTripRepoTest(t)
	created := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	computed := created.Add(time.Hour)

	rows := sqlmock.NewRows(tripColumnNames).
		AddRow(1, "Paris", "Lyon", "done", 465000.4, 16200.0, computed, created).
		AddRow(2, "Paris", "Atlantis", "failed", nil, nil, computed, created)
	mock.ExpectQuery("FROM trips ORDER BY trip_id").WillReturnRows(rows)

	trips, err := repo.ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)

	require.NotNil(t, trips[0].DistanceMeters)
	assert.Equal(t, 465000.4, *trips[0].DistanceMeters)
	require.NotNil(t, trips[0].DurationSeconds)
	assert.Equal(t, 16200.0, *trips[0].DurationSeconds)
	require.NotNil(t, trips[0].ComputedAt)
	assert.True(t, computed.Equal(*trips[0].ComputedAt))

	assert.Equal(t, domain.TripFailed, trips[1].Status)
	assert.Nil(t, trips[1].DistanceMeters)
}

func TestListPendingTripsQueryError(t *testing.T) {
	repo, mock := setupTripRepoTest(t)
	connErr := errors.New("connection reset")

	mock.ExpectQuery("FROM trips WHERE status").WillReturnError(connErr)

	_, err := repo.ListPendingTrips(context.Background())
	assert.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "list pending trips")
}

func TestCreateTripReturnsInsertedRow(t *testing.T) {
	repo, mock := setupTripRepoTest(t)
	created := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(tripColumnNames).
		AddRow(7, "Paris", "Lyon", "pending", nil, nil, nil, created)
	mock.ExpectQuery("INSERT INTO trips").
		WithArgs("Paris", "Lyon", "pending").
		WillReturnRows(rows)

	trip, err := repo.CreateTrip(context.Background(), "Paris", "Lyon")
	require.NoError(t, err)

	assert.Equal(t, 7, trip.TripID)
	assert.Equal(t, "Paris", trip.StartAddress)
	assert.Equal(t, domain.TripPending, trip.Status)
	assert.True(t, created.Equal(trip.CreatedAt))
}

func TestSaveResultDone(t *testing.T) {
	repo, mock := setupTripRepoTest(t)

	trip := &domain.Trip{TripID: 7, Status: domain.TripPending}
	trip.Complete(465000.4, 16200, time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC))

	mock.ExpectExec("UPDATE trips").
		WithArgs(7, "done", 465000.4, 16200.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveResult(context.Background(), trip))
}

func TestSaveResultFailedWritesNulls(t *testing.T) {
	repo, mock := setupTripRepoTest(t)

	trip := &domain.Trip{TripID: 8, Status: domain.TripPending}
	trip.Fail(time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC))

	mock.ExpectExec("UPDATE trips").
		WithArgs(8, "failed", nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveResult(context.Background(), trip))
}

func TestSaveResultUnknownTrip(t *testing.T) {
	repo, mock := setupTripRepoTest(t)

	trip := &domain.Trip{TripID: 99, Status: domain.TripPending}
	trip.Fail(time.Now())

	mock.ExpectExec("UPDATE trips").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveResult(context.Background(), trip)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, err.Error(), "trip_id=99")
}

func TestNilDBIsRejected(t *testing.T) {
	repo := &PgTripRepository{}

	_, err := repo.ListTrips(context.Background())
	assert.Error(t, err)
	_, err = repo.CreateTrip(context.Background(), "a", "b")
	assert.Error(t, err)
	assert.Error(t, repo.SaveResult(context.Background(), &domain.Trip{}))
}
