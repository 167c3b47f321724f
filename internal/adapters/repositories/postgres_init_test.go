package repositories

import (
	"address-distance-service/internal/domain"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeSeedFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestReadSeeds(t *testing.T) {
	path := writeSeedFile(t, `[
		{"start_address": " 10 rue de Rivoli, Paris ", "end_address": "Vieux-Port, Marseille"},
		{"start_address": "Place Bellecour, Lyon", "end_address": "Capitole, Toulouse"}
	]`)

	got, err := ReadSeeds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []TripSeed{
		{StartAddress: "10 rue de Rivoli, Paris", EndAddress: "Vieux-Port, Marseille"},
		{StartAddress: "Place Bellecour, Lyon", EndAddress: "Capitole, Toulouse"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadSeeds() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSeedsRejectsEmptyAddress(t *testing.T) {
	path := writeSeedFile(t, `[{"start_address": "Paris", "end_address": "  "}]`)

	if _, err := ReadSeeds(path); err == nil {
		t.Fatal("expected error for empty end address")
	}
}

func TestReadSeedsBadJSON(t *testing.T) {
	path := writeSeedFile(t, `{"start_address": "Paris"}`)

	if _, err := ReadSeeds(path); err == nil {
		t.Fatal("expected error for non-array seed file")
	}
}

func TestTripRowToDomain(t *testing.T) {
	created := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	computed := created.Add(time.Minute)

	done := tripRow{
		TripID:          3,
		StartAddress:    "A",
		EndAddress:      "B",
		Status:          "done",
		DistanceMeters:  sql.NullFloat64{Float64: 12345.6, Valid: true},
		DurationSeconds: sql.NullFloat64{Float64: 900, Valid: true},
		ComputedAt:      sql.NullTime{Time: computed, Valid: true},
		CreatedAt:       created,
	}.toDomain()

	meters, seconds := 12345.6, 900.0
	want := &domain.Trip{
		TripID:          3,
		StartAddress:    "A",
		EndAddress:      "B",
		Status:          domain.TripDone,
		DistanceMeters:  &meters,
		DurationSeconds: &seconds,
		ComputedAt:      &computed,
		CreatedAt:       created,
	}
	if diff := cmp.Diff(want, done); diff != "" {
		t.Errorf("toDomain() mismatch (-want +got):\n%s", diff)
	}

	pending := tripRow{TripID: 4, Status: "pending", CreatedAt: created}.toDomain()
	if pending.DistanceMeters != nil || pending.ComputedAt != nil {
		t.Errorf("pending trip should have no result fields: %+v", pending)
	}
	if !pending.IsPending() {
		t.Errorf("status = %q, want pending", pending.Status)
	}
}
