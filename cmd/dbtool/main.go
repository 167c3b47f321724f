package main

import (
	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/config"
	"address-distance-service/internal/platform/db"
	"address-distance-service/internal/platform/obs"
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	obs.Configure(cfg.LogLevel, "text", os.Stderr)

	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("open database")
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, cfg.SeedPath); err != nil {
		logrus.WithError(err).Fatal("dbtool failed")
	}
}

func initAndSeed(ctx context.Context, conn *sqlx.DB, seedPath string) error {
	logrus.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logrus.Info("Schema ready.")

	logrus.WithField("path", seedPath).Info("Seeding database...")
	n, err := repositories.SeedFromJSON(ctx, conn, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logrus.WithField("trips", n).Info("Seeding complete.")

	return nil
}
