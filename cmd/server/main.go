package main

import (
	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/api"
	"address-distance-service/internal/app"
	"address-distance-service/internal/config"
	"address-distance-service/internal/platform/db"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires concrete adapters (BAN, Nominatim, OSRM, Postgres) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()
	obs.Configure(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	calc := app.NewDistanceCalculator(cfg)

	// Trip endpoints are only served when a database is configured.
	var repo ports.TripRepository
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logrus.WithError(err).Fatal("open database")
		}
		defer conn.Close()

		if err := repositories.InitSchema(context.Background(), conn); err != nil {
			logrus.WithError(err).Fatal("init schema")
		}
		repo = repositories.NewPgTripRepository(conn)
	} else {
		logrus.Info("DATABASE_URL not set, trip endpoints disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(calc, repo)

	// Write timeout covers a full trip batch (three upstream calls per trip).
	logrus.WithField("addr", ":"+cfg.Port).Info("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server stopped")
	}
}
