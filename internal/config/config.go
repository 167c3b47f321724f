package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBANBaseURL       = "https://api-adresse.data.gouv.fr"
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org/"
	DefaultOSRMBaseURL      = "https://routing.openstreetmap.de/routed-car"
	DefaultUserAgent        = "address-distance-service/1.0"
)

// Config holds every setting read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	SeedPath    string

	LogLevel  string
	LogFormat string
	LogHTTP   bool

	HTTPTimeout time.Duration
	UserAgent   string

	BANBaseURL       string
	NominatimBaseURL string
	OSRMBaseURL      string
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found (using environment variables)")
	}

	return &Config{
		Port:             Get("PORT", "8080"),
		DatabaseURL:      Get("DATABASE_URL", ""),
		SeedPath:         Get("SEED_PATH", "data/seeds/trips.json"),
		LogLevel:         Get("LOG_LEVEL", "info"),
		LogFormat:        Get("LOG_FORMAT", "json"),
		LogHTTP:          GetBool("LOG_HTTP", false),
		HTTPTimeout:      GetDuration("HTTP_TIMEOUT", 10*time.Second),
		UserAgent:        Get("USER_AGENT", DefaultUserAgent),
		BANBaseURL:       Get("BAN_BASE_URL", DefaultBANBaseURL),
		NominatimBaseURL: Get("NOMINATIM_BASE_URL", DefaultNominatimBaseURL),
		OSRMBaseURL:      Get("OSRM_BASE_URL", DefaultOSRMBaseURL),
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetBool(key string, fallback bool) bool {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.Warnf("invalid boolean value for %s, using default: %t", key, fallback)
		return fallback
	}
	return b
}

// GetDuration accepts Go duration strings ("5s") or a plain number of seconds.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}

	logrus.Warnf("invalid duration value for %s, using default: %s", key, fallback)
	return fallback
}
