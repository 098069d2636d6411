package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables
type Config struct {
	Port         string
	DBPath       string
	StoreBackend string // "sqlite" or "memory"

	JWTSecret string
	JWTTTL    time.Duration

	// Environmental data source
	DataSource      string // "simulator" or "openmeteo"
	SimulatorSeed   int64
	ProviderTimeout time.Duration
	ProviderRPS     float64

	// Area scan fan-out
	ScanConcurrency int

	// Route safety
	RouteProximityM  float64
	GoogleMapsAPIKey string

	// Alerting
	AlertsEnabled bool
	AlertTimeout  time.Duration
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result
func Load() (*Config, error) {
	cfg := &Config{
		Port:         envOrDefault("PORT", ":8080"),
		DBPath:       envOrDefault("DB_PATH", "./data/floodwatch.db"),
		StoreBackend: envOrDefault("STORE_BACKEND", "sqlite"),

		JWTSecret: envOrDefault("JWT_SECRET", "change-me-in-production"),

		DataSource:       envOrDefault("DATA_SOURCE", "simulator"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),

		SMTPHost:     envOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     envOrDefault("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
	}

	ttlHours, err := envInt("JWT_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour

	seed, err := envInt("SIMULATOR_SEED", 1)
	if err != nil {
		return nil, err
	}
	cfg.SimulatorSeed = int64(seed)

	cfg.ProviderTimeout, err = envDuration("PROVIDER_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.ProviderRPS, err = envFloat("PROVIDER_RPS", 10)
	if err != nil {
		return nil, err
	}

	cfg.ScanConcurrency, err = envInt("SCAN_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}

	cfg.RouteProximityM, err = envFloat("ROUTE_PROXIMITY_M", 200)
	if err != nil {
		return nil, err
	}

	cfg.AlertsEnabled = envOrDefault("ALERTS_ENABLED", "true") == "true"
	cfg.AlertTimeout, err = envDuration("ALERT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	if cfg.StoreBackend != "sqlite" && cfg.StoreBackend != "memory" {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q (want sqlite or memory)", cfg.StoreBackend)
	}
	if cfg.DataSource != "simulator" && cfg.DataSource != "openmeteo" {
		return nil, fmt.Errorf("invalid DATA_SOURCE %q (want simulator or openmeteo)", cfg.DataSource)
	}
	if cfg.ProviderTimeout <= 0 {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	if cfg.ScanConcurrency <= 0 {
		return nil, fmt.Errorf("SCAN_CONCURRENCY must be positive")
	}
	if cfg.RouteProximityM <= 0 {
		return nil, fmt.Errorf("ROUTE_PROXIMITY_M must be positive")
	}
	if cfg.AlertsEnabled && (cfg.SMTPUser == "" || cfg.SMTPPassword == "") {
		// Alerting degrades to log-only rather than failing startup; a
		// missing mail account must not take the detection API down.
		cfg.AlertsEnabled = false
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
