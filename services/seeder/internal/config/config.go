package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDays     = 30
	defaultSeed     = 42
	defaultInterval = time.Hour
)

// Anomaly describes an optional artificial excursion injected into the
// generated data for exercising alerts.
type Anomaly struct {
	StationID string
	Parameter string
	Start     time.Time
	Duration  time.Duration
	Severity  string
}

// Config holds runtime configuration for the seeder.
type Config struct {
	DatabaseURL string
	Days        int
	Seed        int64
	Interval    time.Duration
	DryRun      bool
	Anomaly     *Anomaly
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		Days:     defaultDays,
		Seed:     defaultSeed,
		Interval: defaultInterval,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	if v := strings.TrimSpace(os.Getenv("SEEDER_DAYS")); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return cfg, fmt.Errorf("invalid SEEDER_DAYS: %s", v)
		}
		cfg.Days = days
	}

	if v := strings.TrimSpace(os.Getenv("SEEDER_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid SEEDER_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := strings.TrimSpace(os.Getenv("SEEDER_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SEEDER_INTERVAL: %s", v)
		}
		cfg.Interval = d
	}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	anomaly, err := loadAnomaly()
	if err != nil {
		return cfg, err
	}
	cfg.Anomaly = anomaly

	return cfg, nil
}

func loadAnomaly() (*Anomaly, error) {
	station := strings.TrimSpace(os.Getenv("SEEDER_ANOMALY_STATION"))
	param := strings.TrimSpace(os.Getenv("SEEDER_ANOMALY_PARAM"))
	if station == "" && param == "" {
		return nil, nil
	}
	if station == "" || param == "" {
		return nil, errors.New("SEEDER_ANOMALY_STATION and SEEDER_ANOMALY_PARAM must be set together")
	}

	a := &Anomaly{
		StationID: station,
		Parameter: param,
		Start:     time.Now().UTC().Add(-48 * time.Hour),
		Duration:  5 * time.Hour,
		Severity:  "high",
	}

	if v := strings.TrimSpace(os.Getenv("SEEDER_ANOMALY_START")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEEDER_ANOMALY_START: %w", err)
		}
		a.Start = t.UTC()
	}

	if v := strings.TrimSpace(os.Getenv("SEEDER_ANOMALY_HOURS")); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid SEEDER_ANOMALY_HOURS: %s", v)
		}
		a.Duration = time.Duration(hours) * time.Hour
	}

	if v := strings.TrimSpace(os.Getenv("SEEDER_ANOMALY_SEVERITY")); v != "" {
		switch strings.ToLower(v) {
		case "low", "medium", "high":
			a.Severity = strings.ToLower(v)
		default:
			return nil, fmt.Errorf("invalid SEEDER_ANOMALY_SEVERITY: %s", v)
		}
	}

	return a, nil
}
