package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmittmann/tint"

	"github.com/aquaflow/water-quality-viewer/services/seeder/internal/config"
	"github.com/aquaflow/water-quality-viewer/services/seeder/internal/db"
	"github.com/aquaflow/water-quality-viewer/services/seeder/internal/sim"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("seeder failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stations := sim.DefaultStations()
	generator := sim.New(cfg.Seed)

	end := time.Now().UTC().Truncate(cfg.Interval)
	start := end.Add(-time.Duration(cfg.Days) * 24 * time.Hour)
	readings := generator.Generate(stations, start, end, cfg.Interval)
	slog.Info("generated readings", "stations", len(stations), "readings", len(readings), "days", cfg.Days, "seed", cfg.Seed)

	if a := cfg.Anomaly; a != nil {
		multiplier := sim.SeverityMultiplier(a.Severity)
		touched := sim.ApplyAnomaly(readings, a.StationID, a.Parameter, a.Start, a.Duration, multiplier)
		slog.Info("applied anomaly",
			"station", a.StationID,
			"parameter", a.Parameter,
			"severity", a.Severity,
			"multiplier", multiplier,
			"rows", touched,
		)
	}

	if cfg.DryRun {
		slog.Info("dry-run: skipping database writes", "stations", len(stations), "readings", len(readings))
		return nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.UpsertStations(ctx, pool, sim.StationRows(stations)); err != nil {
		return err
	}

	if err := db.InsertReadings(ctx, pool, readings); err != nil {
		return err
	}

	slog.Info("seed complete", "stations", len(stations), "readings", len(readings))
	return nil
}
