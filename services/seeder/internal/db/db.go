package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aquaflow/water-quality-viewer/services/seeder/internal/models"
)

// UpsertStations inserts/updates station metadata records.
func UpsertStations(ctx context.Context, pool *pgxpool.Pool, stations []models.StationRow) error {
	if len(stations) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO aquaflow.stations (id, name, location, lat, lon, created_at, updated_at)
VALUES ($1,$2,$3,NULL,NULL,NOW(),NOW())
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    location = EXCLUDED.location,
    updated_at = NOW()`

	for _, s := range stations {
		batch.Queue(query, s.ID, s.Name, s.Location)
	}

	res := pool.SendBatch(ctx, batch)
	defer res.Close()

	for range stations {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}

// InsertReadings writes generated readings, skipping (station, ts) pairs
// that already exist.
func InsertReadings(ctx context.Context, pool *pgxpool.Pool, readings []models.ReadingRow) error {
	if len(readings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO aquaflow.readings
(station_id, ts, ph, turbidity_ntu, dissolved_oxygen_mg_l, temperature_c, conductivity_us_cm, tds_mg_l, nitrates_mg_l, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW())
ON CONFLICT (station_id, ts) DO NOTHING`

	for _, r := range readings {
		batch.Queue(query,
			r.StationID,
			r.TS,
			r.PH,
			r.Turbidity,
			r.DissolvedOxygen,
			r.Temperature,
			r.Conductivity,
			r.TotalDissolvedSolids,
			r.Nitrates,
			r.Status,
		)
	}

	res := pool.SendBatch(ctx, batch)
	defer res.Close()

	for range readings {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}
