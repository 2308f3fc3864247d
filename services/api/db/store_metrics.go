package db

import (
	"context"
	"time"
)

const countReadingsSQL = `
    SELECT COUNT(*) FROM aquaflow.readings
`

// CountReadings returns the total number of stored readings.
func (s *Store) CountReadings(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, countReadingsSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const countAlertsSinceSQL = `
    SELECT COUNT(*) FROM aquaflow.readings
    WHERE ts >= $1 AND status <> 'normal'
`

// CountAlertsSince counts readings flagged warning or critical at or
// after the given time.
func (s *Store) CountAlertsSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, countAlertsSinceSQL, since).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// AveragesResult holds per-parameter averages over a time window. Null
// averages are possible when no readings exist in the window.
type AveragesResult struct {
	PH              *float64 `json:"ph,omitempty"`
	Turbidity       *float64 `json:"turbidity,omitempty"`
	DissolvedOxygen *float64 `json:"dissolved_oxygen,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	Conductivity    *float64 `json:"conductivity,omitempty"`
	Nitrates        *float64 `json:"nitrates,omitempty"`
}

const averagesSQL = `
    SELECT AVG(ph), AVG(turbidity_ntu), AVG(dissolved_oxygen_mg_l),
           AVG(temperature_c), AVG(conductivity_us_cm), AVG(nitrates_mg_l)
    FROM aquaflow.readings
    WHERE ts >= $1
`

// Averages computes mean parameter values across all stations since the
// given time.
func (s *Store) Averages(ctx context.Context, since time.Time) (*AveragesResult, error) {
	row := s.pool.QueryRow(ctx, averagesSQL, since)
	var a AveragesResult
	if err := row.Scan(
		&a.PH,
		&a.Turbidity,
		&a.DissolvedOxygen,
		&a.Temperature,
		&a.Conductivity,
		&a.Nitrates,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
