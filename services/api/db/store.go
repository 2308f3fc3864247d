package db

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Station represents a monitoring station record.
type Station struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lon       *float64  `json:"lon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const listStationsSQL = `
    SELECT id, name, location, lat, lon, created_at, updated_at
    FROM aquaflow.stations
    ORDER BY id
`

// ListStations returns all station metadata.
func (s *Store) ListStations(ctx context.Context) ([]Station, error) {
	rows, err := s.pool.Query(ctx, listStationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]Station, 0)
	for rows.Next() {
		var st Station
		if err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Location,
			&st.Lat,
			&st.Lon,
			&st.CreatedAt,
			&st.UpdatedAt,
		); err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}
	return stations, rows.Err()
}

const getStationSQL = `
    SELECT id, name, location, lat, lon, created_at, updated_at
    FROM aquaflow.stations
    WHERE id = $1
`

// GetStation returns one station, or nil when the id is unknown.
func (s *Store) GetStation(ctx context.Context, stationID string) (*Station, error) {
	row := s.pool.QueryRow(ctx, getStationSQL, stationID)

	var st Station
	if err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Location,
		&st.Lat,
		&st.Lon,
		&st.CreatedAt,
		&st.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

// Reading is one wide row of sensor values for a (station, timestamp).
type Reading struct {
	StationID            string    `json:"station_id"`
	StationName          string    `json:"station"`
	Location             *string   `json:"location,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	PH                   float64   `json:"ph"`
	Turbidity            float64   `json:"turbidity"`
	DissolvedOxygen      float64   `json:"dissolved_oxygen"`
	Temperature          float64   `json:"temperature"`
	Conductivity         float64   `json:"conductivity"`
	TotalDissolvedSolids float64   `json:"total_dissolved_solids"`
	Nitrates             float64   `json:"nitrates"`
	Status               string    `json:"status"`
}

// Value returns the reading's value for a named parameter.
func (r Reading) Value(param string) (float64, bool) {
	switch param {
	case quality.ParamPH:
		return r.PH, true
	case quality.ParamTurbidity:
		return r.Turbidity, true
	case quality.ParamDissolvedOxygen:
		return r.DissolvedOxygen, true
	case quality.ParamTemperature:
		return r.Temperature, true
	case quality.ParamConductivity:
		return r.Conductivity, true
	case quality.ParamTotalDissolvedSolids:
		return r.TotalDissolvedSolids, true
	case quality.ParamNitrates:
		return r.Nitrates, true
	}
	return 0, false
}

// Values returns all parameter values keyed by parameter name.
func (r Reading) Values() map[string]float64 {
	out := make(map[string]float64, len(quality.Parameters()))
	for _, p := range quality.Parameters() {
		v, _ := r.Value(p)
		out[p] = v
	}
	return out
}

// ReadingQuery holds filters for retrieving readings. Empty or nil
// dimensions place no restriction; all present filters AND together.
type ReadingQuery struct {
	StationIDs []string
	Since      *time.Time
	Until      *time.Time
	Limit      int
}

const readingsBase = `
    SELECT r.station_id, s.name, s.location, r.ts,
           r.ph, r.turbidity_ntu, r.dissolved_oxygen_mg_l, r.temperature_c,
           r.conductivity_us_cm, r.tds_mg_l, r.nitrates_mg_l, r.status
    FROM aquaflow.readings r
    JOIN aquaflow.stations s ON s.id = r.station_id
    WHERE true
`

// FetchReadings returns readings matching the query, ordered by time.
func (s *Store) FetchReadings(ctx context.Context, q ReadingQuery) ([]Reading, error) {
	args := []any{}
	clause := ""
	argPos := 1
	if len(q.StationIDs) > 0 {
		clause += " AND r.station_id = ANY($" + strconv.Itoa(argPos) + ")"
		args = append(args, q.StationIDs)
		argPos++
	}
	if q.Since != nil {
		clause += " AND r.ts >= $" + strconv.Itoa(argPos)
		args = append(args, *q.Since)
		argPos++
	}
	if q.Until != nil {
		clause += " AND r.ts <= $" + strconv.Itoa(argPos)
		args = append(args, *q.Until)
		argPos++
	}
	order := " ORDER BY r.ts, r.station_id"
	limit := ""
	if q.Limit > 0 {
		limit = " LIMIT $" + strconv.Itoa(argPos)
		args = append(args, q.Limit)
	}

	sql := readingsBase + clause + order + limit

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReadings(rows)
}

const latestPerStationSQL = `
    SELECT DISTINCT ON (r.station_id)
           r.station_id, s.name, s.location, r.ts,
           r.ph, r.turbidity_ntu, r.dissolved_oxygen_mg_l, r.temperature_c,
           r.conductivity_us_cm, r.tds_mg_l, r.nitrates_mg_l, r.status
    FROM aquaflow.readings r
    JOIN aquaflow.stations s ON s.id = r.station_id
    ORDER BY r.station_id, r.ts DESC
`

// LatestPerStation returns the most recent reading for every station
// that has at least one reading.
func (s *Store) LatestPerStation(ctx context.Context) ([]Reading, error) {
	rows, err := s.pool.Query(ctx, latestPerStationSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReadings(rows)
}

const latestForStationSQL = `
    SELECT r.station_id, s.name, s.location, r.ts,
           r.ph, r.turbidity_ntu, r.dissolved_oxygen_mg_l, r.temperature_c,
           r.conductivity_us_cm, r.tds_mg_l, r.nitrates_mg_l, r.status
    FROM aquaflow.readings r
    JOIN aquaflow.stations s ON s.id = r.station_id
    WHERE r.station_id = $1
    ORDER BY r.ts DESC
    LIMIT 1
`

// LatestForStation returns the most recent reading for one station,
// or nil when the station has no readings.
func (s *Store) LatestForStation(ctx context.Context, stationID string) (*Reading, error) {
	rows, err := s.pool.Query(ctx, latestForStationSQL, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings, err := scanReadings(rows)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, nil
	}
	return &readings[0], nil
}

func scanReadings(rows pgx.Rows) ([]Reading, error) {
	readings := make([]Reading, 0)
	for rows.Next() {
		var r Reading
		if err := rows.Scan(
			&r.StationID,
			&r.StationName,
			&r.Location,
			&r.Timestamp,
			&r.PH,
			&r.Turbidity,
			&r.DissolvedOxygen,
			&r.Temperature,
			&r.Conductivity,
			&r.TotalDissolvedSolids,
			&r.Nitrates,
			&r.Status,
		); err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}
