package http

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/aquaflow/water-quality-viewer/services/api/config"
	"github.com/aquaflow/water-quality-viewer/services/api/db"
)

// mockStore implements Store in memory and records the last row filter.
type mockStore struct {
	stations      []db.Station
	readings      []db.Reading
	latest        []db.Reading
	latestByID    map[string]*db.Reading
	totalReadings int64
	alertsSince   int64
	averages      db.AveragesResult

	lastQuery   db.ReadingQuery
	alertsQuery time.Time
	err         error
}

func (m *mockStore) ListStations(ctx context.Context) ([]db.Station, error) {
	return m.stations, m.err
}

func (m *mockStore) GetStation(ctx context.Context, stationID string) (*db.Station, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.stations {
		if m.stations[i].ID == stationID {
			return &m.stations[i], nil
		}
	}
	return nil, nil
}

func (m *mockStore) FetchReadings(ctx context.Context, q db.ReadingQuery) ([]db.Reading, error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	out := make([]db.Reading, 0)
	for _, r := range m.readings {
		if len(q.StationIDs) > 0 && !contains(q.StationIDs, r.StationID) {
			continue
		}
		if q.Since != nil && r.Timestamp.Before(*q.Since) {
			continue
		}
		if q.Until != nil && r.Timestamp.After(*q.Until) {
			continue
		}
		out = append(out, r)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockStore) LatestPerStation(ctx context.Context) ([]db.Reading, error) {
	return m.latest, m.err
}

func (m *mockStore) LatestForStation(ctx context.Context, stationID string) (*db.Reading, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.latestByID[stationID], nil
}

func (m *mockStore) CountReadings(ctx context.Context) (int64, error) {
	return m.totalReadings, m.err
}

func (m *mockStore) CountAlertsSince(ctx context.Context, since time.Time) (int64, error) {
	m.alertsQuery = since
	return m.alertsSince, m.err
}

func (m *mockStore) Averages(ctx context.Context, since time.Time) (*db.AveragesResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	a := m.averages
	return &a, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func newTestServer(store Store) *Server {
	cfg := config.Config{
		DatabaseURL:  "postgres://test",
		Port:         8080,
		DefaultLimit: 500,
		DefaultDays:  7,
	}
	return New(cfg, store)
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

// fixture readings for three stations over consecutive hours.
func fixtureReadings() []db.Reading {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id, name string, offset time.Duration, ph, turbidity float64, status string) db.Reading {
		return db.Reading{
			StationID:            id,
			StationName:          name,
			Location:             strPtr("Rio Principal"),
			Timestamp:            base.Add(offset),
			PH:                   ph,
			Turbidity:            turbidity,
			DissolvedOxygen:      8.0,
			Temperature:          22.0,
			Conductivity:         250.0,
			TotalDissolvedSolids: 150.0,
			Nitrates:             3.0,
			Status:               status,
		}
	}
	return []db.Reading{
		mk("station_a", "Estação A", 0, 7.0, 2.0, "normal"),
		mk("station_a", "Estação A", time.Hour, 7.1, 2.5, "normal"),
		mk("station_b", "Estação B", 0, 9.0, 6.0, "critical"),
		mk("station_c", "Estação C", 2*time.Hour, 6.4, 1.0, "warning"),
	}
}
