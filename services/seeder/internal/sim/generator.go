// Package sim generates synthetic water-quality readings with realistic
// diurnal and seasonal variation, for demo and test environments.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquaflow/water-quality-viewer/services/seeder/internal/models"
)

// StationConfig seeds one simulated monitoring station.
type StationConfig struct {
	ID       string
	Name     string
	Location string
	BasePH   float64
	BaseTemp float64
}

// DefaultStations are the five demo stations along the river system.
func DefaultStations() []StationConfig {
	return []StationConfig{
		{ID: "station_a", Name: "Estação A", Location: "Rio Principal", BasePH: 7.0, BaseTemp: 22},
		{ID: "station_b", Name: "Estação B", Location: "Afluente Norte", BasePH: 6.8, BaseTemp: 20},
		{ID: "station_c", Name: "Estação C", Location: "Afluente Sul", BasePH: 7.2, BaseTemp: 24},
		{ID: "station_d", Name: "Estação D", Location: "Reservatório", BasePH: 7.1, BaseTemp: 23},
		{ID: "station_e", Name: "Estação E", Location: "Estação de Tratamento", BasePH: 7.0, BaseTemp: 21},
	}
}

// StationRows converts station configs into database-ready rows.
func StationRows(stations []StationConfig) []models.StationRow {
	rows := make([]models.StationRow, 0, len(stations))
	for _, st := range stations {
		rows = append(rows, models.StationRow{ID: st.ID, Name: st.Name, Location: st.Location})
	}
	return rows
}

// Generator produces deterministic synthetic readings for a given seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with a seeded source for reproducible runs.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces one reading per station per step in [from, to].
// Values follow diurnal (hour-of-day) and seasonal (day-of-year) sine
// factors plus Gaussian noise; status is classified from the threshold
// table.
func (g *Generator) Generate(stations []StationConfig, from, to time.Time, step time.Duration) []models.ReadingRow {
	rows := make([]models.ReadingRow, 0)
	for _, st := range stations {
		basePH := st.BasePH + g.rng.NormFloat64()*0.3
		baseTemp := st.BaseTemp + g.rng.NormFloat64()*2

		for ts := from; !ts.After(to); ts = ts.Add(step) {
			hourFactor := math.Sin(2 * math.Pi * float64(ts.Hour()) / 24)
			dayFactor := math.Sin(2 * math.Pi * float64(ts.YearDay()) / 365)
			noise := g.rng.NormFloat64() * 0.2

			row := models.ReadingRow{
				StationID:            st.ID,
				TS:                   ts,
				PH:                   clip(basePH+0.5*hourFactor+noise, 4.0, 10.0),
				Turbidity:            math.Max(0, 2+3*(0.5*g.rng.ExpFloat64())+0.5*hourFactor),
				DissolvedOxygen:      math.Max(0, 8-0.5*hourFactor+g.rng.NormFloat64()*0.5),
				Temperature:          baseTemp + 3*hourFactor + 5*dayFactor + g.rng.NormFloat64()*0.5,
				Conductivity:         math.Max(0, 200+50*g.rng.NormFloat64()+20*hourFactor),
				TotalDissolvedSolids: math.Max(0, 150+30*g.rng.NormFloat64()),
				Nitrates:             math.Max(0, 2+3*g.rng.NormFloat64()),
			}
			row.Reclassify()
			rows = append(rows, row)
		}
	}
	return rows
}

// SeverityMultiplier maps an anomaly severity to its scale factor.
func SeverityMultiplier(severity string) float64 {
	switch severity {
	case "low":
		return 1.3
	case "medium":
		return 1.6
	case "high":
		return 2.0
	}
	return 1.5
}

// ApplyAnomaly scales one parameter of one station's readings inside
// [start, start+duration] and reclassifies the touched rows. Returns
// the number of rows modified.
func ApplyAnomaly(rows []models.ReadingRow, stationID, param string, start time.Time, duration time.Duration, multiplier float64) int {
	end := start.Add(duration)
	touched := 0
	for i := range rows {
		r := &rows[i]
		if r.StationID != stationID {
			continue
		}
		if r.TS.Before(start) || r.TS.After(end) {
			continue
		}
		r.Scale(param, multiplier)
		r.Reclassify()
		touched++
	}
	return touched
}

func clip(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
