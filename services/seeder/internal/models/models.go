package models

import (
	"time"

	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

// StationRow captures station metadata for DB operations.
type StationRow struct {
	ID       string
	Name     string
	Location string
}

// ReadingRow is one generated reading ready for insertion.
type ReadingRow struct {
	StationID            string
	TS                   time.Time
	PH                   float64
	Turbidity            float64
	DissolvedOxygen      float64
	Temperature          float64
	Conductivity         float64
	TotalDissolvedSolids float64
	Nitrates             float64
	Status               string
}

// Values returns the row's parameter values keyed by parameter name.
func (r *ReadingRow) Values() map[string]float64 {
	return map[string]float64{
		quality.ParamPH:                   r.PH,
		quality.ParamTurbidity:            r.Turbidity,
		quality.ParamDissolvedOxygen:      r.DissolvedOxygen,
		quality.ParamTemperature:          r.Temperature,
		quality.ParamConductivity:         r.Conductivity,
		quality.ParamTotalDissolvedSolids: r.TotalDissolvedSolids,
		quality.ParamNitrates:             r.Nitrates,
	}
}

// Scale multiplies one parameter value in place. Unknown names are a
// no-op.
func (r *ReadingRow) Scale(param string, factor float64) {
	switch param {
	case quality.ParamPH:
		r.PH *= factor
	case quality.ParamTurbidity:
		r.Turbidity *= factor
	case quality.ParamDissolvedOxygen:
		r.DissolvedOxygen *= factor
	case quality.ParamTemperature:
		r.Temperature *= factor
	case quality.ParamConductivity:
		r.Conductivity *= factor
	case quality.ParamTotalDissolvedSolids:
		r.TotalDissolvedSolids *= factor
	case quality.ParamNitrates:
		r.Nitrates *= factor
	}
}

// Reclassify recomputes the row status from the threshold table.
func (r *ReadingRow) Reclassify() {
	_, worst := quality.EvaluateAll(r.Values())
	r.Status = string(worst)
}
