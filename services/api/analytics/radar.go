package analytics

import (
	"math"

	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

// RadarProfile is a station's latest multi-parameter profile normalized
// to a 0-100 scale per axis.
type RadarProfile struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

// Radar normalizes a reading's core parameters against their acceptable
// ranges. Higher is better on every axis: pH and dissolved oxygen scale
// up toward their limits, turbidity and conductivity scale down from
// theirs, and temperature scores distance from the 25 °C optimum.
func Radar(values map[string]float64) RadarProfile {
	return RadarProfile{
		Categories: []string{
			quality.Label(quality.ParamPH),
			quality.Label(quality.ParamTurbidity),
			quality.Label(quality.ParamDissolvedOxygen),
			quality.Label(quality.ParamTemperature),
			quality.Label(quality.ParamConductivity),
		},
		Values: []float64{
			clamp(values[quality.ParamPH] / 8.5 * 100),
			clamp(100 - values[quality.ParamTurbidity]/5*100),
			clamp(values[quality.ParamDissolvedOxygen] / 10 * 100),
			clamp(100 - math.Abs(values[quality.ParamTemperature]-25)*2),
			clamp(100 - values[quality.ParamConductivity]/400*100),
		},
	}
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
