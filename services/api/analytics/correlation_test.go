package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

func TestCorrelatePerfectPositive(t *testing.T) {
	m := Correlate([]string{"a", "b"}, map[string][]float64{
		"a": {1, 2, 3, 4},
		"b": {2, 4, 6, 8},
	})

	require.Len(t, m.Values, 2)
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-9)
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-9)
	assert.InDelta(t, 1.0, m.Values[1][0], 1e-9)
	assert.InDelta(t, 1.0, m.Values[1][1], 1e-9)
}

func TestCorrelatePerfectNegative(t *testing.T) {
	m := Correlate([]string{"a", "b"}, map[string][]float64{
		"a": {1, 2, 3},
		"b": {6, 4, 2},
	})
	assert.InDelta(t, -1.0, m.Values[0][1], 1e-9)
	assert.InDelta(t, -1.0, m.Values[1][0], 1e-9)
}

func TestCorrelateConstantColumn(t *testing.T) {
	// Zero variance must not produce NaN in the payload.
	m := Correlate([]string{"a", "b"}, map[string][]float64{
		"a": {5, 5, 5},
		"b": {1, 2, 3},
	})
	assert.Equal(t, 0.0, m.Values[0][1])
	assert.Equal(t, 1.0, m.Values[0][0])
}

func TestCorrelateEmpty(t *testing.T) {
	m := Correlate([]string{"a", "b"}, map[string][]float64{})
	assert.Equal(t, 0.0, m.Values[0][1])
}

func TestRadarNormalization(t *testing.T) {
	p := Radar(map[string]float64{
		quality.ParamPH:              8.5,
		quality.ParamTurbidity:       0,
		quality.ParamDissolvedOxygen: 10,
		quality.ParamTemperature:     25,
		quality.ParamConductivity:    0,
	})

	require.Len(t, p.Values, 5)
	for i, v := range p.Values {
		assert.InDelta(t, 100.0, v, 1e-9, "axis %s", p.Categories[i])
	}
}

func TestRadarClamps(t *testing.T) {
	p := Radar(map[string]float64{
		quality.ParamPH:              12,  // above scale
		quality.ParamTurbidity:       50,  // way past limit
		quality.ParamDissolvedOxygen: 0,   //
		quality.ParamTemperature:     90,  // far from optimum
		quality.ParamConductivity:    800, // double the limit
	})

	assert.Equal(t, 100.0, p.Values[0])
	assert.Equal(t, 0.0, p.Values[1])
	assert.Equal(t, 0.0, p.Values[2])
	assert.Equal(t, 0.0, p.Values[3])
	assert.Equal(t, 0.0, p.Values[4])
}

func TestRadarMidpoints(t *testing.T) {
	p := Radar(map[string]float64{
		quality.ParamPH:              4.25, // half scale
		quality.ParamTurbidity:       2.5,  // half the limit
		quality.ParamDissolvedOxygen: 5,
		quality.ParamTemperature:     0, // 50 points off optimum
		quality.ParamConductivity:    200,
	})

	assert.InDelta(t, 50.0, p.Values[0], 1e-9)
	assert.InDelta(t, 50.0, p.Values[1], 1e-9)
	assert.InDelta(t, 50.0, p.Values[2], 1e-9)
	assert.InDelta(t, 50.0, p.Values[3], 1e-9)
	assert.InDelta(t, 50.0, p.Values[4], 1e-9)
}
