package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		param string
		value float64
		want  Status
	}{
		// pH range is inclusive at both edges.
		{"ph lower edge acceptable", ParamPH, 6.5, StatusNormal},
		{"ph upper edge acceptable", ParamPH, 8.5, StatusNormal},
		{"ph just above range", ParamPH, 8.6, StatusWarning},
		{"ph just below range", ParamPH, 6.4, StatusWarning},
		{"ph far above range", ParamPH, 10.2, StatusCritical},
		{"ph far below range", ParamPH, 5.2, StatusCritical},

		// Strict single-bound limits reject the edge value itself.
		{"turbidity at strict limit", ParamTurbidity, 5.0, StatusWarning},
		{"turbidity below limit", ParamTurbidity, 4.99, StatusNormal},
		{"turbidity critical", ParamTurbidity, 6.0, StatusCritical},
		{"oxygen at strict limit", ParamDissolvedOxygen, 6.0, StatusWarning},
		{"oxygen above limit", ParamDissolvedOxygen, 6.01, StatusNormal},
		{"oxygen critical", ParamDissolvedOxygen, 4.8, StatusCritical},
		{"temperature below limit", ParamTemperature, 29.9, StatusNormal},
		{"temperature at limit", ParamTemperature, 30.0, StatusWarning},
		{"temperature critical", ParamTemperature, 36.0, StatusCritical},
		{"conductivity below limit", ParamConductivity, 399.9, StatusNormal},
		{"conductivity at limit", ParamConductivity, 400.0, StatusWarning},
		{"conductivity critical", ParamConductivity, 480.0, StatusCritical},
		{"nitrates below limit", ParamNitrates, 9.9, StatusNormal},
		{"nitrates at limit", ParamNitrates, 10.0, StatusWarning},
		{"nitrates critical", ParamNitrates, 12.0, StatusCritical},

		// No documented limit for TDS.
		{"tds always normal", ParamTotalDissolvedSolids, 9999.0, StatusNormal},

		{"unknown parameter", "salinity", 1.0, StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.param, tc.value))
		})
	}
}

func TestLookupAndLimitText(t *testing.T) {
	ph, ok := Lookup(ParamPH)
	require.True(t, ok)
	assert.Equal(t, "6.5 – 8.5", ph.LimitText())

	turb, ok := Lookup(ParamTurbidity)
	require.True(t, ok)
	assert.Equal(t, "< 5 NTU", turb.LimitText())

	do, ok := Lookup(ParamDissolvedOxygen)
	require.True(t, ok)
	assert.Equal(t, "> 6 mg/L", do.LimitText())

	_, ok = Lookup(ParamTotalDissolvedSolids)
	assert.False(t, ok)
}

func TestEvaluateAll(t *testing.T) {
	statuses, worst := EvaluateAll(map[string]float64{
		ParamPH:        7.0,
		ParamTurbidity: 6.0,
		ParamNitrates:  10.5,
	})

	assert.Equal(t, StatusNormal, statuses[ParamPH])
	assert.Equal(t, StatusCritical, statuses[ParamTurbidity])
	assert.Equal(t, StatusWarning, statuses[ParamNitrates])
	assert.Equal(t, StatusCritical, worst)
}

func TestWorst(t *testing.T) {
	assert.Equal(t, StatusCritical, Worst(StatusWarning, StatusCritical))
	assert.Equal(t, StatusWarning, Worst(StatusWarning, StatusNormal))
	assert.Equal(t, StatusNormal, Worst(StatusNormal, StatusNormal))
}

func TestIndex(t *testing.T) {
	allGood := map[string]float64{
		ParamPH:              7.0,
		ParamTurbidity:       2.0,
		ParamDissolvedOxygen: 8.0,
		ParamTemperature:     22.0,
		ParamConductivity:    250.0,
	}
	assert.InDelta(t, 100.0, Index(allGood), 1e-9)

	// Dissolved oxygen in warning halves its 0.3 weight: 100 - 15.
	oneWarning := map[string]float64{
		ParamPH:              7.0,
		ParamTurbidity:       2.0,
		ParamDissolvedOxygen: 5.5,
		ParamTemperature:     22.0,
		ParamConductivity:    250.0,
	}
	assert.InDelta(t, 85.0, Index(oneWarning), 1e-9)

	// Critical parameters contribute nothing.
	oneCritical := map[string]float64{
		ParamPH:              7.0,
		ParamTurbidity:       6.5,
		ParamDissolvedOxygen: 8.0,
		ParamTemperature:     22.0,
		ParamConductivity:    250.0,
	}
	assert.InDelta(t, 80.0, Index(oneCritical), 1e-9)

	// Missing parameters do not contribute.
	assert.InDelta(t, 20.0, Index(map[string]float64{ParamPH: 7.0}), 1e-9)

	assert.InDelta(t, 0.0, Index(nil), 1e-9)
}
