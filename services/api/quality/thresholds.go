package quality

import (
	"fmt"
	"strings"
)

// Status classifies a parameter value against its regulatory limit.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusUnknown  Status = "unknown"
)

// Parameter names in canonical order, matching the reading columns.
const (
	ParamPH                   = "ph"
	ParamTurbidity            = "turbidity"
	ParamDissolvedOxygen      = "dissolved_oxygen"
	ParamTemperature          = "temperature"
	ParamConductivity         = "conductivity"
	ParamTotalDissolvedSolids = "total_dissolved_solids"
	ParamNitrates             = "nitrates"
)

// Threshold describes the acceptable range for a parameter. A nil bound
// means unbounded on that side. Inclusivity is tracked per edge: the pH
// range 6.5-8.5 accepts both edges, while limits documented as strict
// ("< 5 NTU", "> 6 mg/L") reject the edge value itself.
type Threshold struct {
	Min          *float64
	Max          *float64
	MinInclusive bool
	MaxInclusive bool
	Unit         string
	Label        string
}

// criticalFactor widens a violation into the critical band: values at or
// below 0.8x the lower limit, or at or above 1.2x the upper limit.
const criticalFactor = 0.2

func f(v float64) *float64 { return &v }

// thresholds is the static WHO/CONAMA limit table.
var thresholds = map[string]Threshold{
	ParamPH:              {Min: f(6.5), Max: f(8.5), MinInclusive: true, MaxInclusive: true, Unit: "", Label: "pH"},
	ParamTurbidity:       {Max: f(5), Unit: "NTU", Label: "Turbidity"},
	ParamDissolvedOxygen: {Min: f(6), Unit: "mg/L", Label: "Dissolved oxygen"},
	ParamTemperature:     {Max: f(30), Unit: "°C", Label: "Temperature"},
	ParamConductivity:    {Max: f(400), Unit: "µS/cm", Label: "Conductivity"},
	ParamNitrates:        {Max: f(10), Unit: "mg/L", Label: "Nitrates"},
}

// labels for parameters without a regulatory limit.
var extraLabels = map[string]string{
	ParamTotalDissolvedSolids: "Total dissolved solids",
}

// Parameters returns all monitored parameter names in canonical order.
func Parameters() []string {
	return []string{
		ParamPH,
		ParamTurbidity,
		ParamDissolvedOxygen,
		ParamTemperature,
		ParamConductivity,
		ParamTotalDissolvedSolids,
		ParamNitrates,
	}
}

// IsParameter reports whether name is a monitored parameter.
func IsParameter(name string) bool {
	for _, p := range Parameters() {
		if p == name {
			return true
		}
	}
	return false
}

// Lookup returns the threshold for a parameter, if one is documented.
func Lookup(param string) (Threshold, bool) {
	t, ok := thresholds[param]
	return t, ok
}

// Label returns a display label for a parameter, with unit when present.
func Label(param string) string {
	if t, ok := thresholds[param]; ok {
		if t.Unit != "" {
			return fmt.Sprintf("%s (%s)", t.Label, t.Unit)
		}
		return t.Label
	}
	if l, ok := extraLabels[param]; ok {
		return l
	}
	return param
}

// Contains reports whether a value lies within the acceptable range.
func (t Threshold) Contains(v float64) bool {
	if t.Min != nil {
		if t.MinInclusive {
			if v < *t.Min {
				return false
			}
		} else if v <= *t.Min {
			return false
		}
	}
	if t.Max != nil {
		if t.MaxInclusive {
			if v > *t.Max {
				return false
			}
		} else if v >= *t.Max {
			return false
		}
	}
	return true
}

// LimitText renders the acceptable range for alert messages, e.g.
// "6.5 – 8.5" or "< 5 NTU".
func (t Threshold) LimitText() string {
	var s string
	switch {
	case t.Min != nil && t.Max != nil:
		s = fmt.Sprintf("%g – %g", *t.Min, *t.Max)
	case t.Max != nil:
		s = fmt.Sprintf("< %g", *t.Max)
	case t.Min != nil:
		s = fmt.Sprintf("> %g", *t.Min)
	default:
		return "unbounded"
	}
	if t.Unit != "" {
		s += " " + t.Unit
	}
	return strings.TrimSpace(s)
}

// Evaluate classifies a single parameter value. Parameters without a
// documented limit (total dissolved solids) always evaluate normal;
// unknown parameter names evaluate unknown.
func Evaluate(param string, value float64) Status {
	t, ok := thresholds[param]
	if !ok {
		if _, known := extraLabels[param]; known {
			return StatusNormal
		}
		return StatusUnknown
	}
	if t.Contains(value) {
		return StatusNormal
	}
	if t.Min != nil && value <= *t.Min*(1-criticalFactor) {
		return StatusCritical
	}
	if t.Max != nil && value >= *t.Max*(1+criticalFactor) {
		return StatusCritical
	}
	return StatusWarning
}

// Worst returns the most severe of two statuses.
func Worst(a, b Status) Status {
	rank := func(s Status) int {
		switch s {
		case StatusCritical:
			return 2
		case StatusWarning:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// EvaluateAll classifies every known parameter present in values and
// returns the per-parameter statuses plus the worst one.
func EvaluateAll(values map[string]float64) (map[string]Status, Status) {
	out := make(map[string]Status, len(values))
	worst := StatusNormal
	for param, v := range values {
		s := Evaluate(param, v)
		out[param] = s
		if s != StatusUnknown {
			worst = Worst(worst, s)
		}
	}
	return out, worst
}
