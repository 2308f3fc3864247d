package quality

// indexWeights is the simplified WQI weighting over the core parameters.
var indexWeights = map[string]float64{
	ParamPH:              0.2,
	ParamTurbidity:       0.2,
	ParamDissolvedOxygen: 0.3,
	ParamTemperature:     0.1,
	ParamConductivity:    0.2,
}

// Index computes a 0-100 water quality index from parameter values.
// Each weighted parameter contributes its full weight when normal, half
// when in warning, and nothing when critical. Parameters missing from
// values simply do not contribute.
func Index(values map[string]float64) float64 {
	score := 0.0
	for param, weight := range indexWeights {
		v, ok := values[param]
		if !ok {
			continue
		}
		switch Evaluate(param, v) {
		case StatusNormal:
			score += weight * 100
		case StatusWarning:
			score += weight * 50
		}
	}
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
