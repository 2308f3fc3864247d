package analytics

import "math"

// CorrelationMatrix holds a symmetric Pearson correlation matrix over a
// set of parameters, in the order given by Params.
type CorrelationMatrix struct {
	Params []string    `json:"params"`
	Values [][]float64 `json:"values"`
}

// Correlate computes pairwise Pearson correlations between parameter
// columns. columns maps a parameter name to its sample vector; all
// vectors must have equal length (rows of the same filtered table).
// A column with zero variance correlates 0 with everything except
// itself, which stays 1, so the payload remains JSON-encodable.
func Correlate(params []string, columns map[string][]float64) CorrelationMatrix {
	m := CorrelationMatrix{
		Params: params,
		Values: make([][]float64, len(params)),
	}
	for i := range params {
		m.Values[i] = make([]float64, len(params))
		for j := range params {
			if i == j {
				m.Values[i][j] = 1
				continue
			}
			m.Values[i][j] = pearson(columns[params[i]], columns[params[j]])
		}
	}
	return m
}

func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
