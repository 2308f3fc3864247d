package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/water-quality-viewer/services/api/analytics"
	"github.com/aquaflow/water-quality-viewer/services/api/quality"
	"github.com/aquaflow/water-quality-viewer/services/api/render"
)

// handleV1ChartSeries returns line-chart data for one parameter over the
// filtered readings, one series per station. With format=png the chart
// is rendered server-side.
// GET /api/v1/charts/series?param=ph&stations=a,b&last_n_days=7[&format=png]
func (s *Server) handleV1ChartSeries(c *gin.Context) {
	param := c.Query("param")
	if param == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "param is required"})
		return
	}
	if !quality.IsParameter(param) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown parameter: " + param})
		return
	}

	q, ok := parseReadingQuery(c, 0)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	readings, err := s.store.FetchReadings(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	series := make(map[string][]render.SeriesPoint)
	for _, r := range readings {
		value, _ := r.Value(param)
		series[r.StationName] = append(series[r.StationName], render.SeriesPoint{
			Timestamp: r.Timestamp,
			Value:     value,
		})
	}

	if c.Query("format") == "png" {
		if len(series) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no data points for chart"})
			return
		}
		c.Header("Content-Type", "image/png")
		if err := render.LineChartPNG(c.Writer, quality.Label(param), series); err != nil && !errors.Is(err, render.ErrNoData) {
			// Headers are already out; record the failure for the log.
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"param":  param,
			"label":  quality.Label(param),
			"series": series,
		},
		"meta": gin.H{
			"stations": len(series),
			"points":   len(readings),
		},
	})
}

// handleV1ChartCorrelation returns the Pearson correlation matrix across
// the selected parameters of the filtered readings, for heat-map display.
// GET /api/v1/charts/correlation?params=ph,turbidity,nitrates&stations=a
func (s *Server) handleV1ChartCorrelation(c *gin.Context) {
	q, ok := parseReadingQuery(c, 0)
	if !ok {
		return
	}
	params, ok := parseParamSelection(c)
	if !ok {
		return
	}
	if len(params) == 0 {
		params = quality.Parameters()
	}
	if len(params) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correlation requires at least two parameters"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	readings, err := s.store.FetchReadings(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	columns := make(map[string][]float64, len(params))
	for _, r := range readings {
		for _, p := range params {
			value, _ := r.Value(p)
			columns[p] = append(columns[p], value)
		}
	}

	matrix := analytics.Correlate(params, columns)

	c.JSON(http.StatusOK, gin.H{
		"data": matrix,
		"meta": gin.H{
			"readings": len(readings),
		},
	})
}

// handleV1ChartRadar returns a station's latest multi-parameter profile
// normalized to 0-100 per axis, for radar display.
// GET /api/v1/charts/radar/:id
func (s *Server) handleV1ChartRadar(c *gin.Context) {
	stationID := c.Param("id")
	if stationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	latest, err := s.store.LatestForStation(ctx, stationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if latest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no readings for station"})
		return
	}

	profile := analytics.Radar(latest.Values())

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"station_id": latest.StationID,
			"station":    latest.StationName,
			"profile":    profile,
		},
		"meta": gin.H{
			"timestamp": latest.Timestamp.Format(time.RFC3339),
		},
	})
}
