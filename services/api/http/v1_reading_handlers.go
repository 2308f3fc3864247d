package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/water-quality-viewer/services/api/db"
	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

// parseReadingQuery builds the row filter from the shared query params
// (stations, start, end, last_n_days, limit). It writes a 400 response
// and returns false on malformed input. defaultLimit <= 0 means the
// whole filtered table.
func parseReadingQuery(c *gin.Context, defaultLimit int) (db.ReadingQuery, bool) {
	q := db.ReadingQuery{Limit: defaultLimit}

	if stationsStr := c.Query("stations"); stationsStr != "" {
		for _, id := range strings.Split(stationsStr, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				q.StationIDs = append(q.StationIDs, id)
			}
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return q, false
		}
		q.Limit = parsed
	}

	if daysStr := c.Query("last_n_days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid last_n_days"})
			return q, false
		}
		t := time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
		q.Since = &t
	}

	if startStr := c.Query("start"); startStr != "" {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start timestamp, expected RFC3339"})
			return q, false
		}
		tt := t.UTC()
		q.Since = &tt
	}

	if endStr := c.Query("end"); endStr != "" {
		t, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end timestamp, expected RFC3339"})
			return q, false
		}
		tt := t.UTC()
		q.Until = &tt
	}

	return q, true
}

// parseParamSelection reads the optional comma-separated params filter.
// Empty means every parameter. Unknown names are a 400.
func parseParamSelection(c *gin.Context) ([]string, bool) {
	paramsStr := c.Query("params")
	if paramsStr == "" {
		return nil, true
	}

	params := make([]string, 0)
	for _, p := range strings.Split(paramsStr, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !quality.IsParameter(p) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown parameter: " + p})
			return nil, false
		}
		params = append(params, p)
	}
	return params, true
}

// handleV1ListReadings returns the filtered reading set
// GET /api/v1/readings?stations=a,b&start=...&end=...&last_n_days=7&limit=200
func (s *Server) handleV1ListReadings(c *gin.Context) {
	q, ok := parseReadingQuery(c, s.cfg.DefaultLimit)
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

	c.JSON(http.StatusOK, gin.H{
		"data": readings,
		"meta": gin.H{
			"count": len(readings),
		},
	})
}

// Alert is one threshold violation of one parameter in one reading.
type Alert struct {
	StationID   string         `json:"station_id"`
	StationName string         `json:"station"`
	Timestamp   time.Time      `json:"timestamp"`
	Parameter   string         `json:"parameter"`
	Value       float64        `json:"value"`
	Limit       string         `json:"limit"`
	Severity    quality.Status `json:"severity"`
}

// handleV1ListAlerts evaluates thresholds over the filtered reading set
// GET /api/v1/alerts?stations=a,b&params=ph,turbidity&last_n_days=1
func (s *Server) handleV1ListAlerts(c *gin.Context) {
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

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	readings, err := s.store.FetchReadings(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	alerts := collectAlerts(readings, params)

	c.JSON(http.StatusOK, gin.H{
		"data": alerts,
		"meta": gin.H{
			"count":            len(alerts),
			"readings_scanned": len(readings),
			"parameters":       params,
		},
	})
}

func collectAlerts(readings []db.Reading, params []string) []Alert {
	alerts := make([]Alert, 0)
	for _, r := range readings {
		for _, param := range params {
			value, ok := r.Value(param)
			if !ok {
				continue
			}
			severity := quality.Evaluate(param, value)
			if severity == quality.StatusNormal || severity == quality.StatusUnknown {
				continue
			}
			limit := "unbounded"
			if t, ok := quality.Lookup(param); ok {
				limit = t.LimitText()
			}
			alerts = append(alerts, Alert{
				StationID:   r.StationID,
				StationName: r.StationName,
				Timestamp:   r.Timestamp,
				Parameter:   param,
				Value:       value,
				Limit:       limit,
				Severity:    severity,
			})
		}
	}
	return alerts
}
