package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/aquaflow/water-quality-viewer/services/api/db"
	"github.com/aquaflow/water-quality-viewer/services/api/quality"
)

// StationNow is the latest reading of one station with its per-parameter
// statuses and quality index.
type StationNow struct {
	Reading      db.Reading                `json:"reading"`
	Statuses     map[string]quality.Status `json:"statuses"`
	Status       quality.Status            `json:"status"`
	QualityIndex float64                   `json:"quality_index"`
}

// handleV1RealtimeNow returns the latest reading per station
// GET /api/v1/realtime/now
func (s *Server) handleV1RealtimeNow(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	latest, err := s.store.LatestPerStation(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stations := make([]StationNow, 0, len(latest))
	for _, r := range latest {
		values := r.Values()
		statuses, worst := quality.EvaluateAll(values)
		stations = append(stations, StationNow{
			Reading:      r,
			Statuses:     statuses,
			Status:       worst,
			QualityIndex: quality.Index(values),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": stations,
		"meta": gin.H{
			"stations_count": len(stations),
			"generated_at":   time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleV1RealtimeSummary returns the dashboard KPI block
// GET /api/v1/realtime/summary
func (s *Server) handleV1RealtimeSummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	var (
		stations    []db.Station
		latest      []db.Reading
		totalCount  int64
		alertsToday int64
		averages    *db.AveragesResult
	)

	now := time.Now().UTC()
	midnight := now.Truncate(24 * time.Hour)
	windowStart := now.Add(-time.Duration(s.cfg.DefaultDays) * 24 * time.Hour)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stations, err = s.store.ListStations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.store.LatestPerStation(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalCount, err = s.store.CountReadings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alertsToday, err = s.store.CountAlertsSince(gctx, midnight)
		return err
	})
	g.Go(func() error {
		var err error
		averages, err = s.store.Averages(gctx, windowStart)
		return err
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	meanIndex := 0.0
	if len(latest) > 0 {
		for _, r := range latest {
			meanIndex += quality.Index(r.Values())
		}
		meanIndex /= float64(len(latest))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"active_stations": len(stations),
			"total_readings":  totalCount,
			"alerts_today":    alertsToday,
			"quality_index":   meanIndex,
			"averages":        averages,
		},
		"meta": gin.H{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
