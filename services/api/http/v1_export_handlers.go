package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/water-quality-viewer/services/api/csvexport"
)

// handleV1ExportCSV streams the filtered reading table as a CSV download
// GET /api/v1/export/csv?stations=a,b&params=ph,turbidity&last_n_days=7
func (s *Server) handleV1ExportCSV(c *gin.Context) {
	q, ok := parseReadingQuery(c, 0)
	if !ok {
		return
	}
	params, ok := parseParamSelection(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	readings, err := s.store.FetchReadings(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := csvexport.Filename(time.Now().UTC())
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := csvexport.Write(c.Writer, readings, params); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		_ = c.Error(err)
	}
}
