package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/core, /api/v1/readings, /api/v1/alerts,
// /api/v1/charts, /api/v1/realtime, /api/v1/export
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Core endpoints - station metadata
	core := v1.Group("/core")
	{
		core.GET("/stations", s.handleV1ListStations)
		core.GET("/stations/:id", s.handleV1GetStation)
	}

	// Filtered readings and threshold alerts
	v1.GET("/readings", s.handleV1ListReadings)
	v1.GET("/alerts", s.handleV1ListAlerts)

	// Chart payloads - line series, correlation heat-map, radar profile
	charts := v1.Group("/charts")
	{
		charts.GET("/series", s.handleV1ChartSeries)
		charts.GET("/correlation", s.handleV1ChartCorrelation)
		charts.GET("/radar/:id", s.handleV1ChartRadar)
	}

	// Realtime endpoints - latest data and KPIs
	realtime := v1.Group("/realtime")
	{
		realtime.GET("/now", s.handleV1RealtimeNow)
		realtime.GET("/summary", s.handleV1RealtimeSummary)
	}

	// File exports
	export := v1.Group("/export")
	{
		export.GET("/csv", s.handleV1ExportCSV)
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
