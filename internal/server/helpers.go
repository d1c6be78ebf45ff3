package server

import (
	"strings"
	"time"

	"modelgate/internal/core"
	"modelgate/internal/metrics"
	"modelgate/internal/util"

	"github.com/gin-gonic/gin"
)

// trackPerformanceWithMetrics records handler duration
func trackPerformanceWithMetrics(m *metrics.MetricsService, startTime time.Time) func() {
	return func() {
		m.RecordHTTPRequest(time.Since(startTime))
	}
}

// parseTemperature reads the temperature override, falling back to the
// default on missing or malformed input.
func parseTemperature(c *gin.Context) float64 {
	return util.ParseFloatOrDefault(c.Query("temperature"), core.DefaultTemperature)
}

// parseMaxTokens reads the max_tokens override, falling back to the default
// on missing or malformed input.
func parseMaxTokens(c *gin.Context) int {
	return util.ParseIntOrDefault(c.Query("max_tokens"), core.DefaultMaxTokens)
}

// splitModelList splits the comma-separated models parameter, preserving
// order and duplicates.
func splitModelList(value string) []string {
	return util.SplitCSV(value)
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
