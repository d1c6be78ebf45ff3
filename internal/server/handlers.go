package server

import (
	"fmt"
	"net/http"
	"time"

	"modelgate/internal/core"
	"modelgate/internal/metrics"

	"github.com/gin-gonic/gin"
)

func (s *Server) showDocs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Model Gateway",
		"description": "HTTP gateway for hosted-model chat completions with multi-model comparison",
		"endpoints": gin.H{
			"GET /health":                   "service health and model count",
			"GET /api/models":               "list supported models with publishers",
			"GET /api/models/{modelId}/chat": "chat with one model (q required, temperature/max_tokens optional)",
			"GET /api/compare":              "run one query against several models (q and models required)",
			"GET /api/stats":                "request statistics",
		},
		"example": "/api/models/gpt-4o/chat?q=Hello",
	})
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"timestamp":        time.Now().Format(time.RFC3339),
		"models_available": s.registry.Len(),
	})
}

func (s *Server) listModels(c *gin.Context) {
	entries := s.registry.Entries()
	c.JSON(http.StatusOK, core.ModelList{
		Data:       entries,
		TotalCount: len(entries),
		HasMore:    false,
	})
}

func (s *Server) chatWithModel(c *gin.Context) {
	startTime := time.Now()
	defer trackPerformanceWithMetrics(s.metricsService, startTime)()

	modelID := c.Param("modelId")
	if !s.registry.Contains(modelID) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":            fmt.Sprintf("Model '%s' not found", modelID),
			"available_models": s.registry.IDs(),
		})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required query parameter 'q'",
			"example": fmt.Sprintf("/api/models/%s/chat?q=Hello", modelID),
		})
		return
	}

	result := s.requestProcessor.CallModel(c.Request.Context(), core.ChatQuery{
		Model:       modelID,
		Query:       query,
		Temperature: parseTemperature(c),
		MaxTokens:   parseMaxTokens(c),
	})

	if !result.OK() {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) compareModels(c *gin.Context) {
	startTime := time.Now()
	defer trackPerformanceWithMetrics(s.metricsService, startTime)()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required query parameter 'q'",
			"example": "/api/compare?q=Hello&models=gpt-4o,Mistral-Nemo",
		})
		return
	}

	modelIDs := splitModelList(c.Query("models"))
	if len(modelIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required query parameter 'models' (comma-separated model IDs)",
			"example": "/api/compare?q=Hello&models=gpt-4o,Mistral-Nemo",
		})
		return
	}

	// Reject the whole request if any listed model is unknown, reporting
	// every invalid ID at once.
	if invalid := s.registry.Invalid(modelIDs); len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            fmt.Sprintf("Invalid models: %s", joinIDs(invalid)),
			"available_models": s.registry.IDs(),
		})
		return
	}

	results := s.requestProcessor.CompareModels(
		c.Request.Context(),
		modelIDs,
		query,
		parseTemperature(c),
		parseMaxTokens(c),
	)

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) getStatsData(c *gin.Context) {
	stats := s.metricsService.GetRequestStats()
	periodStats := metrics.GetPeriodStats(stats.RequestHistory, 24, 24*7, 24*30)

	c.JSON(http.StatusOK, gin.H{
		"currentTime":  time.Now().Format(core.TimeFormatDateTime),
		"currentQPS":   fmt.Sprintf("%.3f", s.metricsService.GetQPS()),
		"totalRecords": len(stats.RequestHistory),
		"stats24h":     periodStats[24],
		"stats7d":      periodStats[24*7],
		"stats30d":     periodStats[24*30],
	})
}
