package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// validRoutes is the route set reported to clients hitting an unknown path.
var validRoutes = []string{
	"GET /",
	"GET /health",
	"GET /api/models",
	"GET /api/models/{modelId}/chat?q=...",
	"GET /api/compare?q=...&models=...",
	"GET /api/stats",
}

func (s *Server) setupRoutes() {
	gin.SetMode(s.ginMode)
	s.router = gin.New()

	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(s.corsMiddleware())
	s.router.Use(s.maxBodySizeMiddleware())
	s.router.Use(s.requestIDMiddleware())

	s.router.GET("/", s.showDocs)
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		api.GET("/models", s.listModels)
		api.GET("/models/:modelId/chat", s.chatWithModel)
		api.GET("/compare", s.compareModels)
		api.GET("/stats", s.getStatsData)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":        "Route not found",
			"valid_routes": validRoutes,
		})
	})
}
