// Package api exposes the engine's HTTP control plane: task CRUD, stop
// requests, persisted results, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/perfflow/perfflow/pkg/database"
	"github.com/perfflow/perfflow/pkg/version"
)

// Server hosts the control-plane handlers.
type Server struct {
	db *database.Client
}

// NewServer creates the API server over the shared database client.
func NewServer(db *database.Client) *Server {
	return &Server{db: db}
}

// RegisterRoutes mounts all control-plane routes on the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.CreateTask)
		v1.GET("/tasks", s.ListTasks)
		v1.GET("/tasks/:id", s.GetTask)
		v1.POST("/tasks/:id/stop", s.StopTask)
		v1.GET("/tasks/:id/results", s.GetTaskResults)
	}
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
