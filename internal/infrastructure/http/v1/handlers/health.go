package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/infrastructure/storage/postgres"
)

// Database is the part of the connection pool the health checks need.
// *postgres.Pool implements it.
type Database interface {
	Ping(ctx context.Context) error
	Stats() postgres.PoolStats
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	db      Database
	version string
}

// NewHealthHandler creates a new health handler. db may be nil when the
// service runs without a database (memory sequence backend in tests).
func NewHealthHandler(db Database, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
		return
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"database": "unhealthy",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"checks": map[string]string{
			"database": "healthy",
		},
		"database": h.db.Stats(),
	})
}
