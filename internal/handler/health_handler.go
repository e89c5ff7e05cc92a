package handler

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db       *sql.DB
	audioDir string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db *sql.DB, audioDir string) *HealthHandler {
	return &HealthHandler{
		db:       db,
		audioDir: audioDir,
	}
}

// Ping is the basic health check.
//
//	@Summary	Ping
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness checks the dependencies: the conversation database must answer
// a ping and the audio directory must accept writes.
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	503	{object}	map[string]interface{}
//	@Router		/health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(503, utils.H{
			"status":   "not_ready",
			"database": "unhealthy",
			"error":    err.Error(),
		})
		return
	}

	probe := filepath.Join(h.audioDir, ".ready")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		c.JSON(503, utils.H{
			"status":  "not_ready",
			"storage": "unhealthy",
			"error":   err.Error(),
		})
		return
	}
	os.Remove(probe)

	c.JSON(200, utils.H{
		"status":   "ready",
		"database": "healthy",
		"storage":  "healthy",
	})
}

// Liveness reports that the process is running.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
