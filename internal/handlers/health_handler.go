package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/config"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

type HealthHandler struct {
	BaseHandler
	repo repositories.Repository
}

func NewHealthHandler(repo repositories.Repository, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		repo:        repo,
	}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: config.ServiceName,
	})
}

// Readiness is a placeholder; it performs no dependency checks.
func (h *HealthHandler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: config.ServiceName,
	})
}

// DatabaseHealth pings the store and reports the round-trip duration. An
// unreachable or uninitialized store is a "failed" payload, not an error
// response.
func (h *HealthHandler) DatabaseHealth(c *gin.Context) {
	start := time.Now()
	err := h.repo.Ping(c.Request.Context())
	durationMS := float64(time.Since(start).Microseconds()) / 1000.0

	resp := models.DBHealthResponse{
		Status:     "ok",
		DurationMS: durationMS,
	}
	if err != nil {
		msg := err.Error()
		resp.Status = "failed"
		resp.Error = &msg
		h.LogError(c, err, "database health check failed")
	}

	c.JSON(http.StatusOK, resp)
}
