package handlers

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/config"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

// SetupMiddleware installs the common middleware chain on the router.
func SetupMiddleware(router *gin.Engine, cfg *config.Config, logger utils.Logger) {
	router.Use(CORSMiddleware(cfg))
	router.Use(RecoveryMiddleware(logger))
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

// RecoveryMiddleware converts panics into the canonical error envelope.
func RecoveryMiddleware(logger utils.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)

		var requestID *string
		if id := utils.RequestID(c); id != "" {
			requestID = &id
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     CodeInternalError,
			Message:   "Internal server error",
			RequestID: requestID,
		})
	})
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// CORSMiddleware applies the configured CORS policy. An empty origin list
// allows any origin.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowedMethods := strings.Join(cfg.AllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.CORSMaxAge)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case len(cfg.AllowedOrigins) == 0:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(cfg.AllowedOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
