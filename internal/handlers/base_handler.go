package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/services"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

// Error codes used in the response envelope.
const (
	CodeHTTPError     = "http_error"
	CodeInternalError = "internal_error"
)

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.FromContext(c, h.logger).Error(msg, append(args, "error", err)...)
}

// respondError writes the canonical error envelope. The request id is echoed
// from the caller's correlation headers; it is never generated here.
func (h *BaseHandler) respondError(c *gin.Context, status int, code, message string) {
	var requestID *string
	if id := utils.RequestID(c); id != "" {
		requestID = &id
	}

	var details map[string]any
	if code != CodeInternalError {
		details = map[string]any{"status_code": status}
	}

	c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
	})
}

// handleServiceError maps service-layer errors to HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrs utils.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		h.respondError(c, http.StatusBadRequest, CodeHTTPError, validationErrs.Error())
	case services.IsNotFoundError(err):
		h.respondError(c, http.StatusNotFound, CodeHTTPError, err.Error())
	case services.IsConflictError(err):
		h.respondError(c, http.StatusConflict, CodeHTTPError, err.Error())
	case errors.Is(err, services.ErrNotImplemented):
		h.respondError(c, http.StatusNotImplemented, CodeHTTPError, err.Error())
	case repositories.IsStoreNotInitializedError(err):
		h.respondError(c, http.StatusServiceUnavailable, CodeHTTPError, err.Error())
	default:
		h.LogError(c, err, "unexpected service error")
		h.respondError(c, http.StatusInternalServerError, CodeInternalError, "Internal server error")
	}
}

// parseListParams reads skip/limit query parameters with their defaults.
// Range checks happen in the service layer; only non-numeric input is
// rejected here. The bool result reports whether parsing succeeded.
func (h *BaseHandler) parseListParams(c *gin.Context) (repositories.ListParams, bool) {
	params := repositories.DefaultListParams()

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, CodeHTTPError, "skip must be an integer")
			return params, false
		}
		params.Skip = v
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, CodeHTTPError, "limit must be an integer")
			return params, false
		}
		params.Limit = v
	}

	return params, true
}
