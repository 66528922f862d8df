package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/config"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/services"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

// Fallback subject when the caller sends no identity header in stub mode.
const stubSubject = "stub-user"

type AuthHandler struct {
	BaseHandler
	authStub bool
}

func NewAuthHandler(cfg *config.Config, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authStub:    cfg.AuthStub,
	}
}

// DebugPrincipal resolves and returns the caller's principal. In stub mode the
// identity comes from the X-Auth-* headers; real mode is not implemented and
// never inspects the request.
func (h *AuthHandler) DebugPrincipal(c *gin.Context) {
	if !h.authStub {
		h.handleServiceError(c, services.ErrNotImplemented)
		return
	}

	subject := c.GetHeader("X-Auth-Subject")
	if subject == "" {
		subject = stubSubject
	}

	var email *string
	if v := c.GetHeader("X-Auth-Email"); v != "" {
		email = &v
	}

	roles, err := models.ParseRoles(c.GetHeader("X-Auth-Roles"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, CodeHTTPError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.Principal{
		Subject: subject,
		Roles:   roles,
		Email:   email,
	})
}
