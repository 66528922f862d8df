package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/config"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/services"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

type HandlerManager struct {
	userHandler       *UserHandler
	contentHandler    *ContentHandler
	assessmentHandler *AssessmentHandler
	authHandler       *AuthHandler
	healthHandler     *HealthHandler
}

func NewHandlerManager(
	cfg *config.Config,
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		contentHandler:    NewContentHandler(serviceManager.Content(), logger),
		assessmentHandler: NewAssessmentHandler(serviceManager.Assessment(), logger),
		authHandler:       NewAuthHandler(cfg, logger),
		healthHandler:     NewHealthHandler(repo, logger),
	}
}

// SetupRoutes registers all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health probes
	router.GET("/healthz", hm.healthHandler.Liveness)
	router.GET("/readyz", hm.healthHandler.Readiness)
	router.GET("/health/db", hm.healthHandler.DatabaseHealth)

	// Auth debug
	auth := router.Group("/auth")
	{
		auth.GET("/debug", hm.authHandler.DebugPrincipal)
	}

	// User routes
	users := router.Group("/users")
	{
		users.GET("", hm.userHandler.ListUsers)
		users.POST("", hm.userHandler.CreateUser)
		users.GET("/:id", hm.userHandler.GetUser)
		users.PUT("/:id", hm.userHandler.UpdateUser)
		users.DELETE("/:id", hm.userHandler.DeleteUser)
	}

	// Content routes
	content := router.Group("/content")
	{
		content.GET("", hm.contentHandler.ListContent)
		content.POST("", hm.contentHandler.CreateContent)
		content.GET("/:id", hm.contentHandler.GetContent)
		content.PUT("/:id", hm.contentHandler.UpdateContent)
		content.DELETE("/:id", hm.contentHandler.DeleteContent)
	}

	// Assessment routes
	assessments := router.Group("/assessments")
	{
		assessments.GET("", hm.assessmentHandler.ListAssessments)
		assessments.POST("", hm.assessmentHandler.CreateAssessment)
		assessments.GET("/:id", hm.assessmentHandler.GetAssessment)
		assessments.PUT("/:id", hm.assessmentHandler.UpdateAssessment)
		assessments.DELETE("/:id", hm.assessmentHandler.DeleteAssessment)
	}
}
