package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/services"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

type AssessmentHandler struct {
	BaseHandler
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService, logger utils.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assessmentService: assessmentService,
	}
}

// ListAssessments returns a page of active assessments.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	params, ok := h.parseListParams(c)
	if !ok {
		return
	}

	result, err := h.assessmentService.List(c.Request.Context(), params)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssessment retrieves an assessment by ID.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessment, err := h.assessmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// CreateAssessment creates a new assessment.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req services.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, CodeHTTPError, "Invalid request payload")
		return
	}

	assessment, err := h.assessmentService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

// UpdateAssessment applies a partial update to an assessment.
func (h *AssessmentHandler) UpdateAssessment(c *gin.Context) {
	var req services.UpdateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, CodeHTTPError, "Invalid request payload")
		return
	}

	assessment, err := h.assessmentService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// DeleteAssessment soft-deletes an assessment.
func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	result, err := h.assessmentService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
