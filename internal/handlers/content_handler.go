package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digitalt3/lms-core-api/internal/services"
	"github.com/digitalt3/lms-core-api/internal/utils"
)

type ContentHandler struct {
	BaseHandler
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    NewBaseHandler(logger),
		contentService: contentService,
	}
}

// ListContent returns a page of active content items.
func (h *ContentHandler) ListContent(c *gin.Context) {
	params, ok := h.parseListParams(c)
	if !ok {
		return
	}

	result, err := h.contentService.List(c.Request.Context(), params)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetContent retrieves a content item by ID.
func (h *ContentHandler) GetContent(c *gin.Context) {
	content, err := h.contentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// CreateContent creates a new content item.
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req services.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, CodeHTTPError, "Invalid request payload")
		return
	}

	content, err := h.contentService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

// UpdateContent applies a partial update to a content item.
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	var req services.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, CodeHTTPError, "Invalid request payload")
		return
	}

	content, err := h.contentService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// DeleteContent soft-deletes a content item.
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	result, err := h.contentService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
