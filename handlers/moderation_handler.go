package handlers

import (
	"net/http"

	"knowledgebase/models"
	"knowledgebase/services"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationService services.ModerationService
}

func NewModerationHandler(moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) Queue(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.moderationService.Queue(userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ModerationHandler) Decide(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req models.ModerationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.moderationService.Decide(id, req, userID.(uint)); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moderation action applied"})
}
