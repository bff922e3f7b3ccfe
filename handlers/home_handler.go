package handlers

import (
	"net/http"

	"knowledgebase/models"
	"knowledgebase/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	articleService services.ArticleService
	profileService services.ProfileService
}

func NewHomeHandler(articleService services.ArticleService, profileService services.ProfileService) *HomeHandler {
	return &HomeHandler{articleService: articleService, profileService: profileService}
}

func (h *HomeHandler) Home(c *gin.Context) {
	articles, err := h.articleService.ListRecentPublished(4)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := models.HomeResponse{Articles: articles}
	if userID := optionalUserID(c); userID != nil {
		count, avatar, err := h.profileService.HomeInfo(*userID)
		if err == nil {
			response.UnseenNotesCount = count
			response.AvatarURL = avatar
		}
	}

	c.JSON(http.StatusOK, response)
}
