package handlers

import (
	"errors"

	"knowledgebase/helper"
	"knowledgebase/models"
	"knowledgebase/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService, h *helper.HTTPHelper) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, Helper: h}
}

// GetProfile renders the profile page. For non-admin recipients this marks
// their unseen notes as seen; repeating the request changes nothing.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	page, err := h.profileService.GetProfilePage(userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", page)
}

func (h *ProfileHandler) UpdateInfo(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.profileService.UpdateInfo(userID.(uint), req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile updated", user)
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, _ := c.Get("user_id")

	path, err := saveUpload(c, "avatar", "avatars")
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if path == "" {
		h.Helper.SendBadRequest(c, "No avatar file in request", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.profileService.SetAvatar(userID.(uint), path); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Avatar updated", gin.H{"avatar": path})
}

func (h *ProfileHandler) SendNote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.SendNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	note, err := h.profileService.SendNote(userID.(uint), req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			h.Helper.SendForbiddenError(c, "Only admins can send notes", h.Helper.EmptyJsonMap())
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Recipient not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Note sent", note)
}
