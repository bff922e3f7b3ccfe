package handlers

import (
	"time"

	"knowledgebase/config"
	"knowledgebase/helper"
	"knowledgebase/middleware"
	"knowledgebase/models"
	"knowledgebase/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

type AuthHandler struct {
	authService services.AuthService
	blacklist   *middleware.TokenBlacklist
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, blacklist *middleware.TokenBlacklist, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, blacklist: blacklist, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

// Logout blacklists the presented token for its remaining lifetime. Without
// Redis the blacklist is a no-op and the client just discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.GetString("token")
	if tokenString == "" {
		h.Helper.SendUnauthorizedError(c, "No token in request", h.Helper.EmptyJsonMap())
		return
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			ttl := time.Until(time.Unix(int64(exp), 0))
			_ = h.blacklist.Add(tokenString, ttl)
		}
	}

	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}
