package handlers

import (
	"net/http"

	"knowledgebase/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Admin(c *gin.Context) {
	userID, _ := c.Get("user_id")

	dashboard, err := h.dashboardService.AdminDashboard(userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) Redactor(c *gin.Context) {
	userID, _ := c.Get("user_id")

	dashboard, err := h.dashboardService.RedactorDashboard(userID.(uint))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
