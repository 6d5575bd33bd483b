package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"authapi/internal/middleware"
	"authapi/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the authenticated user's dashboard.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /dashboard/
// @Summary Dashboard counts for the caller
// @Description The user is identified by the Bearer access token; no request body is read. Returns username, email, profession and the todo and inventory counts.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=DashboardResponse}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/ [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	stats, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// Export handles GET /dashboard/export
// @Summary Download the dashboard as an Excel workbook
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	data, err := h.dashboardService.ExportDashboard(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "dashboard.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}
