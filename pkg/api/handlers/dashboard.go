package handlers

import (
	"net/http"
	"time"

	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/dashboard"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles fetching the headline KPI metrics with trends
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	stats, err := h.dashboardService.Stats(c.Request().Context(), userID, time.Now())
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
