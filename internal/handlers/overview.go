// overview.go
//
// Dashboard, calendar, and health routes.

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/calendar"
	"github.com/kizunaworks/sasaeru/internal/config"
	"github.com/kizunaworks/sasaeru/internal/services"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OverviewHandler handles the dashboard, calendar, and health routes
type OverviewHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
	Cfg *config.Config
}

// Dashboard handles GET /api/dashboard
// @Summary Dashboard statistics and today's/this week's activities
// @Tags Overview
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Router /dashboard [get]
func (h *OverviewHandler) Dashboard(c *fiber.Ctx) error {
	stats := services.GetDashboardStats(h.DB, h.Log, time.Now())
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// Calendar handles GET /api/calendar?month=YYYY-MM-DD
// @Summary Month-grid calendar with per-day activity buckets
// @Tags Overview
// @Produce json
// @Param month query string false "Any date inside the target month, YYYY-MM-DD; defaults to today"
// @Success 200 {object} services.CalendarMonth
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /calendar [get]
func (h *OverviewHandler) Calendar(c *fiber.Ctx) error {
	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse(calendar.DateKeyLayout, raw)
		if err != nil {
			return utils.ErrorResponse(c, "Invalid month, expected YYYY-MM-DD", fiber.StatusBadRequest, "validation.input")
		}
		month = parsed
	}

	view, err := services.MonthActivities(h.DB, month)
	if err != nil {
		h.Log.Error("calendar fetch failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "calendar.month")
	}
	return utils.SuccessResponse(c, view, fiber.StatusOK)
}

// Health handles GET /api/health
// @Summary Service health
// @Tags Overview
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *OverviewHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
