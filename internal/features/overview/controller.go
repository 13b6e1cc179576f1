package overview

import (
	"livpulse/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type OverviewController struct {
	OverviewService OverviewService
}

func NewOverviewController(overviewService OverviewService) *OverviewController {
	return &OverviewController{
		OverviewService: overviewService,
	}
}

// GetOverview godoc
// @Summary Cross-domain overview
// @Description Metrics snapshot for every domain plus generated summary, risks and recommendations
// @Tags overview
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/dashboard/overview [get]
func (ctrl *OverviewController) GetOverview(ctx *fiber.Ctx) error {
	bundle, err := ctrl.OverviewService.Overview(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, bundle)
}

// GetKPIs godoc
// @Summary Merged KPI rollups
// @Tags overview
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/dashboard/kpis [get]
func (ctrl *OverviewController) GetKPIs(ctx *fiber.Ctx) error {
	bundle, err := ctrl.OverviewService.KPIs(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, bundle)
}

// GetAlerts godoc
// @Summary Merged alert feed
// @Description All domain alerts ordered by severity then recency, capped at 50
// @Tags overview
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/dashboard/alerts [get]
func (ctrl *OverviewController) GetAlerts(ctx *fiber.Ctx) error {
	bundle, err := ctrl.OverviewService.Alerts(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, bundle)
}

// GetHealth godoc
// @Summary System-wide health rollup
// @Tags overview
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/dashboard/health [get]
func (ctrl *OverviewController) GetHealth(ctx *fiber.Ctx) error {
	bundle, err := ctrl.OverviewService.Health(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, bundle)
}

// GetTrends godoc
// @Summary Headline trend series
// @Tags overview
// @Produce json
// @Param days query int false "Days of history" default(7)
// @Success 200 {object} api.Response
// @Router /api/dashboard/trends [get]
func (ctrl *OverviewController) GetTrends(ctx *fiber.Ctx) error {
	bundle, err := ctrl.OverviewService.Trends(ctx.UserContext(), ctx.QueryInt("days", 7))
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, bundle)
}
