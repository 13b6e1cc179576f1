package overview

import (
	"livpulse/internal/common/api"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type OverviewApi struct {
	OverviewController *OverviewController
	Config             *config.Config
}

func NewOverviewApi(overviewController *OverviewController, cfg *config.Config) api.Route {
	return &OverviewApi{
		OverviewController: overviewController,
		Config:             cfg,
	}
}

func (a *OverviewApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/overview", a.OverviewController.GetOverview)
	group.Get("/kpis", a.OverviewController.GetKPIs)
	group.Get("/alerts", a.OverviewController.GetAlerts)
	group.Get("/health", a.OverviewController.GetHealth)
	group.Get("/trends", a.OverviewController.GetTrends)
}
