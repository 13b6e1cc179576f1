package dashboard

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/models"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
	Config              *config.Config
}

func NewDashboardApi(dashboardController *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{
		DashboardController: dashboardController,
		Config:              cfg,
	}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/template", a.DashboardController.GetTemplate)
	group.Put("/template/:role", middleware.RequireRole(models.RoleAdmin), a.DashboardController.UpdateTemplate)
	group.Post("/data", a.DashboardController.GetDashboardData)
	group.Get("/data-sources", a.DashboardController.GetDataSources)
	group.Get("/widgets", middleware.RequireRole(models.RoleAdmin), a.DashboardController.GetWidgetLibrary)
}
