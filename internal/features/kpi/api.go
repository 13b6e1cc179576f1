package kpi

import (
	"livpulse/internal/common/api"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type KpiApi struct {
	KpiController *KpiController
	Config        *config.Config
}

func NewKpiApi(kpiController *KpiController, cfg *config.Config) api.Route {
	return &KpiApi{
		KpiController: kpiController,
		Config:        cfg,
	}
}

func (a *KpiApi) Setup(app *fiber.App) {
	group := app.Group("/api/kpi", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/widgets", a.KpiController.ListWidgets)
	group.Post("/widgets", a.KpiController.CreateWidget)
	group.Get("/widgets/:id", a.KpiController.GetWidget)
	group.Put("/widgets/:id", a.KpiController.UpdateWidget)
	group.Delete("/widgets/:id", a.KpiController.DeleteWidget)

	group.Get("/dashboards", a.KpiController.ListDashboards)
	group.Post("/dashboards", a.KpiController.CreateDashboard)
	group.Get("/dashboards/:id", a.KpiController.GetDashboard)
	group.Put("/dashboards/:id", a.KpiController.UpdateDashboard)
	group.Delete("/dashboards/:id", a.KpiController.DeleteDashboard)

	group.Get("/data-sources", a.KpiController.ListDataSources)
	group.Post("/data-sources", a.KpiController.CreateDataSource)
	group.Get("/data-sources/:id", a.KpiController.GetDataSource)
	group.Put("/data-sources/:id", a.KpiController.UpdateDataSource)
	group.Delete("/data-sources/:id", a.KpiController.DeleteDataSource)

	group.Get("/analytics", a.KpiController.GetAnalytics)
}
