package metrics

import (
	"livpulse/internal/common/api"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MetricsApi struct {
	MetricsController *MetricsController
	Config            *config.Config
}

func NewMetricsApi(metricsController *MetricsController, cfg *config.Config) api.Route {
	return &MetricsApi{
		MetricsController: metricsController,
		Config:            cfg,
	}
}

func (a *MetricsApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(a.Config.SkipAuth)

	platform := app.Group("/api/platform", auth)
	platform.Get("/metrics", a.MetricsController.ListPlatformMetrics)
	platform.Get("/metrics/:platform", a.MetricsController.GetPlatformMetrics)
	platform.Get("/trends/:platform", a.MetricsController.GetPlatformTrends)
	platform.Get("/comparison", a.MetricsController.GetPlatformComparison)
	platform.Get("/alerts", a.MetricsController.GetPlatformAlerts)
	platform.Get("/kpis", a.MetricsController.GetPlatformKPIs)

	backend := app.Group("/api/backend", auth)
	backend.Get("/metrics", a.MetricsController.ListBackendMetrics)
	backend.Get("/metrics/:service", a.MetricsController.GetBackendMetrics)
	backend.Get("/trends/:service", a.MetricsController.GetBackendTrends)
	backend.Get("/alerts", a.MetricsController.GetBackendAlerts)
	backend.Get("/kpis", a.MetricsController.GetBackendKPIs)
	backend.Get("/dependencies", a.MetricsController.GetBackendDependencies)

	store := app.Group("/api/store", auth)
	store.Get("/metrics", a.MetricsController.ListStoreMetrics)
	store.Get("/metrics/:platform", a.MetricsController.GetStoreMetrics)
	store.Get("/trends", a.MetricsController.GetStoreTrends)
	store.Get("/comparison", a.MetricsController.GetStoreComparison)
	store.Get("/alerts", a.MetricsController.GetStoreAlerts)
	store.Get("/kpis", a.MetricsController.GetStoreKPIs)

	cms := app.Group("/api/cms", auth)
	cms.Get("/metrics", a.MetricsController.ListCMSMetrics)
	cms.Get("/metrics/:module", a.MetricsController.GetCMSMetrics)
	cms.Get("/trends", a.MetricsController.GetCMSTrends)
	cms.Get("/alerts", a.MetricsController.GetCMSAlerts)
	cms.Get("/kpis", a.MetricsController.GetCMSKPIs)
	cms.Get("/processing", a.MetricsController.GetCMSProcessing)

	ops := app.Group("/api/ops", auth)
	ops.Get("/metrics", a.MetricsController.ListOpsMetrics)
	ops.Get("/cdn", a.MetricsController.GetCDNMetrics)
	ops.Get("/devops", a.MetricsController.GetDevOpsMetrics)
	ops.Get("/alerts", a.MetricsController.GetOpsAlerts)
	ops.Get("/kpis", a.MetricsController.GetOpsKPIs)
}
