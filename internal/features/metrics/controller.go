package metrics

import (
	"fmt"

	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type MetricsController struct {
	MetricsService MetricsService
}

func NewMetricsController(metricsService MetricsService) *MetricsController {
	return &MetricsController{
		MetricsService: metricsService,
	}
}

func trendPeriod(days int) string {
	if days <= 0 {
		days = 30
	}
	return fmt.Sprintf("%d days", days)
}

// ListPlatformMetrics godoc
// @Summary All platform metrics
// @Tags platform
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/platform/metrics [get]
func (ctrl *MetricsController) ListPlatformMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.AllPlatformMetrics())
}

// GetPlatformMetrics godoc
// @Summary Metrics for one platform
// @Tags platform
// @Produce json
// @Param platform path string true "Platform name"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/platform/metrics/{platform} [get]
func (ctrl *MetricsController) GetPlatformMetrics(ctx *fiber.Ctx) error {
	metrics, ok := ctrl.MetricsService.PlatformMetric(ctx.Params("platform"))
	if !ok {
		return api.Fail(ctx, apperror.NotFound("Platform not found"))
	}
	return api.Success(ctx, metrics)
}

// GetPlatformTrends godoc
// @Summary Platform trend history
// @Tags platform
// @Produce json
// @Param platform path string true "Platform name"
// @Param days query int false "Days of history" default(30)
// @Success 200 {object} api.Response
// @Router /api/platform/trends/{platform} [get]
func (ctrl *MetricsController) GetPlatformTrends(ctx *fiber.Ctx) error {
	platform := ctx.Params("platform")
	days := ctx.QueryInt("days", 30)
	return api.Success(ctx, fiber.Map{
		"platform": platform,
		"trends":   ctrl.MetricsService.PlatformTrends(platform, days),
		"period":   trendPeriod(days),
	})
}

// GetPlatformComparison godoc
// @Summary Compare platforms
// @Tags platform
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/platform/comparison [get]
func (ctrl *MetricsController) GetPlatformComparison(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.PlatformComparison())
}

// GetPlatformAlerts godoc
// @Summary Platform alerts
// @Tags platform
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/platform/alerts [get]
func (ctrl *MetricsController) GetPlatformAlerts(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.PlatformAlerts())
}

// GetPlatformKPIs godoc
// @Summary Platform KPI rollup
// @Tags platform
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/platform/kpis [get]
func (ctrl *MetricsController) GetPlatformKPIs(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.PlatformKPIs())
}

// ListBackendMetrics godoc
// @Summary All backend service metrics
// @Tags backend
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/backend/metrics [get]
func (ctrl *MetricsController) ListBackendMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.AllBackendMetrics())
}

// GetBackendMetrics godoc
// @Summary Metrics for one backend service
// @Tags backend
// @Produce json
// @Param service path string true "Service name"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/backend/metrics/{service} [get]
func (ctrl *MetricsController) GetBackendMetrics(ctx *fiber.Ctx) error {
	metrics, ok := ctrl.MetricsService.BackendMetric(ctx.Params("service"))
	if !ok {
		return api.Fail(ctx, apperror.NotFound("Service not found"))
	}
	return api.Success(ctx, metrics)
}

// GetBackendTrends godoc
// @Summary Backend service trend history
// @Tags backend
// @Produce json
// @Param service path string true "Service name"
// @Param days query int false "Days of history" default(30)
// @Success 200 {object} api.Response
// @Router /api/backend/trends/{service} [get]
func (ctrl *MetricsController) GetBackendTrends(ctx *fiber.Ctx) error {
	service := ctx.Params("service")
	days := ctx.QueryInt("days", 30)
	return api.Success(ctx, fiber.Map{
		"service": service,
		"trends":  ctrl.MetricsService.BackendTrends(service, days),
		"period":  trendPeriod(days),
	})
}

// GetBackendAlerts godoc
// @Summary Backend alerts
// @Tags backend
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/backend/alerts [get]
func (ctrl *MetricsController) GetBackendAlerts(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.BackendAlerts())
}

// GetBackendKPIs godoc
// @Summary Backend KPI rollup
// @Tags backend
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/backend/kpis [get]
func (ctrl *MetricsController) GetBackendKPIs(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.BackendKPIs())
}

// GetBackendDependencies godoc
// @Summary Dependency health across backend services
// @Tags backend
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/backend/dependencies [get]
func (ctrl *MetricsController) GetBackendDependencies(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.BackendDependencyHealth())
}

// ListStoreMetrics godoc
// @Summary All storefront metrics
// @Tags store
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/store/metrics [get]
func (ctrl *MetricsController) ListStoreMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.AllStoreMetrics())
}

// GetStoreMetrics godoc
// @Summary Metrics for one storefront
// @Tags store
// @Produce json
// @Param platform path string true "Storefront name"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/store/metrics/{platform} [get]
func (ctrl *MetricsController) GetStoreMetrics(ctx *fiber.Ctx) error {
	metrics, ok := ctrl.MetricsService.StoreMetric(ctx.Params("platform"))
	if !ok {
		return api.Fail(ctx, apperror.NotFound("Store not found"))
	}
	return api.Success(ctx, metrics)
}

// GetStoreTrends godoc
// @Summary Storefront trend history
// @Tags store
// @Produce json
// @Param platform query string false "Storefront name"
// @Param days query int false "Days of history" default(30)
// @Success 200 {object} api.Response
// @Router /api/store/trends [get]
func (ctrl *MetricsController) GetStoreTrends(ctx *fiber.Ctx) error {
	platform := ctx.Query("platform")
	days := ctx.QueryInt("days", 30)
	subject := platform
	if subject == "" {
		subject = "All Stores"
	}
	return api.Success(ctx, fiber.Map{
		"platform": subject,
		"trends":   ctrl.MetricsService.StoreTrends(platform, days),
		"period":   trendPeriod(days),
	})
}

// GetStoreComparison godoc
// @Summary Compare storefronts
// @Tags store
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/store/comparison [get]
func (ctrl *MetricsController) GetStoreComparison(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.StoreComparison())
}

// GetStoreAlerts godoc
// @Summary Storefront alerts
// @Tags store
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/store/alerts [get]
func (ctrl *MetricsController) GetStoreAlerts(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.StoreAlerts())
}

// GetStoreKPIs godoc
// @Summary Storefront KPI rollup
// @Tags store
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/store/kpis [get]
func (ctrl *MetricsController) GetStoreKPIs(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.StoreKPIs())
}

// ListCMSMetrics godoc
// @Summary All content module metrics
// @Tags cms
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/cms/metrics [get]
func (ctrl *MetricsController) ListCMSMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.AllCMSMetrics())
}

// GetCMSMetrics godoc
// @Summary Metrics for one content module
// @Tags cms
// @Produce json
// @Param module path string true "Module name"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/cms/metrics/{module} [get]
func (ctrl *MetricsController) GetCMSMetrics(ctx *fiber.Ctx) error {
	metrics, ok := ctrl.MetricsService.CMSMetric(ctx.Params("module"))
	if !ok {
		return api.Fail(ctx, apperror.NotFound("Module not found"))
	}
	return api.Success(ctx, metrics)
}

// GetCMSTrends godoc
// @Summary Content pipeline trend history
// @Tags cms
// @Produce json
// @Param module query string false "Module name"
// @Param days query int false "Days of history" default(30)
// @Success 200 {object} api.Response
// @Router /api/cms/trends [get]
func (ctrl *MetricsController) GetCMSTrends(ctx *fiber.Ctx) error {
	module := ctx.Query("module")
	days := ctx.QueryInt("days", 30)
	subject := module
	if subject == "" {
		subject = "Content Management"
	}
	return api.Success(ctx, fiber.Map{
		"module": subject,
		"trends": ctrl.MetricsService.CMSTrends(module, days),
		"period": trendPeriod(days),
	})
}

// GetCMSAlerts godoc
// @Summary Content pipeline alerts
// @Tags cms
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/cms/alerts [get]
func (ctrl *MetricsController) GetCMSAlerts(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.CMSAlerts())
}

// GetCMSKPIs godoc
// @Summary Content pipeline KPI rollup
// @Tags cms
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/cms/kpis [get]
func (ctrl *MetricsController) GetCMSKPIs(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.CMSKPIs())
}

// GetCMSProcessing godoc
// @Summary Content processing statistics
// @Tags cms
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/cms/processing [get]
func (ctrl *MetricsController) GetCMSProcessing(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.ContentProcessingStats())
}

// ListOpsMetrics godoc
// @Summary All operations metrics
// @Tags ops
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/ops/metrics [get]
func (ctrl *MetricsController) ListOpsMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.AllOpsMetrics())
}

// GetCDNMetrics godoc
// @Summary Delivery network metrics
// @Tags ops
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/ops/cdn [get]
func (ctrl *MetricsController) GetCDNMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.CDNMetrics())
}

// GetDevOpsMetrics godoc
// @Summary Delivery pipeline metrics
// @Tags ops
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/ops/devops [get]
func (ctrl *MetricsController) GetDevOpsMetrics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.DevOpsMetrics())
}

// GetOpsAlerts godoc
// @Summary Operations alerts
// @Tags ops
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/ops/alerts [get]
func (ctrl *MetricsController) GetOpsAlerts(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.OpsAlerts())
}

// GetOpsKPIs godoc
// @Summary Operations KPI rollup
// @Tags ops
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/ops/kpis [get]
func (ctrl *MetricsController) GetOpsKPIs(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.MetricsService.OpsKPIs())
}
