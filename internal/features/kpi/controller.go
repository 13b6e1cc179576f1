package kpi

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type KpiController struct {
	KpiService KpiService
}

func NewKpiController(kpiService KpiService) *KpiController {
	return &KpiController{
		KpiService: kpiService,
	}
}

// ListWidgets godoc
// @Summary List widgets
// @Description List configured widgets, optionally filtered by type or data source
// @Tags kpi
// @Produce json
// @Param type query string false "Widget type"
// @Param dataSource query string false "Data source id"
// @Success 200 {object} api.Response
// @Router /api/kpi/widgets [get]
func (ctrl *KpiController) ListWidgets(ctx *fiber.Ctx) error {
	filter := WidgetFilter{
		Type:       WidgetType(ctx.Query("type")),
		DataSource: ctx.Query("dataSource"),
	}
	return api.Success(ctx, ctrl.KpiService.ListWidgets(filter))
}

// GetWidget godoc
// @Summary Get widget
// @Tags kpi
// @Produce json
// @Param id path string true "Widget id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/widgets/{id} [get]
func (ctrl *KpiController) GetWidget(ctx *fiber.Ctx) error {
	widget, err := ctrl.KpiService.GetWidget(ctx.Params("id"))
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, widget)
}

// CreateWidget godoc
// @Summary Create widget
// @Tags kpi
// @Accept json
// @Produce json
// @Param widget body Widget true "Widget"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/kpi/widgets [post]
func (ctrl *KpiController) CreateWidget(ctx *fiber.Ctx) error {
	var widget Widget
	if err := ctx.BodyParser(&widget); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	created, err := ctrl.KpiService.CreateWidget(widget)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Created(ctx, created)
}

// UpdateWidget godoc
// @Summary Update widget
// @Description Shallow-merge the supplied fields into the widget
// @Tags kpi
// @Accept json
// @Produce json
// @Param id path string true "Widget id"
// @Param patch body WidgetPatch true "Fields to update"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/widgets/{id} [put]
func (ctrl *KpiController) UpdateWidget(ctx *fiber.Ctx) error {
	var patch WidgetPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	updated, err := ctrl.KpiService.UpdateWidget(ctx.Params("id"), patch)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, updated)
}

// DeleteWidget godoc
// @Summary Delete widget
// @Description Delete a widget and remove it from every dashboard referencing it
// @Tags kpi
// @Produce json
// @Param id path string true "Widget id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/widgets/{id} [delete]
func (ctrl *KpiController) DeleteWidget(ctx *fiber.Ctx) error {
	if err := ctrl.KpiService.DeleteWidget(ctx.Params("id")); err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, fiber.Map{"message": "Widget deleted successfully"})
}

// ListDashboards godoc
// @Summary List dashboards
// @Tags kpi
// @Produce json
// @Param category query string false "Dashboard category"
// @Success 200 {object} api.Response
// @Router /api/kpi/dashboards [get]
func (ctrl *KpiController) ListDashboards(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.KpiService.ListDashboards(ctx.Query("category")))
}

// GetDashboard godoc
// @Summary Get dashboard
// @Tags kpi
// @Produce json
// @Param id path string true "Dashboard id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/dashboards/{id} [get]
func (ctrl *KpiController) GetDashboard(ctx *fiber.Ctx) error {
	dashboard, err := ctrl.KpiService.GetDashboard(ctx.Params("id"))
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, dashboard)
}

// CreateDashboard godoc
// @Summary Create dashboard
// @Tags kpi
// @Accept json
// @Produce json
// @Param dashboard body Dashboard true "Dashboard"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/kpi/dashboards [post]
func (ctrl *KpiController) CreateDashboard(ctx *fiber.Ctx) error {
	var dashboard Dashboard
	if err := ctx.BodyParser(&dashboard); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	createdBy := "system"
	if claims := middleware.Claims(ctx); claims != nil {
		createdBy = claims.UserID
	}

	created, err := ctrl.KpiService.CreateDashboard(dashboard, createdBy)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Created(ctx, created)
}

// UpdateDashboard godoc
// @Summary Update dashboard
// @Tags kpi
// @Accept json
// @Produce json
// @Param id path string true "Dashboard id"
// @Param patch body DashboardPatch true "Fields to update"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/dashboards/{id} [put]
func (ctrl *KpiController) UpdateDashboard(ctx *fiber.Ctx) error {
	var patch DashboardPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	updated, err := ctrl.KpiService.UpdateDashboard(ctx.Params("id"), patch)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, updated)
}

// DeleteDashboard godoc
// @Summary Delete dashboard
// @Tags kpi
// @Produce json
// @Param id path string true "Dashboard id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Failure 409 {object} api.Response
// @Router /api/kpi/dashboards/{id} [delete]
func (ctrl *KpiController) DeleteDashboard(ctx *fiber.Ctx) error {
	if err := ctrl.KpiService.DeleteDashboard(ctx.Params("id")); err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, fiber.Map{"message": "Dashboard deleted successfully"})
}

// ListDataSources godoc
// @Summary List data sources
// @Tags kpi
// @Produce json
// @Param type query string false "Data source type"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} api.Response
// @Router /api/kpi/data-sources [get]
func (ctrl *KpiController) ListDataSources(ctx *fiber.Ctx) error {
	filter := DataSourceFilter{Type: DataSourceType(ctx.Query("type"))}
	if raw := ctx.Query("isActive"); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}
	return api.Success(ctx, ctrl.KpiService.ListDataSources(filter))
}

// GetDataSource godoc
// @Summary Get data source
// @Tags kpi
// @Produce json
// @Param id path string true "Data source id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/data-sources/{id} [get]
func (ctrl *KpiController) GetDataSource(ctx *fiber.Ctx) error {
	source, err := ctrl.KpiService.GetDataSource(ctx.Params("id"))
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, source)
}

// CreateDataSource godoc
// @Summary Create data source
// @Tags kpi
// @Accept json
// @Produce json
// @Param dataSource body DataSource true "Data source"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/kpi/data-sources [post]
func (ctrl *KpiController) CreateDataSource(ctx *fiber.Ctx) error {
	var source DataSource
	if err := ctx.BodyParser(&source); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	created, err := ctrl.KpiService.CreateDataSource(source)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Created(ctx, created)
}

// UpdateDataSource godoc
// @Summary Update data source
// @Tags kpi
// @Accept json
// @Produce json
// @Param id path string true "Data source id"
// @Param patch body DataSourcePatch true "Fields to update"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/kpi/data-sources/{id} [put]
func (ctrl *KpiController) UpdateDataSource(ctx *fiber.Ctx) error {
	var patch DataSourcePatch
	if err := ctx.BodyParser(&patch); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	updated, err := ctrl.KpiService.UpdateDataSource(ctx.Params("id"), patch)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, updated)
}

// DeleteDataSource godoc
// @Summary Delete data source
// @Description Delete a data source unless widgets still reference it
// @Tags kpi
// @Produce json
// @Param id path string true "Data source id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Failure 409 {object} api.Response
// @Router /api/kpi/data-sources/{id} [delete]
func (ctrl *KpiController) DeleteDataSource(ctx *fiber.Ctx) error {
	if err := ctrl.KpiService.DeleteDataSource(ctx.Params("id")); err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, fiber.Map{"message": "Data source deleted successfully"})
}

// GetAnalytics godoc
// @Summary Configuration analytics
// @Description Summarize widget, dashboard and data source counts
// @Tags kpi
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/kpi/analytics [get]
func (ctrl *KpiController) GetAnalytics(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.KpiService.Analytics())
}
