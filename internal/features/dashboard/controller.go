package dashboard

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
}

func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
	}
}

// GetTemplate godoc
// @Summary Get the caller's dashboard template
// @Description Return the default dashboard for the authenticated user's role
// @Tags dashboard
// @Produce json
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/dashboard/template [get]
func (ctrl *DashboardController) GetTemplate(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	template, err := ctrl.DashboardService.GetTemplate(claims.Role)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, template)
}

// UpdateTemplate godoc
// @Summary Customize a role's dashboard template
// @Description Merge name and description changes and replace the widget set
// @Tags dashboard
// @Accept json
// @Produce json
// @Param role path string true "Role"
// @Param template body TemplateUpdate true "Template changes"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/dashboard/template/{role} [put]
func (ctrl *DashboardController) UpdateTemplate(ctx *fiber.Ctx) error {
	role := models.Role(ctx.Params("role"))
	if !models.ValidRole(role) {
		return api.Fail(ctx, apperror.BadRequest("Invalid role: %s", role))
	}

	var update TemplateUpdate
	if err := ctx.BodyParser(&update); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	template, err := ctrl.DashboardService.UpdateTemplate(role, update)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, template)
}

// GetDashboardData godoc
// @Summary Fetch widget payloads
// @Description Resolve the requested data sources, dropping those the caller's role may not read
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body DataRequest true "Data sources to resolve"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/dashboard/data [post]
func (ctrl *DashboardController) GetDashboardData(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	var req DataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}
	if len(req.DataSources) == 0 {
		return api.Fail(ctx, apperror.BadRequest("dataSources array is required"))
	}

	data, err := ctrl.DashboardService.GetDashboardData(ctx.UserContext(), claims.Role, req.DataSources)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, data)
}

// GetDataSources godoc
// @Summary List data sources visible to the caller
// @Tags dashboard
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/dashboard/data-sources [get]
func (ctrl *DashboardController) GetDataSources(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}
	return api.Success(ctx, ctrl.DashboardService.AvailableDataSources(claims.Role))
}

// GetWidgetLibrary godoc
// @Summary Widget template catalog
// @Tags dashboard
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/dashboard/widgets [get]
func (ctrl *DashboardController) GetWidgetLibrary(ctx *fiber.Ctx) error {
	return api.Success(ctx, ctrl.DashboardService.WidgetLibrary())
}
