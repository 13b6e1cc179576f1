package report

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	ReportService ReportService
}

func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{
		ReportService: reportService,
	}
}

// Reports are served as JSON payloads; PDF rendering lives in an
// external renderer, so format=pdf is rejected with a pointer at json.
func requireJSONFormat(ctx *fiber.Ctx, fallback string) error {
	format := ctx.Query("format", fallback)
	if format != "json" {
		return apperror.BadRequest("Unsupported format: %s. Use format=json", format)
	}
	return nil
}

// GetExecutiveReport godoc
// @Summary Executive report
// @Tags reports
// @Produce json
// @Param format query string false "Report format" default(json)
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/reports/executive [get]
func (ctrl *ReportController) GetExecutiveReport(ctx *fiber.Ctx) error {
	if err := requireJSONFormat(ctx, "json"); err != nil {
		return api.Fail(ctx, err)
	}
	report, err := ctrl.ReportService.Executive(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, report)
}

// GetTechnicalReport godoc
// @Summary Technical report
// @Tags reports
// @Produce json
// @Param format query string false "Report format" default(json)
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/reports/technical [get]
func (ctrl *ReportController) GetTechnicalReport(ctx *fiber.Ctx) error {
	if err := requireJSONFormat(ctx, "json"); err != nil {
		return api.Fail(ctx, err)
	}
	report, err := ctrl.ReportService.Technical(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, report)
}

// GetWeeklyReport godoc
// @Summary Weekly summary report
// @Tags reports
// @Produce json
// @Param format query string false "Report format" default(json)
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/reports/weekly [get]
func (ctrl *ReportController) GetWeeklyReport(ctx *fiber.Ctx) error {
	if err := requireJSONFormat(ctx, "json"); err != nil {
		return api.Fail(ctx, err)
	}
	report, err := ctrl.ReportService.Weekly(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, report)
}

// CreateCustomReport godoc
// @Summary Custom report
// @Description Build a report from the requested sections
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CustomReportRequest true "Report request"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/reports/custom [post]
func (ctrl *ReportController) CreateCustomReport(ctx *fiber.Ctx) error {
	var req CustomReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}
	if req.Format != "" && req.Format != "json" {
		return api.Fail(ctx, apperror.BadRequest("Unsupported format: %s. Use format=json", req.Format))
	}

	report, err := ctrl.ReportService.Custom(ctx.UserContext(), req)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, report)
}
