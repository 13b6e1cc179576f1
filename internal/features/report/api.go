package report

import (
	"livpulse/internal/common/api"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
	Config           *config.Config
}

func NewReportApi(reportController *ReportController, cfg *config.Config) api.Route {
	return &ReportApi{
		ReportController: reportController,
		Config:           cfg,
	}
}

func (a *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/executive", a.ReportController.GetExecutiveReport)
	group.Get("/technical", a.ReportController.GetTechnicalReport)
	group.Get("/weekly", a.ReportController.GetWeeklyReport)
	group.Post("/custom", a.ReportController.CreateCustomReport)
}
