package datainput

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/models"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DataInputApi struct {
	DataInputController *DataInputController
	Config              *config.Config
}

func NewDataInputApi(dataInputController *DataInputController, cfg *config.Config) api.Route {
	return &DataInputApi{
		DataInputController: dataInputController,
		Config:              cfg,
	}
}

func (a *DataInputApi) Setup(app *fiber.App) {
	group := app.Group("/api/data-input", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/form", a.DataInputController.SubmitForm)
	group.Post("/csv/:category", a.DataInputController.UploadCSV)
	group.Post("/xlsx/:category", a.DataInputController.UploadXLSX)
	group.Post("/validate", a.DataInputController.ValidateData)
	group.Get("/categories", a.DataInputController.GetCategories)
	group.Get("/templates/:category", a.DataInputController.GetTemplate)
	group.Get("/submissions", a.DataInputController.GetSubmissions)

	admin := group.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/submissions/:category", a.DataInputController.GetAllSubmissions)
	admin.Put("/submissions/:id", a.DataInputController.ReviewSubmission)
}
