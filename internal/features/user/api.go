package user

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/models"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	UserController *UserController
	Config         *config.Config
}

func NewUserApi(userController *UserController, cfg *config.Config) api.Route {
	return &UserApi{
		UserController: userController,
		Config:         cfg,
	}
}

func (a *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/admin/users",
		middleware.AuthMiddleware(a.Config.SkipAuth),
		middleware.RequireRole(models.RoleAdmin),
	)

	group.Get("/", a.UserController.ListUsers)
	group.Post("/", a.UserController.CreateUser)
	group.Get("/:id", a.UserController.GetUser)
	group.Put("/:id", a.UserController.UpdateUser)
	group.Delete("/:id", a.UserController.DeleteUser)
}
