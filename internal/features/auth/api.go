package auth

import (
	"livpulse/internal/common/api"
	"livpulse/internal/config"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	AuthController *AuthController
	Config         *config.Config
}

func NewAuthApi(authController *AuthController, cfg *config.Config) api.Route {
	return &AuthApi{
		AuthController: authController,
		Config:         cfg,
	}
}

func (a *AuthApi) Setup(app *fiber.App) {
	group := app.Group("/api/auth")

	group.Post("/login", a.AuthController.Login)
	group.Post("/register", a.AuthController.Register)
	group.Post("/logout", a.AuthController.Logout)
	group.Get("/me", middleware.AuthMiddleware(a.Config.SkipAuth), a.AuthController.Me)
}
