package system

import (
	"time"

	"livpulse/internal/common/api"

	_ "livpulse/docs"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

type SystemApi struct {
	SystemController *SystemController
}

func NewSystemApi(systemController *SystemController) api.Route {
	return &SystemApi{
		SystemController: systemController,
	}
}

func (a *SystemApi) Setup(app *fiber.App) {
	app.Get("/health", a.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/alerts", websocket.New(a.SystemController.HandleAlertsSocket))
}

// HealthCheck godoc
// @Summary Health Check
// @Description Check if the server is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (a *SystemApi) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "LivPulse Backend",
		"message":   "Dashboard system ready",
	})
}
