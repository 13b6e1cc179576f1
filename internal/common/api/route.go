package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's Api struct. Implementations are
// collected through the fx "routes" group and mounted in cmd/api.
type Route interface {
	Setup(app *fiber.App)
}
