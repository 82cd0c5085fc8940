package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *UserHandler, authRequired fiber.Handler) {
	users := app.Group("/api/v1/users", authRequired)
	users.Get("/", h.List)
	users.Get("/me", h.Me)
}
