package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *WalletHandler, authRequired fiber.Handler) {
	wallets := app.Group("/api/v1/wallets", authRequired)
	wallets.Get("/", h.List)
	wallets.Post("/", h.Create)
	wallets.Get("/:id", h.Get)
	wallets.Put("/:id", h.Update)
	wallets.Delete("/:id", h.Delete)
}
