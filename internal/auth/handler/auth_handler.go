package handler

import (
	"errors"

	"github.com/brigere/shield-api/internal/auth/dto"
	"github.com/brigere/shield-api/internal/auth/service"
	autherror "github.com/brigere/shield-api/internal/errors"
	"github.com/brigere/shield-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

func NewAuthHandler(userService *service.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := validation.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		var vErr *autherror.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Message,
			})
		case errors.Is(err, autherror.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			h.log.Error().Err(err).Msg("register failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := validation.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.log.Error().Err(err).Msg("login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// SignOut runs behind the auth middleware, so the header is known to hold a
// verified bearer token. A failed revocation maps to 500; the token itself
// stays technically valid until it expires.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	token := bearerToken(c.Get(fiber.HeaderAuthorization))

	if !h.userService.SignOut(c.UserContext(), token) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Something happened, try again",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Signed out successfully. Tokens revoked.",
	})
}
