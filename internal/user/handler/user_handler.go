package handler

import (
	"errors"

	"github.com/brigere/shield-api/internal/auth/domain"
	authdto "github.com/brigere/shield-api/internal/auth/dto"
	apperror "github.com/brigere/shield-api/internal/errors"
	"github.com/brigere/shield-api/internal/user/service"
	"github.com/brigere/shield-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService *service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", service.DefaultListLimit)
	skip := c.QueryInt("skip", 0)

	users, err := h.userService.List(c.UserContext(), limit, skip)
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	out := make([]authdto.UserProfileOutput, 0, len(users))
	for i := range users {
		out = append(out, profileOutput(&users[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals(constant.LocalsUserID).(int)

	user, err := h.userService.Profile(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(profileOutput(user))
}

// profileOutput maps a user to its public shape; the password hash never
// leaves the handler layer.
func profileOutput(u *domain.User) authdto.UserProfileOutput {
	return authdto.UserProfileOutput{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
