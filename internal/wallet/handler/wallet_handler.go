package handler

import (
	"errors"

	apperror "github.com/brigere/shield-api/internal/errors"
	"github.com/brigere/shield-api/internal/validation"
	"github.com/brigere/shield-api/internal/wallet/domain"
	"github.com/brigere/shield-api/internal/wallet/dto"
	"github.com/brigere/shield-api/internal/wallet/service"
	"github.com/brigere/shield-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type WalletHandler struct {
	walletService *service.WalletService
	log           zerolog.Logger
}

func NewWalletHandler(walletService *service.WalletService, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{walletService: walletService, log: log}
}

func (h *WalletHandler) List(c *fiber.Ctx) error {
	userID := c.Locals(constant.LocalsUserID).(int)

	wallets, err := h.walletService.List(c.UserContext(), userID)
	if err != nil {
		h.log.Error().Err(err).Int("user_id", userID).Msg("list wallets failed")
		return internalError(c)
	}

	out := make([]dto.WalletOutput, 0, len(wallets))
	for i := range wallets {
		out = append(out, walletOutput(&wallets[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *WalletHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals(constant.LocalsUserID).(int)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid wallet id"})
	}

	wallet, err := h.walletService.Get(c.UserContext(), id, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrWalletNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(walletOutput(wallet))
}

func (h *WalletHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals(constant.LocalsUserID).(int)

	var input dto.WalletInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validation.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	wallet, err := h.walletService.Create(c.UserContext(), userID, input)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(walletOutput(wallet))
}

func (h *WalletHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals(constant.LocalsUserID).(int)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid wallet id"})
	}

	var input dto.WalletUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := validation.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	wallet, err := h.walletService.Update(c.UserContext(), id, userID, input)
	if err != nil {
		if errors.Is(err, apperror.ErrWalletNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(walletOutput(wallet))
}

func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals(constant.LocalsUserID).(int)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid wallet id"})
	}

	if err := h.walletService.Delete(c.UserContext(), id, userID); err != nil {
		if errors.Is(err, apperror.ErrWalletNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "Wallet deleted successfully.",
	})
}

func walletOutput(w *domain.Wallet) dto.WalletOutput {
	return dto.WalletOutput{
		ID:        w.ID,
		UserID:    w.UserID,
		Chain:     w.Chain,
		Address:   w.Address,
		Tag:       w.Tag,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": apperror.ErrWalletNotFound.Error(),
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
