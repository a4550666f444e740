package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/stablewise/stablewise-backend/internal/dto"
	"github.com/stablewise/stablewise-backend/internal/models"
	"github.com/stablewise/stablewise-backend/internal/services"
)

type WaitlistHandler struct {
	waitlist *services.WaitlistService
}

func NewWaitlistHandler(waitlist *services.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlist: waitlist}
}

func (h *WaitlistHandler) Signup(c *fiber.Ctx) error {
	var req dto.WaitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Full name and a valid email are required",
		})
	}

	signup := models.WaitlistSignup{
		FullName: req.FullName,
		Email:    req.Email,
	}
	if req.Country != "" {
		signup.Country = &req.Country
	}
	if req.UserType != "" {
		signup.UserType = &req.UserType
	}

	err := h.waitlist.Submit(c.UserContext(), &signup)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(dto.WaitlistResponse{
			Message: "You're on the waitlist", EmailSent: true,
		})
	case errors.Is(err, services.ErrSignupEmail):
		// The signup is durable; only the notification failed.
		return c.Status(fiber.StatusCreated).JSON(dto.WaitlistResponse{
			Message: "You're on the waitlist, but the confirmation email could not be sent", EmailSent: false,
		})
	default:
		slog.Error("waitlist signup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Something went wrong, please try again",
		})
	}
}
