package handlers

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stablewise/stablewise-backend/internal/dto"
	"github.com/stablewise/stablewise-backend/internal/mailer"
	"github.com/stablewise/stablewise-backend/internal/services"
)

// ContactHandler is the mail relay boundary. The bare relay takes an explicit
// recipient; the per-animal route resolves the recipient server-side first.
type ContactHandler struct {
	relay    mailer.Mailer
	contacts *services.ContactService
}

func NewContactHandler(relay mailer.Mailer, contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{relay: relay, contacts: contacts}
}

func (h *ContactHandler) Relay(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields",
		})
	}

	return h.send(c, req.ToEmail, &req)
}

func (h *ContactHandler) ContactSeller(c *fiber.Ctx) error {
	var body dto.ContactSellerRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields",
		})
	}

	recipient, err := h.contacts.ResolveContact(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNoContact) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No contact available for this listing",
			})
		}
		slog.Error("contact resolution failed", "animal_id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	req := dto.ContactRequest{
		FromName:  body.FromName,
		FromEmail: body.FromEmail,
		Phone:     body.Phone,
		Message:   body.Message,
	}
	return h.send(c, recipient, &req)
}

func (h *ContactHandler) send(c *fiber.Ctx, recipient string, req *dto.ContactRequest) error {
	msg := &mailer.Message{
		To:        recipient,
		FromName:  req.FromName,
		FromEmail: req.FromEmail,
		Phone:     req.Phone,
		Subject:   req.Subject,
		ReplyTo:   req.ReplyTo,
		HTML:      inquiryBody(req),
	}

	id, err := h.relay.Send(c.UserContext(), msg)
	if err != nil {
		switch {
		case errors.Is(err, mailer.ErrInvalidMessage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Missing required fields",
			})
		case errors.Is(err, mailer.ErrNotConfigured):
			slog.Error("mail transport not configured")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Email service unavailable",
			})
		default:
			// Transport diagnostics stay server-side.
			slog.Error("contact email failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Email send failed",
			})
		}
	}

	return c.JSON(dto.ContactResponse{OK: true, ID: id})
}

// inquiryBody renders the inquiry the way the contact form always has.
func inquiryBody(req *dto.ContactRequest) string {
	name := html.EscapeString(req.FromName)
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")

	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(req.FromEmail))
	if req.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>\n", html.EscapeString(req.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>Message:</strong><br>%s</p>\n", message)
	fmt.Fprintf(&b, "<p style=\"color: #666; font-size: 14px;\">This message was sent through the StableWise contact form. You can reply directly to this email to respond to %s.</p>", name)
	return b.String()
}
