package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/stablewise/stablewise-backend/internal/dto"
	"github.com/stablewise/stablewise-backend/internal/middleware"
	"github.com/stablewise/stablewise-backend/internal/services"
)

// ListingHandler serves the seller dashboard.
type ListingHandler struct {
	listings *services.ListingService
}

func NewListingHandler(listings *services.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	sellerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	out, err := h.listings.ListForSeller(c.UserContext(), sellerID)
	if err != nil {
		slog.Error("failed to load seller listings", "seller_id", sellerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load listings",
		})
	}
	return c.JSON(fiber.Map{"listings": out})
}

func (h *ListingHandler) Create(c *fiber.Ctx) error {
	sellerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Animal name is required",
		})
	}

	listing, err := h.listings.Create(c.UserContext(), sellerID, &req)
	if err != nil {
		slog.Error("listing creation failed", "seller_id", sellerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create listing",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

func (h *ListingHandler) Update(c *fiber.Ctx) error {
	sellerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing id",
		})
	}

	var req dto.UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid field values",
		})
	}

	listing, err := h.listings.Update(c.UserContext(), sellerID, listingID, &req)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Listing not found",
			})
		}
		slog.Error("listing update failed", "listing_id", listingID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update listing",
		})
	}
	return c.JSON(listing)
}

func (h *ListingHandler) Deactivate(c *fiber.Ctx) error {
	sellerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing id",
		})
	}

	if err := h.listings.Deactivate(c.UserContext(), sellerID, listingID); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Listing not found",
			})
		}
		slog.Error("listing deactivation failed", "listing_id", listingID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to deactivate listing",
		})
	}
	return c.JSON(fiber.Map{"message": "Listing deactivated"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
