package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/stablewise/stablewise-backend/internal/dto"
	"github.com/stablewise/stablewise-backend/internal/services"
)

type CatalogHandler struct {
	catalog   *services.CatalogService
	summaries *services.SummaryService
}

func NewCatalogHandler(catalog *services.CatalogService, summaries *services.SummaryService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, summaries: summaries}
}

func (h *CatalogHandler) BrowseListings(c *fiber.Ctx) error {
	listings, err := h.catalog.BrowseListings(c.UserContext())
	if err != nil {
		slog.Error("failed to load listings", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load listings",
		})
	}
	return c.JSON(fiber.Map{"listings": listings})
}

func (h *CatalogHandler) SearchAnimals(c *fiber.Ctx) error {
	results, err := h.catalog.SearchAnimals(c.UserContext(), c.Query("q"))
	if err != nil {
		slog.Error("animal search failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Search failed",
		})
	}
	return c.JSON(fiber.Map{"animals": results})
}

func (h *CatalogHandler) AnimalProfile(c *fiber.Ctx) error {
	profile, err := h.catalog.AnimalProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAnimalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Animal not found",
			})
		}
		slog.Error("failed to load animal profile", "animal_id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load animal profile",
		})
	}
	return c.JSON(profile)
}

// GenerateSummary produces an AI performance analysis from stored results.
func (h *CatalogHandler) GenerateSummary(c *fiber.Ctx) error {
	profile, err := h.catalog.AnimalProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAnimalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Animal not found",
			})
		}
		slog.Error("failed to load animal for summary", "animal_id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	animalType := "horse"
	if profile.Animal.IsPony {
		animalType = "pony"
	}

	summary, err := h.summaries.GeneratePerformanceSummary(c.UserContext(), profile.Animal.Name, animalType, profile.Results)
	if err != nil {
		slog.Error("summary generation failed", "animal_id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate summary",
		})
	}
	return c.JSON(dto.SummaryResponse{Summary: summary})
}
