package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stablewise/stablewise-backend/internal/dto"
	"github.com/stablewise/stablewise-backend/internal/models"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingService is the seller dashboard: animals and their listings are
// created together and edited only by their owner.
type ListingService struct {
	db        *gorm.DB
	summaries *SummaryService
}

func NewListingService(db *gorm.DB, summaries *SummaryService) *ListingService {
	return &ListingService{db: db, summaries: summaries}
}

func (s *ListingService) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]dto.SellerListing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.SellerListing, 0, len(listings))
	for _, l := range listings {
		var animal models.Animal
		if err := s.db.WithContext(ctx).First(&animal, "id = ?", l.AnimalID).Error; err != nil {
			// FEI-backed listings have no seller-editable animal row.
			continue
		}
		out = append(out, dto.SellerListing{Listing: l, Animal: animal})
	}
	return out, nil
}

// Create inserts the animal record and its listing in one transaction, then
// best-effort fills the AI description. A failed generation never fails the
// listing.
func (s *ListingService) Create(ctx context.Context, sellerID uuid.UUID, req *dto.CreateListingRequest) (*models.Listing, error) {
	animal := models.Animal{
		Name:                   req.Name,
		Age:                    req.Age,
		HeightCm:               req.HeightCm,
		Breed:                  req.Breed,
		Dam:                    req.Dam,
		Sire:                   req.Sire,
		Coloring:               req.Coloring,
		MicrochipNumber:        req.MicrochipNumber,
		PassportNumber:         req.PassportNumber,
		Country:                req.Country,
		IsPony:                 req.IsPony,
		NationalRepresentation: req.NationalRepresentation,
		ImageURLs:              datatypes.NewJSONSlice(req.ImageURLs),
	}
	listing := models.Listing{
		SellerID:    sellerID,
		Description: req.Description,
		Price:       req.Price,
		ContactInfo: req.ContactInfo,
		IsActive:    true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&animal).Error; err != nil {
			return err
		}
		listing.AnimalID = animal.ID
		return tx.Create(&listing).Error
	})
	if err != nil {
		return nil, err
	}

	if s.summaries != nil {
		animalType := "horse"
		if animal.IsPony {
			animalType = "pony"
		}
		summary, err := s.summaries.GeneratePerformanceSummary(ctx, animal.Name, animalType, nil)
		if err != nil {
			slog.Error("ai description generation failed", "listing_id", listing.ID, "error", err)
		} else if summary != "" {
			if err := s.db.WithContext(ctx).Model(&listing).
				Update("ai_generated_description", summary).Error; err == nil {
				listing.AIGeneratedDescription = &summary
			}
		}
	}

	return &listing, nil
}

func (s *ListingService) Update(ctx context.Context, sellerID, listingID uuid.UUID, req *dto.UpdateListingRequest) (*models.Listing, error) {
	var listing models.Listing
	err := s.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", listingID, sellerID).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	animalUpdates := map[string]interface{}{}
	if req.Name != nil {
		animalUpdates["name"] = *req.Name
	}
	if req.Age != nil {
		animalUpdates["age"] = *req.Age
	}
	if req.HeightCm != nil {
		animalUpdates["height_cm"] = *req.HeightCm
	}
	if req.Breed != nil {
		animalUpdates["breed"] = *req.Breed
	}
	if req.Coloring != nil {
		animalUpdates["coloring"] = *req.Coloring
	}
	if req.ImageURLs != nil {
		animalUpdates["image_urls"] = datatypes.NewJSONSlice(req.ImageURLs)
	}

	listingUpdates := map[string]interface{}{}
	if req.Description != nil {
		listingUpdates["description"] = *req.Description
	}
	if req.Price != nil {
		listingUpdates["price"] = *req.Price
	}
	if req.ContactInfo != nil {
		listingUpdates["contact_info"] = *req.ContactInfo
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(animalUpdates) > 0 {
			if err := tx.Model(&models.Animal{}).
				Where("id = ?", listing.AnimalID).
				Updates(animalUpdates).Error; err != nil {
				return err
			}
		}
		if len(listingUpdates) > 0 {
			if err := tx.Model(&listing).Updates(listingUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Deactivate hides a listing from public browsing without deleting it.
func (s *ListingService) Deactivate(ctx context.Context, sellerID, listingID uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Listing{}).
		Where("id = ? AND seller_id = ?", listingID, sellerID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
