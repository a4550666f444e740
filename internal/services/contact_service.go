package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stablewise/stablewise-backend/internal/models"
)

// ErrNoContact is a normal outcome: the animal exists but nobody can be
// notified about it. Callers fall back to a neutral UI message.
var ErrNoContact = errors.New("no contact available")

// ContactDirectory looks up the records contact resolution walks. A nil
// listing (with nil error) means no active listing exists.
type ContactDirectory interface {
	ActiveListing(ctx context.Context, animalID string) (*models.Listing, error)
	SellerProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// ContactService resolves the effective address to notify for an animal:
// the active listing's explicit contact string wins, then the seller
// profile's contact email, else ErrNoContact.
type ContactService struct {
	dir ContactDirectory
}

func NewContactService(dir ContactDirectory) *ContactService {
	return &ContactService{dir: dir}
}

func (s *ContactService) ResolveContact(ctx context.Context, animalID string) (string, error) {
	listing, err := s.dir.ActiveListing(ctx, animalID)
	if err != nil {
		return "", err
	}
	if listing == nil {
		return "", ErrNoContact
	}

	if listing.ContactInfo != nil && *listing.ContactInfo != "" {
		return *listing.ContactInfo, nil
	}

	profile, err := s.dir.SellerProfile(ctx, listing.SellerID)
	if err != nil {
		return "", err
	}
	if profile != nil && profile.ContactEmail != nil && *profile.ContactEmail != "" {
		return *profile.ContactEmail, nil
	}
	return "", ErrNoContact
}

// GormContactDirectory is the database-backed directory.
type GormContactDirectory struct {
	db *gorm.DB
}

func NewGormContactDirectory(db *gorm.DB) *GormContactDirectory {
	return &GormContactDirectory{db: db}
}

// ActiveListing accepts either a legacy animal uuid or an FEI identifier,
// since listings may reference rows in either catalogue table.
func (d *GormContactDirectory) ActiveListing(ctx context.Context, animalID string) (*models.Listing, error) {
	id, err := uuid.Parse(animalID)
	if err != nil {
		var horse models.Horse
		if err := d.db.WithContext(ctx).First(&horse, "fei_id = ?", animalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		id = horse.ID
	}

	var listing models.Listing
	err = d.db.WithContext(ctx).
		Where("animal_id = ? AND is_active = ?", id, true).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (d *GormContactDirectory) SellerProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
