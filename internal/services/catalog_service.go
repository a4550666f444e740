package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stablewise/stablewise-backend/internal/dto"
	"github.com/stablewise/stablewise-backend/internal/models"
	"github.com/stablewise/stablewise-backend/internal/views"
)

var ErrAnimalNotFound = errors.New("animal not found")

const searchLimit = 8

// CatalogService serves the public read surface: browsing active listings,
// name search and animal profiles. Records from both catalogue schemas are
// returned as canonical views.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// BrowseListings returns active listings, featured first, newest first.
func (s *CatalogService) BrowseListings(ctx context.Context) ([]dto.ListingView, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("featured DESC").
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.ListingView, 0, len(listings))
	now := time.Now()
	for _, l := range listings {
		animal, err := s.animalViewByID(ctx, l.AnimalID, now)
		if err != nil {
			if errors.Is(err, ErrAnimalNotFound) {
				continue
			}
			return nil, err
		}

		lv := dto.ListingView{
			ID:                     l.ID.String(),
			Description:            l.Description,
			AIGeneratedDescription: l.AIGeneratedDescription,
			Price:                  l.Price,
			Featured:               l.Featured,
			CreatedAt:              l.CreatedAt,
			Animal:                 animal,
		}

		var profile models.Profile
		if err := s.db.WithContext(ctx).Where("user_id = ?", l.SellerID).First(&profile).Error; err == nil {
			lv.Seller = &dto.SellerInfo{
				StableName: profile.StableName,
				Country:    profile.Country,
				IsVerified: profile.IsVerifiedSeller,
			}
		}

		out = append(out, lv)
	}
	return out, nil
}

// SearchAnimals matches names case-insensitively across both schemas.
func (s *CatalogService) SearchAnimals(ctx context.Context, query string) ([]views.AnimalView, error) {
	if len(query) < 2 {
		return []views.AnimalView{}, nil
	}
	pattern := "%" + query + "%"
	now := time.Now()

	var animals []models.Animal
	if err := s.db.WithContext(ctx).
		Where("name ILIKE ?", pattern).
		Limit(searchLimit).
		Find(&animals).Error; err != nil {
		return nil, err
	}

	out := make([]views.AnimalView, 0, searchLimit)
	for i := range animals {
		out = append(out, views.FromAnimal(&animals[i]))
	}

	if remaining := searchLimit - len(out); remaining > 0 {
		var horses []models.Horse
		if err := s.db.WithContext(ctx).
			Where("name ILIKE ?", pattern).
			Limit(remaining).
			Find(&horses).Error; err != nil {
			return nil, err
		}
		for i := range horses {
			out = append(out, views.FromHorse(&horses[i], now))
		}
	}
	return out, nil
}

// AnimalProfile returns one animal with its full competition history. The id
// is either a legacy uuid or an FEI identifier; each schema's results are
// joined by its native key.
func (s *CatalogService) AnimalProfile(ctx context.Context, id string) (*dto.AnimalProfileResponse, error) {
	now := time.Now()

	if animalID, err := uuid.Parse(id); err == nil {
		var animal models.Animal
		err := s.db.WithContext(ctx).First(&animal, "id = ?", animalID).Error
		if err == nil {
			var rows []models.CompetitionResult
			if err := s.db.WithContext(ctx).
				Where("animal_id = ?", animalID).
				Order("competition_date DESC").
				Find(&rows).Error; err != nil {
				return nil, err
			}
			results := make([]views.CompetitionResultView, 0, len(rows))
			for i := range rows {
				results = append(results, views.FromCompetitionResult(&rows[i]))
			}
			return &dto.AnimalProfileResponse{Animal: views.FromAnimal(&animal), Results: results}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var horse models.Horse
	if err := s.db.WithContext(ctx).First(&horse, "fei_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}

	var rows []models.FEIResult
	if err := s.db.WithContext(ctx).
		Where("horse_fei_id = ?", id).
		Order("competition_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]views.CompetitionResultView, 0, len(rows))
	for i := range rows {
		results = append(results, views.FromFEIResult(&rows[i]))
	}
	return &dto.AnimalProfileResponse{Animal: views.FromHorse(&horse, now), Results: results}, nil
}

// animalViewByID resolves a listing's animal reference against whichever
// schema owns the row.
func (s *CatalogService) animalViewByID(ctx context.Context, animalID uuid.UUID, asOf time.Time) (views.AnimalView, error) {
	var animal models.Animal
	err := s.db.WithContext(ctx).First(&animal, "id = ?", animalID).Error
	if err == nil {
		return views.FromAnimal(&animal), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return views.AnimalView{}, err
	}

	var horse models.Horse
	err = s.db.WithContext(ctx).First(&horse, "id = ?", animalID).Error
	if err == nil {
		return views.FromHorse(&horse, asOf), nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return views.AnimalView{}, ErrAnimalNotFound
	}
	return views.AnimalView{}, err
}
