package dto

import (
	"time"

	"github.com/stablewise/stablewise-backend/internal/views"
)

// SellerInfo is the public slice of a seller profile shown on listings.
type SellerInfo struct {
	StableName *string `json:"stable_name"`
	Country    *string `json:"country"`
	IsVerified bool    `json:"is_verified_seller"`
}

// ListingView is a public for-sale listing with its canonical animal view.
type ListingView struct {
	ID                     string           `json:"id"`
	Description            *string          `json:"description"`
	AIGeneratedDescription *string          `json:"ai_generated_description"`
	Price                  *float64         `json:"price"`
	Featured               bool             `json:"featured"`
	CreatedAt              time.Time        `json:"created_at"`
	Animal                 views.AnimalView `json:"animal"`
	Seller                 *SellerInfo      `json:"seller"`
}

// AnimalProfileResponse is an animal with its competition history.
type AnimalProfileResponse struct {
	Animal  views.AnimalView              `json:"animal"`
	Results []views.CompetitionResultView `json:"results"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
