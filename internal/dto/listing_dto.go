package dto

import "github.com/stablewise/stablewise-backend/internal/models"

// CreateListingRequest creates an animal record together with its listing.
type CreateListingRequest struct {
	Name                   string   `json:"name" validate:"required"`
	Age                    *int     `json:"age" validate:"omitempty,gte=0"`
	HeightCm               *int     `json:"height_cm" validate:"omitempty,gt=0"`
	Breed                  *string  `json:"breed"`
	Dam                    *string  `json:"dam"`
	Sire                   *string  `json:"sire"`
	Coloring               *string  `json:"coloring"`
	MicrochipNumber        *string  `json:"microchip_number"`
	PassportNumber         *string  `json:"passport_number"`
	Country                *string  `json:"country"`
	IsPony                 bool     `json:"is_pony"`
	NationalRepresentation *bool    `json:"national_representation"`
	ImageURLs              []string `json:"image_urls"`
	Description            *string  `json:"description"`
	Price                  *float64 `json:"price" validate:"omitempty,gte=0"`
	ContactInfo            *string  `json:"contact_info"`
}

// UpdateListingRequest edits an existing listing and its animal. Nil fields
// are left untouched.
type UpdateListingRequest struct {
	Name        *string  `json:"name"`
	Age         *int     `json:"age" validate:"omitempty,gte=0"`
	HeightCm    *int     `json:"height_cm" validate:"omitempty,gt=0"`
	Breed       *string  `json:"breed"`
	Coloring    *string  `json:"coloring"`
	ImageURLs   []string `json:"image_urls"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ContactInfo *string  `json:"contact_info"`
}

// SellerListing pairs a listing with its animal for the dashboard.
type SellerListing struct {
	Listing models.Listing `json:"listing"`
	Animal  models.Animal  `json:"animal"`
}

type ProfileRequest struct {
	StableName   *string `json:"stable_name"`
	Country      *string `json:"country"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}
