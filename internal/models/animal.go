package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Animal is a legacy catalogue record, created together with a listing from
// the seller dashboard. Age is stored directly rather than derived.
type Animal struct {
	ID                     uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                   string                      `gorm:"size:255;not null;index" json:"name"`
	Age                    *int                        `json:"age"`
	HeightCm               *int                        `json:"height_cm"`
	Breed                  *string                     `gorm:"size:255" json:"breed"`
	Dam                    *string                     `gorm:"size:255" json:"dam"`
	Sire                   *string                     `gorm:"size:255" json:"sire"`
	Coloring               *string                     `gorm:"size:100" json:"coloring"`
	MicrochipNumber        *string                     `gorm:"size:100" json:"microchip_number"`
	PassportNumber         *string                     `gorm:"size:100" json:"passport_number"`
	Country                *string                     `gorm:"size:100" json:"country"`
	IsPony                 bool                        `gorm:"not null;default:false" json:"is_pony"`
	NationalRepresentation *bool                       `json:"national_representation"`
	ImageURLs              datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"image_urls"`
	RegistrationInfo       datatypes.JSON              `gorm:"type:jsonb" json:"registration_info"`
	CreatedAt              time.Time                   `json:"created_at"`
	UpdatedAt              time.Time                   `json:"updated_at"`
}

// CompetitionResult is a legacy result row keyed to an Animal.
type CompetitionResult struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnimalID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"animal_id"`
	CompetitionName  string     `gorm:"size:255;not null" json:"competition_name"`
	CompetitionDate  *time.Time `gorm:"type:date" json:"competition_date"`
	Location         *string    `gorm:"size:255" json:"location"`
	RiderName        *string    `gorm:"size:255" json:"rider_name"`
	FenceHeightCm    *int       `json:"fence_height_cm"`
	Faults           *float64   `json:"faults"`
	Placement        *int       `json:"placement"`
	TotalCompetitors *int       `json:"total_competitors"`
	TimeSeconds      *float64   `json:"time_seconds"`
	Notes            *string    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
}
