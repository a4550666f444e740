package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing is a for-sale advertisement referencing exactly one animal and one
// seller. Inactive listings are excluded from public browsing.
type Listing struct {
	ID                     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnimalID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"animal_id"`
	SellerID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"seller_id"`
	Description            *string        `gorm:"type:text" json:"description"`
	AIGeneratedDescription *string        `gorm:"column:ai_generated_description;type:text" json:"ai_generated_description"`
	Price                  *float64       `json:"price"`
	ContactInfo            *string        `gorm:"size:255" json:"contact_info"`
	IsActive               bool           `gorm:"not null;default:true;index" json:"is_active"`
	Featured               bool           `gorm:"not null;default:false" json:"featured"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName keeps the original table name.
func (Listing) TableName() string {
	return "for_sale_listings"
}

// Profile is a seller profile attached to a user account.
type Profile struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	StableName       *string   `gorm:"size:255" json:"stable_name"`
	Country          *string   `gorm:"size:100" json:"country"`
	ContactEmail     *string   `gorm:"size:255" json:"contact_email"`
	IsVerifiedSeller bool      `gorm:"not null;default:false" json:"is_verified_seller"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
