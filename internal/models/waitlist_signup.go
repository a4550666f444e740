package models

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistSignup is a pre-launch signup. Email uniqueness is left to the
// database; the pipeline records whatever it is given.
type WaitlistSignup struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Country   *string   `gorm:"size:100" json:"country"`
	UserType  *string   `gorm:"size:50" json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
