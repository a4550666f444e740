package models

import (
	"time"

	"github.com/google/uuid"
)

// Horse is a record imported from the FEI registry. Coverage is narrower than
// Animal: no height, no images, and age must be derived from DateOfBirth.
type Horse struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FEIID          *string    `gorm:"column:fei_id;size:50;uniqueIndex" json:"fei_id"`
	Name           *string    `gorm:"size:255;index" json:"name"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth"`
	Sex            *string    `gorm:"size:20" json:"sex"`
	Studbook       *string    `gorm:"size:255" json:"studbook"`
	Breed          *string    `gorm:"size:255" json:"breed"`
	Color          *string    `gorm:"size:100" json:"color"`
	Dam            *string    `gorm:"size:255" json:"dam"`
	Sire           *string    `gorm:"size:255" json:"sire"`
	SireOfDam      *string    `gorm:"size:255" json:"sire_of_dam"`
	Microchip      *string    `gorm:"size:100" json:"microchip"`
	UELN           *string    `gorm:"column:ueln;size:100" json:"ueln"`
	CountryOfBirth *string    `gorm:"size:100" json:"country_of_birth"`
	AdminNF        *string    `gorm:"column:admin_nf;size:100" json:"admin_nf"`
	IsPony         *bool      `json:"is_pony"`
	VerifiedSource *string    `gorm:"size:255" json:"verified_source"`
	LastScrapedAt  *time.Time `json:"last_scraped_at"`
}

// FEIResult is a result row scraped alongside a Horse, keyed by the shared
// FEI identifier. Placement and faults arrive as free text.
type FEIResult struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HorseFEIID       *string    `gorm:"column:horse_fei_id;size:50;index" json:"horse_fei_id"`
	CompetitionName  *string    `gorm:"size:255" json:"competition_name"`
	EventName        *string    `gorm:"size:255" json:"event_name"`
	ShowName         *string    `gorm:"size:255" json:"show_name"`
	CompetitionDate  *time.Time `gorm:"type:date" json:"competition_date"`
	Location         *string    `gorm:"size:255" json:"location"`
	RiderName        *string    `gorm:"size:255" json:"rider_name"`
	ObstacleHeightCm *int       `json:"obstacle_height_cm"`
	Faults           *string    `gorm:"size:100" json:"faults"`
	ResultPlace      *string    `gorm:"size:50" json:"result_place"`
}

// TableName keeps the scraper's table name.
func (FEIResult) TableName() string {
	return "results"
}
