// Package views maps the two catalogue schemas (the legacy seller-entered
// animals tables and the FEI-imported horses tables) into one canonical
// presentation model. Every read surface depends on these types only; nil
// pointer fields mean the source schema has no value, never a defaulted zero.
package views

// AnimalView is the canonical animal model. Exactly one source schema
// supplies any given view.
type AnimalView struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	AgeYears               int      `json:"age"`
	HeightCm               *int     `json:"height_cm"`
	Breed                  *string  `json:"breed"`
	Dam                    *string  `json:"dam"`
	Sire                   *string  `json:"sire"`
	Coloring               *string  `json:"coloring"`
	MicrochipNumber        *string  `json:"microchip_number"`
	PassportNumber         *string  `json:"passport_number"`
	Country                *string  `json:"country"`
	IsPony                 bool     `json:"is_pony"`
	NationalRepresentation bool     `json:"national_representation"`
	ImageURLs              []string `json:"image_urls"`
}

// CompetitionResultView is the canonical competition result model. Faults is
// carried as display text: the legacy schema records a number, the FEI schema
// free text, and the two are deliberately not reconciled.
type CompetitionResultView struct {
	ID               string   `json:"id"`
	CompetitionName  string   `json:"competition_name"`
	CompetitionDate  string   `json:"competition_date"`
	Location         string   `json:"location"`
	RiderName        string   `json:"rider_name"`
	FenceHeightCm    *int     `json:"fence_height_cm"`
	Faults           *string  `json:"faults"`
	Placement        *int     `json:"placement"`
	TotalCompetitors *int     `json:"total_competitors"`
	TimeSeconds      *float64 `json:"time_seconds"`
}
