package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/stablewise/stablewise-backend/internal/models"
)

// FromAnimal maps a legacy animal record. All fields have direct targets.
func FromAnimal(a *models.Animal) AnimalView {
	v := AnimalView{
		ID:              a.ID.String(),
		Name:            a.Name,
		HeightCm:        a.HeightCm,
		Breed:           a.Breed,
		Dam:             a.Dam,
		Sire:            a.Sire,
		Coloring:        a.Coloring,
		MicrochipNumber: a.MicrochipNumber,
		PassportNumber:  a.PassportNumber,
		Country:         a.Country,
		IsPony:          a.IsPony,
		ImageURLs:       []string(a.ImageURLs),
	}
	if a.Age != nil {
		v.AgeYears = *a.Age
	}
	if a.NationalRepresentation != nil {
		v.NationalRepresentation = *a.NationalRepresentation
	}
	if v.ImageURLs == nil {
		v.ImageURLs = []string{}
	}
	return v
}

// FromHorse maps an FEI record through the rename table: studbook→breed,
// color→coloring, microchip→microchip_number, ueln→passport_number,
// country_of_birth→country. Height, national representation and images have
// no counterpart in the FEI feed and stay unknown. The FEI identifier is the
// public id when present.
func FromHorse(h *models.Horse, asOf time.Time) AnimalView {
	v := AnimalView{
		ID:              h.ID.String(),
		AgeYears:        ageFromDOB(h.DateOfBirth, asOf),
		Breed:           coalesce(h.Studbook, h.Breed),
		Dam:             h.Dam,
		Sire:            h.Sire,
		Coloring:        h.Color,
		MicrochipNumber: h.Microchip,
		PassportNumber:  h.UELN,
		Country:         h.CountryOfBirth,
		ImageURLs:       []string{},
	}
	if h.FEIID != nil && *h.FEIID != "" {
		v.ID = *h.FEIID
	}
	if h.Name != nil {
		v.Name = *h.Name
	}
	if h.IsPony != nil {
		v.IsPony = *h.IsPony
	}
	return v
}

// FromCompetitionResult maps a legacy result row. Numeric faults are
// rendered as display text.
func FromCompetitionResult(r *models.CompetitionResult) CompetitionResultView {
	v := CompetitionResultView{
		ID:               r.ID.String(),
		CompetitionName:  r.CompetitionName,
		CompetitionDate:  formatDate(r.CompetitionDate),
		FenceHeightCm:    r.FenceHeightCm,
		Placement:        r.Placement,
		TotalCompetitors: r.TotalCompetitors,
		TimeSeconds:      r.TimeSeconds,
	}
	if r.Location != nil {
		v.Location = *r.Location
	}
	if r.RiderName != nil {
		v.RiderName = *r.RiderName
	}
	if r.Faults != nil {
		s := strconv.FormatFloat(*r.Faults, 'f', -1, 64)
		v.Faults = &s
	}
	return v
}

// FromFEIResult maps a scraped result row: obstacle_height_cm→fence_height_cm,
// result_place→placement. The feed names the competition in up to three
// columns; the first populated one wins. Free-text placement that does not
// parse stays unknown, and the feed never records field sizes.
func FromFEIResult(r *models.FEIResult) CompetitionResultView {
	v := CompetitionResultView{
		ID:            r.ID.String(),
		FenceHeightCm: r.ObstacleHeightCm,
		Faults:        r.Faults,
		Placement:     parsePlacement(r.ResultPlace),
	}
	if name := coalesce(r.CompetitionName, r.EventName, r.ShowName); name != nil {
		v.CompetitionName = *name
	}
	v.CompetitionDate = formatDate(r.CompetitionDate)
	if r.Location != nil {
		v.Location = *r.Location
	}
	if r.RiderName != nil {
		v.RiderName = *r.RiderName
	}
	return v
}

// parsePlacement extracts a leading integer from free-text placement such as
// "5" or "12th". Annotations like "EL" or "RET" resolve to unknown.
func parsePlacement(s *string) *int {
	if s == nil {
		return nil
	}
	text := strings.TrimSpace(*s)
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return nil
	}
	return &n
}

func coalesce(vals ...*string) *string {
	for _, v := range vals {
		if v != nil && strings.TrimSpace(*v) != "" {
			return v
		}
	}
	return nil
}
