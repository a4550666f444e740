package views

import "time"

const dateLayout = "2006-01-02"

// DeriveAge returns whole years between dob and asOf, counting a year only
// once the birthday has passed. Never negative.
func DeriveAge(dob, asOf time.Time) int {
	years := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() || (asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ageFromDOB derives age for an optional date of birth. A missing date yields
// 0, which is indistinguishable from a newborn; the FEI feed simply has no
// better signal and the original UI shows 0 in that case too.
func ageFromDOB(dob *time.Time, asOf time.Time) int {
	if dob == nil {
		return 0
	}
	return DeriveAge(*dob, asOf)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
