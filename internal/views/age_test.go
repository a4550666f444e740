package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDeriveAge(t *testing.T) {
	t.Run("should not count the year before the birthday", func(t *testing.T) {
		dob := date(2010, time.June, 15)
		assert.Equal(t, 13, DeriveAge(dob, date(2024, time.June, 14)))
	})

	t.Run("should count the year on the birthday itself", func(t *testing.T) {
		dob := date(2010, time.June, 15)
		assert.Equal(t, 14, DeriveAge(dob, date(2024, time.June, 15)))
	})

	t.Run("should count the year after the birthday", func(t *testing.T) {
		dob := date(2010, time.June, 15)
		assert.Equal(t, 14, DeriveAge(dob, date(2024, time.December, 1)))
	})

	t.Run("should handle an earlier month with a later day", func(t *testing.T) {
		dob := date(2015, time.March, 1)
		assert.Equal(t, 8, DeriveAge(dob, date(2024, time.February, 28)))
	})

	t.Run("should never go negative", func(t *testing.T) {
		dob := date(2025, time.January, 1)
		assert.Equal(t, 0, DeriveAge(dob, date(2024, time.June, 1)))
	})

	t.Run("should be zero within the first year", func(t *testing.T) {
		dob := date(2024, time.February, 10)
		assert.Equal(t, 0, DeriveAge(dob, date(2024, time.November, 3)))
	})
}

func TestAgeFromDOB(t *testing.T) {
	t.Run("should be zero when the date of birth is unknown", func(t *testing.T) {
		assert.Equal(t, 0, ageFromDOB(nil, date(2024, time.June, 15)))
	})

	t.Run("should derive from a known date of birth", func(t *testing.T) {
		dob := date(2018, time.April, 2)
		assert.Equal(t, 6, ageFromDOB(&dob, date(2024, time.June, 15)))
	})
}
