package slots

import (
	"time"

	"vetcare/models"
)

const dayLayout = "2006-01-02"

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond of t's day, the finest resolution BSON dates keep.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// ParseDay parses "YYYY-MM-DD" as local midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, loc)
}

func clockOf(t time.Time) models.ClockTime {
	return models.ClockTime(t.Hour()*60 + t.Minute())
}

func vetLocation(vet *models.Veterinarian) (*time.Location, error) {
	loc, err := vet.Location()
	if err != nil {
		return nil, invalid("timezone", "unknown timezone %q", vet.Timezone)
	}
	return loc, nil
}
