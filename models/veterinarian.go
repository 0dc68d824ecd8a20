package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultTimezone applies when a veterinarian has no timezone configured.
const DefaultTimezone = "UTC"

// MaxNoticePeriodMinutes is the upper bound of the advance-notice setting.
const MaxNoticePeriodMinutes = 1440

// DaySchedule is one weekday of a veterinarian's recurring availability.
type DaySchedule struct {
	Start     string `bson:"start" json:"start"`
	End       string `bson:"end" json:"end"`
	Available bool   `bson:"available" json:"available"`
}

// Window parses the day's start and end times. End before start means the shift ends the next day.
func (d DaySchedule) Window() (start, end ClockTime, err error) {
	if start, err = ParseClockTime(d.Start); err != nil {
		return 0, 0, err
	}
	if end, err = ParseClockTime(d.End); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// WeeklySchedule maps lowercase weekday names ("sunday".."saturday") to availability.
type WeeklySchedule map[string]DaySchedule

// WeekdayKey returns the schedule key for a weekday.
func WeekdayKey(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}

// For returns the schedule entry of a weekday. Missing entries are unavailable.
func (w WeeklySchedule) For(wd time.Weekday) DaySchedule {
	return w[WeekdayKey(wd)]
}

// Veterinarian is the schedule-bearing part of a veterinarian profile.
type Veterinarian struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	IsActive     bool           `bson:"isActive" json:"isActive"`
	Timezone     string         `bson:"timezone,omitempty" json:"timezone,omitempty"`
	NoticePeriod int            `bson:"noticePeriod" json:"noticePeriod"`
	Schedule     WeeklySchedule `bson:"schedule" json:"schedule"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// TimezoneName returns the configured timezone or UTC.
func (v *Veterinarian) TimezoneName() string {
	if v.Timezone == "" {
		return DefaultTimezone
	}
	return v.Timezone
}

// Location loads the veterinarian's timezone.
func (v *Veterinarian) Location() (*time.Location, error) {
	return time.LoadLocation(v.TimezoneName())
}

// NoticeDuration is the minimum lead time before a bookable slot starts.
func (v *Veterinarian) NoticeDuration() time.Duration {
	return time.Duration(v.NoticePeriod) * time.Minute
}

var validWeekdays = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// ValidateSchedule checks timezone, notice period and every weekday entry.
func (v *Veterinarian) ValidateSchedule() error {
	var errs []error
	if _, err := v.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone: unknown timezone %q", v.Timezone))
	}
	if v.NoticePeriod < 0 || v.NoticePeriod > MaxNoticePeriodMinutes {
		errs = append(errs, fmt.Errorf("noticePeriod: must be between 0 and %d minutes", MaxNoticePeriodMinutes))
	}
	for day, entry := range v.Schedule {
		if !validWeekdays[day] {
			errs = append(errs, fmt.Errorf("schedule.%s: unknown weekday", day))
			continue
		}
		if !entry.Available {
			continue
		}
		start, end, err := entry.Window()
		if err != nil {
			errs = append(errs, fmt.Errorf("schedule.%s: %w", day, err))
			continue
		}
		if start == end {
			errs = append(errs, fmt.Errorf("schedule.%s: start and end must differ", day))
		}
	}
	return errors.Join(errs...)
}
