package models

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchedule(t *testing.T) {
	ok := Veterinarian{
		Timezone:     "Asia/Tokyo",
		NoticePeriod: 60,
		Schedule: WeeklySchedule{
			"monday":   {Start: "09:00", End: "17:00", Available: true},
			"saturday": {Start: "22:00", End: "02:00", Available: true},
			"sunday":   {Start: "", End: "", Available: false},
		},
	}
	assert.NoError(t, ok.ValidateSchedule())

	bad := Veterinarian{
		Timezone:     "Moon/Base",
		NoticePeriod: MaxNoticePeriodMinutes + 1,
		Schedule: WeeklySchedule{
			"someday": {Start: "09:00", End: "10:00", Available: true},
			"monday":  {Start: "9am", End: "10:00", Available: true},
			"tuesday": {Start: "10:00", End: "10:00", Available: true},
		},
	}
	err := bad.ValidateSchedule()
	if assert.Error(t, err) {
		for _, part := range []string{"timezone", "noticePeriod", "schedule.someday", "schedule.monday", "schedule.tuesday"} {
			assert.Contains(t, err.Error(), part)
		}
	}
}

func TestVeterinarianDefaults(t *testing.T) {
	v := Veterinarian{NoticePeriod: 45}
	assert.Equal(t, DefaultTimezone, v.TimezoneName())
	loc, err := v.Location()
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
	assert.Equal(t, 45*time.Minute, v.NoticeDuration())

	assert.False(t, v.Schedule.For(time.Monday).Available)
	assert.Equal(t, "wednesday", WeekdayKey(time.Wednesday))
}
