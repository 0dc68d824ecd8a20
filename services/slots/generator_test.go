package slots

import (
	"context"
	"testing"
	"time"

	"vetcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-03 is a Monday.
var monday = time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)

func TestGenerateVeterinarianSlots_WeekdaysOnlyAndIdempotent(t *testing.T) {
	svc, store := newTestService(monday)
	addVet(t, store, models.Veterinarian{IsActive: true, Schedule: weekdays("09:00", "17:00")})
	addVet(t, store, models.Veterinarian{IsActive: false, Schedule: weekdays("09:00", "17:00")})

	res, err := svc.GenerateVeterinarianSlots(context.Background())
	require.NoError(t, err)
	// June 3..June 10 holds six weekdays of sixteen slots each.
	assert.True(t, res.Success)
	assert.Equal(t, 96, res.SlotsCreated)
	assert.Equal(t, 0, res.SlotsSkipped)
	assert.Equal(t, "Generated 96 slots, skipped 0 existing slots", res.Message)

	for _, slot := range store.AllSlots() {
		wd := slot.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		assert.Equal(t, models.SlotAvailable, slot.Status)
		assert.Equal(t, 30, slot.DurationMinutes())
	}

	again, err := svc.GenerateVeterinarianSlots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.SlotsCreated)
	assert.Equal(t, 96, again.SlotsSkipped)
	assert.Len(t, store.AllSlots(), 96)
}

func TestGenerateVeterinarianSlots_OvernightShiftKeepsNextDay(t *testing.T) {
	svc, store := newTestService(monday)
	addVet(t, store, models.Veterinarian{IsActive: true, Schedule: models.WeeklySchedule{
		"monday":  {Start: "22:00", End: "02:00", Available: true},
		"tuesday": {Start: "09:00", End: "10:00", Available: true},
	}})

	res, err := svc.GenerateVeterinarianSlots(context.Background())
	require.NoError(t, err)
	// Mondays June 3 and June 10 give eight slots each, Tuesday June 4 gives two.
	assert.Equal(t, 18, res.SlotsCreated)

	june4 := time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC)
	var spill, tuesday []models.AppointmentSlot
	for _, slot := range store.AllSlots() {
		if !slot.Date.Equal(june4) {
			continue
		}
		if slot.ShiftDate.Equal(june4) {
			tuesday = append(tuesday, slot)
		} else {
			spill = append(spill, slot)
		}
	}
	require.Len(t, spill, 4)
	assert.Equal(t, "00:00", spill[0].StartTime.String())
	assert.Equal(t, "02:00", spill[3].EndTime.String())
	require.Len(t, tuesday, 2)
	assert.Equal(t, "09:00", tuesday[0].StartTime.String())

	again, err := svc.GenerateVeterinarianSlots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.SlotsCreated)
	assert.Equal(t, 18, again.SlotsSkipped)
}

func TestGenerateVeterinarianSlots_ConcurrentDuplicatesCountAsSkipped(t *testing.T) {
	svc, store := newTestService(monday)
	vet := addVet(t, store, models.Veterinarian{IsActive: true, Schedule: models.WeeklySchedule{
		"monday": {Start: "09:00", End: "10:00", Available: true},
	}})

	// A row written by another run under a different shift marker.
	existing := seedShift(t, store, vet.ID, "UTC", "2024-06-03", "09:00", "09:30")
	existing[0].ShiftDate = time.Time{}
	store.PutSlots(existing[0])

	res, err := svc.GenerateVeterinarianSlots(context.Background())
	require.NoError(t, err)
	// June 3 inserts 09:30 only; June 10 inserts both of its slots.
	assert.Equal(t, 3, res.SlotsCreated)
	assert.Equal(t, 1, res.SlotsSkipped)
}

func TestGenerateVeterinarianSlots_RepositoryErrorAborts(t *testing.T) {
	svc, store := newTestService(monday)
	addVet(t, store, models.Veterinarian{IsActive: true, Schedule: weekdays("09:00", "10:00")})
	store.FailWith(assert.AnError)

	_, err := svc.GenerateVeterinarianSlots(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuildShiftSlots(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	t.Run("drops partial tail", func(t *testing.T) {
		got := BuildShiftSlots("v", "UTC", time.UTC, day, models.MustClockTime("09:00"), models.MustClockTime("10:45"))
		require.Len(t, got, 3)
		assert.Equal(t, "10:30", got[2].EndTime.String())
	})

	t.Run("slots never overlap", func(t *testing.T) {
		got := BuildShiftSlots("v", "UTC", time.UTC, day, models.MustClockTime("08:00"), models.MustClockTime("12:00"))
		require.Len(t, got, 8)
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1].StartsAt.Add(30*time.Minute), got[i].StartsAt)
			assert.Equal(t, got[i-1].EndTime, got[i].StartTime)
		}
	})

	t.Run("empty shift", func(t *testing.T) {
		assert.Empty(t, BuildShiftSlots("v", "UTC", time.UTC, day, models.MustClockTime("09:00"), models.MustClockTime("09:00")))
		assert.Empty(t, BuildShiftSlots("v", "UTC", time.UTC, day, models.MustClockTime("09:00"), models.MustClockTime("09:20")))
	})

	t.Run("spring forward skips the missing hour", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		sunday := time.Date(2024, time.March, 10, 0, 0, 0, 0, ny)

		got := BuildShiftSlots("v", "America/New_York", ny, sunday, models.MustClockTime("01:00"), models.MustClockTime("04:00"))
		require.Len(t, got, 4)
		starts := []string{}
		for _, s := range got {
			starts = append(starts, s.StartTime.String())
		}
		assert.Equal(t, []string{"01:00", "01:30", "03:00", "03:30"}, starts)
		assert.Equal(t, time.Date(2024, time.March, 10, 5, 0, 0, 0, time.UTC), got[0].Date)
	})

	t.Run("fall back walks the repeated hour once", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		sunday := time.Date(2024, time.November, 3, 0, 0, 0, 0, ny)

		got := BuildShiftSlots("v", "America/New_York", ny, sunday, models.MustClockTime("01:00"), models.MustClockTime("03:00"))
		require.Len(t, got, 4)
		starts, ends := []string{}, []string{}
		for i, s := range got {
			starts = append(starts, s.StartTime.String())
			ends = append(ends, s.EndTime.String())
			assert.Equal(t, models.SlotDurationMinutes, s.DurationMinutes())
			if i > 0 {
				assert.True(t, s.StartsAt.After(got[i-1].StartsAt))
			}
		}
		assert.Equal(t, []string{"01:00", "01:30", "02:00", "02:30"}, starts)
		assert.Equal(t, []string{"01:30", "02:00", "02:30", "03:00"}, ends)

		oneHour := BuildShiftSlots("v", "America/New_York", ny, sunday, models.MustClockTime("01:00"), models.MustClockTime("02:00"))
		require.Len(t, oneHour, 2)
		stats := ComputeStats(oneHour, DefaultPeriodGapMinutes*time.Minute)
		assert.Equal(t, 1.0, stats.TotalSlotHours)
		assert.Equal(t, 1, stats.TotalPeriods)
	})
}
