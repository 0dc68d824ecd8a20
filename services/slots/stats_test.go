package slots

import (
	"context"
	"testing"
	"time"

	"vetcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(date time.Time, start string, status models.SlotStatus) models.AppointmentSlot {
	st := models.MustClockTime(start)
	return models.AppointmentSlot{
		Date:      date,
		StartTime: st,
		EndTime:   st.Add(models.SlotDurationMinutes),
		Status:    status,
	}
}

func TestCountPeriods(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	gap := DefaultPeriodGapMinutes * time.Minute

	tests := []struct {
		name   string
		starts []string
		want   int
	}{
		{"empty", nil, 0},
		{"single", []string{"09:00"}, 1},
		{"contiguous", []string{"09:00", "09:30", "10:00"}, 1},
		{"gap of exactly threshold", []string{"09:00", "10:20"}, 1},
		{"gap above threshold", []string{"09:00", "09:30", "11:00", "11:30"}, 2},
		{"unsorted input", []string{"14:00", "09:00", "09:30"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []models.AppointmentSlot
			for _, s := range tt.starts {
				in = append(in, slotAt(day, s, models.SlotAvailable))
			}
			assert.Equal(t, tt.want, CountPeriods(in, gap))
		})
	}
}

func TestComputeStats(t *testing.T) {
	d1 := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	in := []models.AppointmentSlot{
		slotAt(d1, "09:00", models.SlotAvailable),
		slotAt(d1, "09:30", models.SlotBooked),
		slotAt(d2, "09:00", models.SlotDisabled),
	}

	got := ComputeStats(in, DefaultPeriodGapMinutes*time.Minute)
	assert.Equal(t, models.SlotStats{
		AvailableSlots: 1,
		BookedSlots:    1,
		DisabledSlots:  1,
		TotalPeriods:   2,
		TotalSlotHours: 1.5,
	}, got)
}

func TestSlotStats_ThroughRepository(t *testing.T) {
	svc, store := newTestService(monday)
	vet := addVet(t, store, models.Veterinarian{IsActive: true})
	seedShift(t, store, vet.ID, "UTC", "2024-06-03", "09:00", "10:00")
	seedShift(t, store, vet.ID, "UTC", "2024-06-03", "11:00", "12:00")
	seedShift(t, store, vet.ID, "UTC", "2024-06-10", "09:00", "10:00")

	stats, err := svc.SlotStats(context.Background(), vet.ID, "2024-06-03", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.AvailableSlots)
	assert.Equal(t, 2, stats.TotalPeriods)
	assert.Equal(t, 2.0, stats.TotalSlotHours)

	svc.Policy.PeriodGapMinutes = 60
	stats, err = svc.SlotStats(context.Background(), vet.ID, "2024-06-03", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPeriods)
}

func TestSlotStats_MissingDates(t *testing.T) {
	svc, store := newTestService(monday)
	vet := addVet(t, store, models.Veterinarian{IsActive: true})

	_, err := svc.SlotStats(context.Background(), vet.ID, "", "2024-06-03")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
