package slots

import (
	"context"
	"math"
	"sort"
	"time"

	"vetcare/models"
)

// SlotStats tallies the vet's slots between two calendar days, inclusive.
func (s *DefaultSlotService) SlotStats(ctx context.Context, vetID, startDate, endDate string) (*models.SlotStats, error) {
	from, to, err := s.dayRange(ctx, vetID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	found, err := s.Repo.FindByVetAndRange(ctx, vetID, from, to)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(found, s.Policy.periodGap())
	return &stats, nil
}

// ComputeStats counts slots per status, sums their hours (all statuses, two decimals)
// and counts periods per calendar day.
func ComputeStats(all []models.AppointmentSlot, gap time.Duration) models.SlotStats {
	var stats models.SlotStats
	minutes := 0
	byDay := make(map[int64][]models.AppointmentSlot)

	for _, slot := range all {
		switch slot.Status {
		case models.SlotAvailable:
			stats.AvailableSlots++
		case models.SlotBooked:
			stats.BookedSlots++
		case models.SlotDisabled:
			stats.DisabledSlots++
		}
		minutes += slot.DurationMinutes()
		key := slot.Date.UnixMilli()
		byDay[key] = append(byDay[key], slot)
	}

	for _, day := range byDay {
		stats.TotalPeriods += CountPeriods(day, gap)
	}
	stats.TotalSlotHours = math.Round(float64(minutes)/60*100) / 100
	return stats
}

// CountPeriods counts maximal runs of one day's slots in which each slot starts at most
// gap after the previous one ends.
func CountPeriods(day []models.AppointmentSlot, gap time.Duration) int {
	if len(day) == 0 {
		return 0
	}
	sorted := make([]models.AppointmentSlot, len(day))
	copy(sorted, day)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	periods := 1
	prevEnd := sorted[0].StartTime.Minutes() + sorted[0].DurationMinutes()
	for _, slot := range sorted[1:] {
		if time.Duration(slot.StartTime.Minutes()-prevEnd)*time.Minute > gap {
			periods++
		}
		prevEnd = slot.StartTime.Minutes() + slot.DurationMinutes()
	}
	return periods
}
