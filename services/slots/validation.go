package slots

import (
	"fmt"
	"time"

	slotRepo "vetcare/database/repository/slot"
	"vetcare/models"

	"github.com/google/uuid"
)

// periodQuery validates a period and resolves it to a repository query.
func periodQuery(vetID string, p models.PeriodRequest) (slotRepo.PeriodQuery, error) {
	var q slotRepo.PeriodQuery
	switch {
	case vetID == "":
		return q, invalid("vetId", "is required")
	case p.Date == "":
		return q, invalid("date", "is required")
	case p.StartTime == "":
		return q, invalid("startTime", "is required")
	case p.EndTime == "":
		return q, invalid("endTime", "is required")
	case p.Timezone == "":
		return q, invalid("timezone", "is required")
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return q, invalid("timezone", "unknown timezone %q", p.Timezone)
	}
	day, err := ParseDay(p.Date, loc)
	if err != nil {
		return q, invalid("date", "must be in YYYY-MM-DD format")
	}
	start, err := models.ParseClockTime(p.StartTime)
	if err != nil {
		return q, invalid("startTime", "must be in HH:mm format")
	}
	end, err := models.ParseClockTime(p.EndTime)
	if err != nil {
		return q, invalid("endTime", "must be in HH:mm format")
	}
	if start >= end {
		return q, invalid("startTime", "must be before endTime")
	}

	return slotRepo.PeriodQuery{
		VetID:    vetID,
		Date:     day.UTC(),
		Timezone: p.Timezone,
		Start:    start,
		End:      end,
	}, nil
}

func validateSlotIDs(ids []string) error {
	if len(ids) == 0 {
		return invalid("slotIds", "must be a non-empty array")
	}
	var bad []string
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			bad = append(bad, id)
		}
	}
	if len(bad) > 0 {
		return invalid("slotIds", "invalid slot id format: %v", bad)
	}
	return nil
}

func bookedOf(found []models.AppointmentSlot) []string {
	var ids []string
	for _, slot := range found {
		if slot.Status == models.SlotBooked {
			ids = append(ids, slot.ID)
		}
	}
	return ids
}

func vetIDsOf(found []models.AppointmentSlot) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, slot := range found {
		if !seen[slot.VetID] {
			seen[slot.VetID] = true
			ids = append(ids, slot.VetID)
		}
	}
	return ids
}

func periodIndexError(i int, err error) error {
	if ve, ok := err.(*ValidationError); ok {
		return &ValidationError{Field: fmt.Sprintf("periods[%d].%s", i, ve.Field), Message: ve.Message}
	}
	return err
}
