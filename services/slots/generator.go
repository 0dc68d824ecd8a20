package slots

import (
	"context"
	"fmt"
	"time"

	"vetcare/models"

	"go.uber.org/zap"
)

const slotLength = models.SlotDurationMinutes * time.Minute

// GenerateVeterinarianSlots materialises available slots for every active veterinarian
// from today through today+WindowDays in the vet's timezone. A schedule day that already
// produced slots is skipped entirely, so repeated runs only fill newly reached days.
func (s *DefaultSlotService) GenerateVeterinarianSlots(ctx context.Context) (*models.GenerationResult, error) {
	logger := s.logger()
	started := time.Now()

	vets, err := s.Vets.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active veterinarians: %w", err)
	}

	var created, skipped int
	now := s.now()
	for i := range vets {
		vet := &vets[i]
		loc, err := vetLocation(vet)
		if err != nil {
			return nil, fmt.Errorf("veterinarian %s: %w", vet.ID, err)
		}

		vetCreated := 0
		today := StartOfDay(now.In(loc))
		for d := 0; d <= s.Policy.windowDays(); d++ {
			day := today.AddDate(0, 0, d)
			c, sk, err := s.generateShift(ctx, vet, loc, day)
			if err != nil {
				return nil, fmt.Errorf("veterinarian %s, %s: %w", vet.ID, day.Format(dayLayout), err)
			}
			vetCreated += c
			skipped += sk
		}
		created += vetCreated

		if vetCreated > 0 {
			s.invalidateAvailability(ctx, vet.ID)
			logger.Debug("generated slots", zap.String("vetID", vet.ID), zap.Int("created", vetCreated))
		}
	}

	s.Metrics.ObserveGeneration(created, skipped, time.Since(started).Seconds())
	logger.Info("slot generation finished",
		zap.Int("veterinarians", len(vets)),
		zap.Int("created", created),
		zap.Int("skipped", skipped),
	)

	return &models.GenerationResult{
		Success:      true,
		SlotsCreated: created,
		SlotsSkipped: skipped,
		Message:      fmt.Sprintf("Generated %d slots, skipped %d existing slots", created, skipped),
	}, nil
}

// generateShift creates the slots of one schedule day. Rows rejected by the storage
// uniqueness constraint were generated by a concurrent run and count as skipped.
func (s *DefaultSlotService) generateShift(ctx context.Context, vet *models.Veterinarian, loc *time.Location, day time.Time) (int, int, error) {
	entry := vet.Schedule.For(day.Weekday())
	if !entry.Available {
		return 0, 0, nil
	}

	existing, err := s.Repo.CountByShift(ctx, vet.ID, day.UTC())
	if err != nil {
		return 0, 0, err
	}
	if existing > 0 {
		return 0, existing, nil
	}

	start, end, err := entry.Window()
	if err != nil {
		return 0, 0, invalid("schedule."+models.WeekdayKey(day.Weekday()), "%v", err)
	}

	shift := BuildShiftSlots(vet.ID, vet.TimezoneName(), loc, day, start, end)
	if len(shift) == 0 {
		return 0, 0, nil
	}
	inserted, duplicates, err := s.Repo.InsertMany(ctx, shift)
	if err != nil {
		return 0, 0, err
	}
	return inserted, duplicates, nil
}

// BuildShiftSlots partitions [start, end) of day into consecutive 30 minute slots on
// the vet's wall clock. An end before the start closes the shift on the next day; a
// trailing remainder shorter than one slot is dropped. Slots after midnight carry the
// next day as Date. Wall times skipped by a DST gap produce no slot, and a repeated
// hour on a fall-back day is walked once.
func BuildShiftSlots(vetID, timezone string, loc *time.Location, day time.Time, start, end models.ClockTime) []models.AppointmentSlot {
	if start == end {
		return nil
	}
	endMinutes := end.Minutes()
	if end < start {
		endMinutes += models.MinutesPerDay
	}

	y, m, d := day.Date()
	var out []models.AppointmentSlot
	for minute := start.Minutes(); minute+models.SlotDurationMinutes <= endMinutes; minute += models.SlotDurationMinutes {
		cur := time.Date(y, m, d, 0, minute, 0, 0, loc)
		if int(clockOf(cur)) != minute%models.MinutesPerDay {
			continue
		}
		endMinute := minute + models.SlotDurationMinutes
		next := time.Date(y, m, d, 0, endMinute, 0, 0, loc)
		if int(clockOf(next)) != endMinute%models.MinutesPerDay {
			// wall end falls in a DST gap
			next = cur.Add(slotLength)
		}
		if !next.After(cur) {
			continue
		}
		out = append(out, models.AppointmentSlot{
			VetID:     vetID,
			Date:      StartOfDay(cur).UTC(),
			ShiftDate: StartOfDay(day).UTC(),
			StartsAt:  cur.UTC(),
			StartTime: clockOf(cur),
			EndTime:   clockOf(next),
			Timezone:  timezone,
			Status:    models.SlotAvailable,
		})
	}
	return out
}
