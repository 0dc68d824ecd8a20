package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetcare/models"

	"go.uber.org/zap"
)

// HasAvailability reports whether the vet has any available slot dated today or later
// in the vet's timezone. The notice period is not applied here. A vet that cannot be
// loaded is reported as unavailable; only a failing slot query returns an error.
func (s *DefaultSlotService) HasAvailability(ctx context.Context, vetID string) (bool, error) {
	logger := s.logger()
	if vetID == "" {
		return false, invalid("vetId", "is required")
	}

	vet, err := s.Vets.GetByID(ctx, vetID)
	if err != nil {
		if errors.Is(err, ErrVetNotFound) {
			logger.Info("availability probe for unknown veterinarian", zap.String("vetID", vetID))
		} else {
			logger.Error("veterinarian lookup failed during availability probe", zap.String("vetID", vetID), zap.Error(err))
		}
		return false, nil
	}

	loc, err := vet.Location()
	if err != nil {
		logger.Warn("invalid veterinarian timezone, falling back to UTC",
			zap.String("vetID", vetID), zap.String("timezone", vet.Timezone))
		loc = time.UTC
	}

	today := StartOfDay(s.now().In(loc))
	day := today.Format(dayLayout)
	if s.Cache != nil {
		value, found, err := s.Cache.Get(ctx, vetID, day)
		if err != nil {
			logger.Warn("availability cache read failed", zap.String("vetID", vetID), zap.Error(err))
		} else if found {
			return value, nil
		}
	}

	available, err := s.Repo.ExistsAvailableFrom(ctx, vetID, today.UTC())
	if err != nil {
		return false, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, vetID, day, available); err != nil {
			logger.Warn("availability cache write failed", zap.String("vetID", vetID), zap.Error(err))
		}
	}
	return available, nil
}

// BookableSlots lists the available slots of one day that start at least the vet's
// notice period after now.
func (s *DefaultSlotService) BookableSlots(ctx context.Context, vetID, date string) ([]models.AppointmentSlot, error) {
	if vetID == "" {
		return nil, invalid("vetId", "is required")
	}
	vet, loc, err := s.loadVet(ctx, vetID)
	if err != nil {
		return nil, err
	}
	day, err := ParseDay(date, loc)
	if err != nil {
		return nil, invalid("date", "must be in YYYY-MM-DD format")
	}

	found, err := s.Repo.FindAvailableOnDate(ctx, vetID, day.UTC())
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(vet.NoticeDuration())
	bookable := make([]models.AppointmentSlot, 0, len(found))
	for _, slot := range found {
		if !slot.StartsAt.Before(cutoff) {
			bookable = append(bookable, slot)
		}
	}
	return bookable, nil
}

// ListSlots returns every slot of the vet between two calendar days, inclusive.
func (s *DefaultSlotService) ListSlots(ctx context.Context, vetID, startDate, endDate string) ([]models.AppointmentSlot, error) {
	from, to, err := s.dayRange(ctx, vetID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByVetAndRange(ctx, vetID, from, to)
}

func (s *DefaultSlotService) loadVet(ctx context.Context, vetID string) (*models.Veterinarian, *time.Location, error) {
	vet, err := s.Vets.GetByID(ctx, vetID)
	if err != nil {
		return nil, nil, err
	}
	loc, err := vetLocation(vet)
	if err != nil {
		return nil, nil, err
	}
	return vet, loc, nil
}

// dayRange resolves [startOfDay(startDate), endOfDay(endDate)] in the vet's timezone.
func (s *DefaultSlotService) dayRange(ctx context.Context, vetID, startDate, endDate string) (time.Time, time.Time, error) {
	if vetID == "" {
		return time.Time{}, time.Time{}, invalid("vetId", "is required")
	}
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, invalid("startDate", "startDate and endDate are required")
	}
	_, loc, err := s.loadVet(ctx, vetID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, err := ParseDay(startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("startDate", "must be in YYYY-MM-DD format")
	}
	to, err := ParseDay(endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("endDate", "must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, invalid("endDate", "must not be before startDate")
	}
	return from.UTC(), EndOfDay(to).UTC(), nil
}

func (s *DefaultSlotService) invalidateAvailability(ctx context.Context, vetIDs ...string) {
	if s.Cache == nil || len(vetIDs) == 0 {
		return
	}
	if err := s.Cache.Invalidate(ctx, vetIDs...); err != nil {
		s.logger().Warn("availability cache invalidation failed",
			zap.Strings("vetIDs", vetIDs), zap.Error(fmt.Errorf("invalidate: %w", err)))
	}
}
