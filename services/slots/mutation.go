package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "vetcare/database/repository/slot"
	"vetcare/models"

	"go.uber.org/zap"
)

// DeletePeriod removes the available and disabled slots inside one period. If the
// period holds any booked slot nothing is deleted and a *ConflictError is returned.
func (s *DefaultSlotService) DeletePeriod(ctx context.Context, req models.DeletePeriodRequest) (int, error) {
	q, err := periodQuery(req.VetID, req.PeriodRequest)
	if err != nil {
		return 0, err
	}

	var deleted int
	err = s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		found, err := s.Repo.FindInPeriod(ctx, q)
		if err != nil {
			return err
		}
		if booked := bookedOf(found); len(booked) > 0 {
			return &ConflictError{
				Message:     "Cannot delete period: it contains booked slots",
				BookedCount: len(booked),
				BookedIDs:   booked,
			}
		}
		deleted, err = s.Repo.DeleteInPeriod(ctx, q)
		return err
	})
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			s.Metrics.ObserveConflict("period")
		}
		return 0, err
	}

	s.Metrics.ObserveDeleted("period", deleted)
	s.invalidateAvailability(ctx, req.VetID)
	s.logger().Info("deleted slot period",
		zap.String("vetID", req.VetID),
		zap.String("date", req.Date),
		zap.String("startTime", req.StartTime),
		zap.String("endTime", req.EndTime),
		zap.Int("deleted", deleted),
	)
	return deleted, nil
}

// DeletePeriodsBulk deletes several periods in one transaction. Periods holding booked
// slots are skipped and reported; the rest are deleted. When nothing was deleted and at
// least one period failed, the transaction is rolled back and ErrAllPeriodsFailed is
// returned together with the result describing every failure.
func (s *DefaultSlotService) DeletePeriodsBulk(ctx context.Context, req models.DeletePeriodsRequest) (*models.BulkDeleteResult, error) {
	if req.VetID == "" {
		return nil, invalid("vetId", "is required")
	}
	if len(req.Periods) == 0 {
		return nil, invalid("periods", "must be a non-empty array")
	}
	queries := make([]periodJob, len(req.Periods))
	for i, p := range req.Periods {
		q, err := periodQuery(req.VetID, p)
		if err != nil {
			return nil, periodIndexError(i, err)
		}
		queries[i] = periodJob{period: p, query: q}
	}

	var result *models.BulkDeleteResult
	err := s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		result = &models.BulkDeleteResult{
			Successes: []models.PeriodSuccess{},
			Errors:    []models.PeriodFailure{},
		}
		for _, job := range queries {
			found, err := s.Repo.FindInPeriod(ctx, job.query)
			if err != nil {
				return err
			}
			if booked := bookedOf(found); len(booked) > 0 {
				result.Errors = append(result.Errors, models.PeriodFailure{
					Period:           job.period,
					Error:            fmt.Sprintf("Cannot delete period: %d slot(s) are booked", len(booked)),
					BookedSlotsCount: len(booked),
				})
				continue
			}
			n, err := s.Repo.DeleteInPeriod(ctx, job.query)
			if err != nil {
				return err
			}
			result.TotalDeleted += n
			result.Successes = append(result.Successes, models.PeriodSuccess{Period: job.period, DeletedCount: n})
		}
		if result.TotalDeleted == 0 && len(result.Errors) > 0 {
			return ErrAllPeriodsFailed
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrAllPeriodsFailed) {
		return nil, err
	}

	result.Summary = models.BulkDeleteSummary{
		TotalPeriods:      len(req.Periods),
		SuccessfulPeriods: len(result.Successes),
		FailedPeriods:     len(result.Errors),
		TotalSlotsDeleted: result.TotalDeleted,
	}
	if len(result.Errors) > 0 {
		s.Metrics.ObserveConflict("bulk_periods")
	}
	if err != nil {
		return result, err
	}

	result.Success = true
	s.Metrics.ObserveDeleted("bulk_periods", result.TotalDeleted)
	s.invalidateAvailability(ctx, req.VetID)
	s.logger().Info("bulk period deletion committed",
		zap.String("vetID", req.VetID),
		zap.Int("periods", len(req.Periods)),
		zap.Int("failed", len(result.Errors)),
		zap.Int("deleted", result.TotalDeleted),
	)
	return result, nil
}

type periodJob struct {
	period models.PeriodRequest
	query  slotRepo.PeriodQuery
}

// DeleteSlotsByID deletes the requested slots unless any of them is booked.
// A non-empty vetID scopes the lookup to that vet's slots.
func (s *DefaultSlotService) DeleteSlotsByID(ctx context.Context, vetID string, slotIDs []string) (*models.DeleteByIDResult, error) {
	if err := validateSlotIDs(slotIDs); err != nil {
		return nil, err
	}

	result := &models.DeleteByIDResult{RequestedCount: len(slotIDs)}
	var owners []string
	err := s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		found, err := s.Repo.FindByIDs(ctx, vetID, slotIDs)
		if err != nil {
			return err
		}
		result.FoundCount = len(found)
		owners = vetIDsOf(found)
		if booked := bookedOf(found); len(booked) > 0 {
			return &ConflictError{
				Message:     "Cannot delete booked slots",
				BookedCount: len(booked),
				BookedIDs:   booked,
			}
		}
		result.DeletedCount, err = s.Repo.DeleteByIDs(ctx, vetID, slotIDs)
		return err
	})
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			s.Metrics.ObserveConflict("ids")
		}
		return nil, err
	}

	s.Metrics.ObserveDeleted("ids", result.DeletedCount)
	s.invalidateAvailability(ctx, owners...)
	return result, nil
}

// SetSlotsDisabled toggles the requested slots between available and disabled.
// Booked slots are never toggled; their presence rejects the whole request.
func (s *DefaultSlotService) SetSlotsDisabled(ctx context.Context, vetID string, slotIDs []string, disabled bool) (int, error) {
	if err := validateSlotIDs(slotIDs); err != nil {
		return 0, err
	}
	from, to := models.SlotDisabled, models.SlotAvailable
	if disabled {
		from, to = models.SlotAvailable, models.SlotDisabled
	}

	var modified int
	var owners []string
	err := s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		found, err := s.Repo.FindByIDs(ctx, vetID, slotIDs)
		if err != nil {
			return err
		}
		owners = vetIDsOf(found)
		if booked := bookedOf(found); len(booked) > 0 {
			return &ConflictError{
				Message:     "Cannot change status of booked slots",
				BookedCount: len(booked),
				BookedIDs:   booked,
			}
		}
		modified, err = s.Repo.SetStatusByIDs(ctx, vetID, slotIDs, from, to)
		return err
	})
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			s.Metrics.ObserveConflict("status")
		}
		return 0, err
	}

	s.invalidateAvailability(ctx, owners...)
	return modified, nil
}
