package booking

import (
	"context"
	"errors"
	"fmt"

	"vetcare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookSlot creates an appointment and flips its slot to booked in one transaction.
// The slot update is conditional on the slot still being available, so of several
// concurrent requests for one slot exactly one succeeds.
func (s *DefaultBookingService) BookSlot(ctx context.Context, req models.BookSlotRequest) (*models.Appointment, error) {
	logger := s.logger().With(zap.String("slotID", req.SlotID))

	slot, err := s.Slots.GetByID(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.Status != models.SlotAvailable {
		s.Metrics.ObserveBooking("unavailable")
		return nil, ErrSlotUnavailable
	}

	vet, err := s.Vets.GetByID(ctx, slot.VetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load veterinarian %s: %w", slot.VetID, err)
	}
	if slot.StartsAt.Before(s.now().Add(vet.NoticeDuration())) {
		s.Metrics.ObserveBooking("notice_period")
		return nil, ErrInsideNoticePeriod
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		SlotID:      slot.ID,
		VetID:       slot.VetID,
		PetParentID: req.PetParentID,
		PetID:       req.PetID,
		Reason:      req.Reason,
		Status:      models.AppointmentScheduled,
		StartsAt:    slot.StartsAt,
		CreatedAt:   s.now().UTC(),
	}

	err = s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.Slots.MarkBooked(ctx, slot.ID, appt.ID); err != nil {
			return err
		}
		return s.Appointments.Create(ctx, appt)
	})
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			s.Metrics.ObserveBooking("unavailable")
			logger.Info("slot taken before booking committed")
			return nil, ErrSlotUnavailable
		}
		s.Metrics.ObserveBooking("error")
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	s.Metrics.ObserveBooking("booked")
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, slot.VetID); err != nil {
			logger.Warn("availability cache invalidation failed", zap.Error(err))
		}
	}
	logger.Info("slot booked",
		zap.String("vetID", slot.VetID),
		zap.String("appointmentID", appt.ID),
		zap.Time("startsAt", slot.StartsAt),
	)
	return appt, nil
}
