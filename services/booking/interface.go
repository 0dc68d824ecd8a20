package booking

import (
	"context"
	"time"

	"vetcare/database"
	appointmentRepo "vetcare/database/repository/appointment"
	slotRepo "vetcare/database/repository/slot"
	vetRepo "vetcare/database/repository/vet"
	"vetcare/metrics"
	"vetcare/models"
	"vetcare/services/slots"
	"vetcare/utils"

	"go.uber.org/zap"
)

// BookingService turns an available slot into an appointment.
type BookingService interface {
	BookSlot(ctx context.Context, req models.BookSlotRequest) (*models.Appointment, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Slots        slotRepo.SlotRepository
	Appointments appointmentRepo.AppointmentRepository
	Vets         vetRepo.VetRepository
	Tx           database.Transactor
	Cache        slots.AvailabilityCache
	Metrics      *metrics.SlotMetrics
	Logger       *zap.Logger
	Now          func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
