package slots

import (
	"context"
	"time"

	"vetcare/database"
	slotRepo "vetcare/database/repository/slot"
	vetRepo "vetcare/database/repository/vet"
	"vetcare/metrics"
	"vetcare/models"
	"vetcare/utils"

	"go.uber.org/zap"
)

const (
	// DefaultWindowDays is how many days past today the generator materialises.
	DefaultWindowDays = 7
	// DefaultPeriodGapMinutes is the largest gap between two slots of one period.
	// The value is carried over from observed behaviour, not a documented business rule.
	DefaultPeriodGapMinutes = 50
)

// SlotService covers slot generation, availability queries and bulk mutation.
type SlotService interface {
	GenerateVeterinarianSlots(ctx context.Context) (*models.GenerationResult, error)

	HasAvailability(ctx context.Context, vetID string) (bool, error)
	SlotStats(ctx context.Context, vetID, startDate, endDate string) (*models.SlotStats, error)
	ListSlots(ctx context.Context, vetID, startDate, endDate string) ([]models.AppointmentSlot, error)
	BookableSlots(ctx context.Context, vetID, date string) ([]models.AppointmentSlot, error)

	DeletePeriod(ctx context.Context, req models.DeletePeriodRequest) (int, error)
	DeletePeriodsBulk(ctx context.Context, req models.DeletePeriodsRequest) (*models.BulkDeleteResult, error)
	DeleteSlotsByID(ctx context.Context, vetID string, slotIDs []string) (*models.DeleteByIDResult, error)
	SetSlotsDisabled(ctx context.Context, vetID string, slotIDs []string, disabled bool) (int, error)
}

// Policy holds the tunable slot rules.
type Policy struct {
	WindowDays       int
	PeriodGapMinutes int
}

func (p Policy) windowDays() int {
	if p.WindowDays <= 0 {
		return DefaultWindowDays
	}
	return p.WindowDays
}

func (p Policy) periodGap() time.Duration {
	if p.PeriodGapMinutes <= 0 {
		return DefaultPeriodGapMinutes * time.Minute
	}
	return time.Duration(p.PeriodGapMinutes) * time.Minute
}

// DefaultSlotService is the production SlotService.
type DefaultSlotService struct {
	Repo    slotRepo.SlotRepository
	Vets    vetRepo.VetRepository
	Tx      database.Transactor
	Cache   AvailabilityCache
	Metrics *metrics.SlotMetrics
	Logger  *zap.Logger
	Policy  Policy
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSlotService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSlotService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
