// Package vets manages the weekly schedule that drives slot generation.
package vets

import (
	"context"

	vetRepo "vetcare/database/repository/vet"
	"vetcare/models"
	"vetcare/services/slots"
	"vetcare/utils"

	"go.uber.org/zap"
)

// ScheduleService reads and replaces a veterinarian's recurring schedule.
type ScheduleService interface {
	GetSchedule(ctx context.Context, vetID string) (*models.Veterinarian, error)
	UpdateSchedule(ctx context.Context, vetID string, update ScheduleUpdate) (*models.Veterinarian, error)
}

// ScheduleUpdate is the replaceable part of a veterinarian profile.
type ScheduleUpdate struct {
	Timezone     string                `json:"timezone"`
	NoticePeriod int                   `json:"noticePeriod"`
	Schedule     models.WeeklySchedule `json:"schedule" binding:"required"`
}

type DefaultScheduleService struct {
	Vets   vetRepo.VetRepository
	Logger *zap.Logger
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, vetID string) (*models.Veterinarian, error) {
	if vetID == "" {
		return nil, &slots.ValidationError{Field: "vetId", Message: "is required"}
	}
	return s.Vets.GetByID(ctx, vetID)
}

// UpdateSchedule validates and stores a new schedule. Slots already generated are kept;
// the next generation run applies the new schedule to days it has not produced yet.
func (s *DefaultScheduleService) UpdateSchedule(ctx context.Context, vetID string, update ScheduleUpdate) (*models.Veterinarian, error) {
	if vetID == "" {
		return nil, &slots.ValidationError{Field: "vetId", Message: "is required"}
	}
	candidate := models.Veterinarian{
		ID:           vetID,
		Timezone:     update.Timezone,
		NoticePeriod: update.NoticePeriod,
		Schedule:     update.Schedule,
	}
	if err := candidate.ValidateSchedule(); err != nil {
		return nil, &slots.ValidationError{Field: "schedule", Message: err.Error()}
	}

	vet, err := s.Vets.UpdateSchedule(ctx, vetID, candidate.TimezoneName(), update.NoticePeriod, update.Schedule)
	if err != nil {
		return nil, err
	}

	logger := s.Logger
	if logger == nil {
		logger = utils.GetLogger()
	}
	logger.Info("veterinarian schedule updated",
		zap.String("vetID", vetID),
		zap.String("timezone", vet.Timezone),
		zap.Int("noticePeriod", vet.NoticePeriod),
	)
	return vet, nil
}
