package vets

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"vetcare/database/memory"
	"vetcare/models"
	"vetcare/services/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateSchedule(t *testing.T) {
	store := memory.NewStore()
	vet := models.Veterinarian{ID: "vet-1", IsActive: true}
	store.PutVet(&vet)
	svc := &DefaultScheduleService{Vets: store.Vets(), Logger: zap.NewNop()}

	updated, err := svc.UpdateSchedule(context.Background(), "vet-1", ScheduleUpdate{
		Timezone:     "Europe/Berlin",
		NoticePeriod: 60,
		Schedule: models.WeeklySchedule{
			"monday":   {Start: "09:00", End: "17:00", Available: true},
			"saturday": {Start: "22:00", End: "02:00", Available: true},
			"sunday":   {Available: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", updated.Timezone)
	assert.Equal(t, 60, updated.NoticePeriod)

	got, err := svc.GetSchedule(context.Background(), "vet-1")
	require.NoError(t, err)
	assert.True(t, got.Schedule.For(time.Saturday).Available)
}

func TestUpdateSchedule_DefaultsTimezone(t *testing.T) {
	store := memory.NewStore()
	vet := models.Veterinarian{ID: "vet-1"}
	store.PutVet(&vet)
	svc := &DefaultScheduleService{Vets: store.Vets(), Logger: zap.NewNop()}

	updated, err := svc.UpdateSchedule(context.Background(), "vet-1", ScheduleUpdate{Schedule: models.WeeklySchedule{}})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTimezone, updated.Timezone)
}

func TestUpdateSchedule_Rejects(t *testing.T) {
	store := memory.NewStore()
	svc := &DefaultScheduleService{Vets: store.Vets(), Logger: zap.NewNop()}

	_, err := svc.UpdateSchedule(context.Background(), "vet-1", ScheduleUpdate{
		NoticePeriod: 5000,
		Schedule:     models.WeeklySchedule{"funday": {Start: "09:00", End: "10:00", Available: true}},
	})
	var ve *slots.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "noticePeriod")
	assert.Contains(t, ve.Message, "schedule.funday")

	_, err = svc.UpdateSchedule(context.Background(), "vet-1", ScheduleUpdate{Schedule: models.WeeklySchedule{}})
	assert.ErrorIs(t, err, slots.ErrVetNotFound)

	_, err = svc.GetSchedule(context.Background(), "")
	require.ErrorAs(t, err, &ve)
}
