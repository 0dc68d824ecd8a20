package cron

import (
	"context"
	"testing"
	"time"

	"vetcare/database/memory"
	"vetcare/models"
	"vetcare/services/slots"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleGenerateTask(t *testing.T) {
	store := memory.NewStore()
	vet := models.Veterinarian{ID: "vet-1", IsActive: true, Schedule: models.WeeklySchedule{
		"monday": {Start: "09:00", End: "10:00", Available: true},
	}}
	store.PutVet(&vet)

	svc := &slots.DefaultSlotService{
		Repo:   store.Slots(),
		Vets:   store.Vets(),
		Tx:     store,
		Logger: zap.NewNop(),
		// Monday
		Now: func() time.Time { return time.Date(2024, time.June, 3, 0, 5, 0, 0, time.UTC) },
	}
	handler := HandleGenerateTask(svc, zap.NewNop())

	require.NoError(t, handler(context.Background(), NewGenerateSlotsTask()))
	assert.Len(t, store.AllSlots(), 4)

	require.NoError(t, handler(context.Background(), NewGenerateSlotsTask()))
	assert.Len(t, store.AllSlots(), 4)

	store.FailWith(assert.AnError)
	assert.ErrorIs(t, handler(context.Background(), NewGenerateSlotsTask()), assert.AnError)
}

func TestNewSlotWorker(t *testing.T) {
	mr := miniredis.RunT(t)
	opt := asynq.RedisClientOpt{Addr: mr.Addr()}
	svc := &slots.DefaultSlotService{}

	w, err := NewSlotWorker(opt, "", svc, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, w)

	_, err = NewSlotWorker(opt, "not a cron", svc, zap.NewNop())
	assert.Error(t, err)
}

func TestNewGenerateSlotsTask(t *testing.T) {
	task := NewGenerateSlotsTask()
	assert.Equal(t, TypeGenerateSlots, task.Type())
}
