package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"vetcare/database/memory"
	"vetcare/models"
	"vetcare/services/slots"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC)

func setup(t *testing.T, notice int) (*DefaultBookingService, *memory.Store, []models.AppointmentSlot) {
	t.Helper()
	store := memory.NewStore()
	vet := models.Veterinarian{ID: uuid.New().String(), IsActive: true, NoticePeriod: notice}
	store.PutVet(&vet)

	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	shift := slots.BuildShiftSlots(vet.ID, "UTC", time.UTC, day, models.MustClockTime("09:00"), models.MustClockTime("10:00"))
	for i := range shift {
		shift[i].ID = uuid.New().String()
	}
	store.PutSlots(shift...)

	svc := &DefaultBookingService{
		Slots:        store.Slots(),
		Appointments: store.Appointments(),
		Vets:         store.Vets(),
		Tx:           store,
		Logger:       zap.NewNop(),
		Now:          func() time.Time { return now },
	}
	return svc, store, shift
}

func TestBookSlot(t *testing.T) {
	svc, store, shift := setup(t, 0)

	appt, err := svc.BookSlot(context.Background(), models.BookSlotRequest{
		SlotID:      shift[0].ID,
		PetParentID: "parent-1",
		PetID:       "pet-1",
		Reason:      "vaccination",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
	assert.Equal(t, shift[0].StartsAt, appt.StartsAt)
	assert.Equal(t, shift[0].VetID, appt.VetID)

	slot, err := store.Slots().GetByID(context.Background(), shift[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.SlotBooked, slot.Status)
	assert.Equal(t, appt.ID, slot.AppointmentID)

	stored, err := store.Appointments().GetByID(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "parent-1", stored.PetParentID)

	_, err = svc.BookSlot(context.Background(), models.BookSlotRequest{SlotID: shift[0].ID, PetParentID: "parent-2"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookSlot_Rejections(t *testing.T) {
	t.Run("unknown slot", func(t *testing.T) {
		svc, _, _ := setup(t, 0)
		_, err := svc.BookSlot(context.Background(), models.BookSlotRequest{SlotID: uuid.New().String(), PetParentID: "p"})
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("disabled slot", func(t *testing.T) {
		svc, store, shift := setup(t, 0)
		shift[0].Status = models.SlotDisabled
		store.PutSlots(shift[0])
		_, err := svc.BookSlot(context.Background(), models.BookSlotRequest{SlotID: shift[0].ID, PetParentID: "p"})
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("inside notice period", func(t *testing.T) {
		// 09:00 is only sixty minutes away from now.
		svc, store, shift := setup(t, 90)
		_, err := svc.BookSlot(context.Background(), models.BookSlotRequest{SlotID: shift[0].ID, PetParentID: "p"})
		assert.ErrorIs(t, err, ErrInsideNoticePeriod)

		slot, err := store.Slots().GetByID(context.Background(), shift[0].ID)
		require.NoError(t, err)
		assert.Equal(t, models.SlotAvailable, slot.Status)

		_, err = svc.BookSlot(context.Background(), models.BookSlotRequest{SlotID: shift[1].ID, PetParentID: "p"})
		assert.NoError(t, err)
	})
}

func TestBookSlot_ConcurrentRequestsBookOnce(t *testing.T) {
	svc, store, shift := setup(t, 0)

	const callers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.BookSlot(context.Background(), models.BookSlotRequest{
				SlotID:      shift[0].ID,
				PetParentID: uuid.New().String(),
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, ErrSlotUnavailable) {
				refused++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, refused)
	slot, err := store.Slots().GetByID(context.Background(), shift[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.SlotBooked, slot.Status)
}
