package slots

import (
	"testing"
	"time"
	_ "time/tzdata"

	"vetcare/database/memory"
	"vetcare/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(now time.Time) (*DefaultSlotService, *memory.Store) {
	store := memory.NewStore()
	svc := &DefaultSlotService{
		Repo:   store.Slots(),
		Vets:   store.Vets(),
		Tx:     store,
		Logger: zap.NewNop(),
		Now:    func() time.Time { return now },
	}
	return svc, store
}

func addVet(t *testing.T, store *memory.Store, vet models.Veterinarian) models.Veterinarian {
	t.Helper()
	if vet.ID == "" {
		vet.ID = uuid.New().String()
	}
	store.PutVet(&vet)
	return vet
}

// seedShift stores the slots of one shift with ids assigned and returns them.
func seedShift(t *testing.T, store *memory.Store, vetID, tz, date, start, end string) []models.AppointmentSlot {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	day, err := ParseDay(date, loc)
	require.NoError(t, err)

	shift := BuildShiftSlots(vetID, tz, loc, day, models.MustClockTime(start), models.MustClockTime(end))
	for i := range shift {
		shift[i].ID = uuid.New().String()
	}
	store.PutSlots(shift...)
	return shift
}

func setStatus(store *memory.Store, slot models.AppointmentSlot, status models.SlotStatus) models.AppointmentSlot {
	slot.Status = status
	store.PutSlots(slot)
	return slot
}

func idsOf(slots []models.AppointmentSlot) []string {
	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}
	return ids
}

func weekdays(start, end string) models.WeeklySchedule {
	ws := models.WeeklySchedule{}
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		ws[d] = models.DaySchedule{Start: start, End: end, Available: true}
	}
	return ws
}
