package memory

import (
	"context"
	"sort"
	"time"

	slotRepo "vetcare/database/repository/slot"
	"vetcare/models"

	"github.com/google/uuid"
)

type slotRepository struct {
	*Store
}

// Slots returns the store's SlotRepository.
func (s *Store) Slots() slotRepo.SlotRepository {
	return slotRepository{s}
}

func sortSlots(slots []models.AppointmentSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].StartsAt.Before(slots[j].StartsAt)
	})
}

func (r slotRepository) filter(match func(models.AppointmentSlot) bool) []models.AppointmentSlot {
	out := []models.AppointmentSlot{}
	for _, slot := range r.slots {
		if match(slot) {
			out = append(out, slot)
		}
	}
	sortSlots(out)
	return out
}

func (r slotRepository) InsertMany(_ context.Context, slots []models.AppointmentSlot) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return 0, 0, r.failure
	}

	taken := make(map[slotKey]bool, len(r.slots))
	for _, slot := range r.slots {
		taken[slotKey{slot.VetID, slot.Date.UnixMilli(), slot.StartTime}] = true
	}
	inserted, duplicates := 0, 0
	now := time.Now().UTC()
	for _, slot := range slots {
		key := slotKey{slot.VetID, slot.Date.UnixMilli(), slot.StartTime}
		if taken[key] {
			duplicates++
			continue
		}
		taken[key] = true
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.CreatedAt, slot.UpdatedAt = now, now
		r.slots[slot.ID] = slot
		inserted++
	}
	return inserted, duplicates, nil
}

func (r slotRepository) CountByShift(_ context.Context, vetID string, shiftDate time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return 0, r.failure
	}
	return len(r.filter(func(s models.AppointmentSlot) bool {
		return s.VetID == vetID && s.ShiftDate.Equal(shiftDate)
	})), nil
}

func (r slotRepository) ExistsAvailableFrom(_ context.Context, vetID string, from time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return false, r.failure
	}
	return len(r.filter(func(s models.AppointmentSlot) bool {
		return s.VetID == vetID && !s.Date.Before(from) && s.Status == models.SlotAvailable
	})) > 0, nil
}

func (r slotRepository) FindByVetAndRange(_ context.Context, vetID string, from, to time.Time) ([]models.AppointmentSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	return r.filter(func(s models.AppointmentSlot) bool {
		return s.VetID == vetID && !s.Date.Before(from) && !s.Date.After(to)
	}), nil
}

func (r slotRepository) FindAvailableOnDate(_ context.Context, vetID string, date time.Time) ([]models.AppointmentSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	return r.filter(func(s models.AppointmentSlot) bool {
		return s.VetID == vetID && s.Date.Equal(date) && s.Status == models.SlotAvailable
	}), nil
}

func inPeriod(q slotRepo.PeriodQuery) func(models.AppointmentSlot) bool {
	return func(s models.AppointmentSlot) bool {
		return s.VetID == q.VetID &&
			s.Date.Equal(q.Date) &&
			s.Timezone == q.Timezone &&
			s.StartTime >= q.Start && s.StartTime < q.End &&
			s.EndTime <= q.End
	}
}

func (r slotRepository) FindInPeriod(_ context.Context, q slotRepo.PeriodQuery) ([]models.AppointmentSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	return r.filter(inPeriod(q)), nil
}

func (r slotRepository) DeleteInPeriod(_ context.Context, q slotRepo.PeriodQuery) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return 0, r.failure
	}
	match := inPeriod(q)
	deleted := 0
	for id, slot := range r.slots {
		if match(slot) && slot.Deletable() {
			delete(r.slots, id)
			deleted++
		}
	}
	return deleted, nil
}

func ownedBy(vetID string, ids []string) func(models.AppointmentSlot) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(s models.AppointmentSlot) bool {
		return set[s.ID] && (vetID == "" || s.VetID == vetID)
	}
}

func (r slotRepository) FindByIDs(_ context.Context, vetID string, ids []string) ([]models.AppointmentSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	return r.filter(ownedBy(vetID, ids)), nil
}

func (r slotRepository) DeleteByIDs(_ context.Context, vetID string, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return 0, r.failure
	}
	match := ownedBy(vetID, ids)
	deleted := 0
	for id, slot := range r.slots {
		if match(slot) && slot.Deletable() {
			delete(r.slots, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r slotRepository) SetStatusByIDs(_ context.Context, vetID string, ids []string, from, to models.SlotStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return 0, r.failure
	}
	match := ownedBy(vetID, ids)
	modified := 0
	for id, slot := range r.slots {
		if match(slot) && slot.Status == from {
			slot.Status = to
			slot.UpdatedAt = time.Now().UTC()
			r.slots[id] = slot
			modified++
		}
	}
	return modified, nil
}

func (r slotRepository) GetByID(_ context.Context, slotID string) (*models.AppointmentSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	slot, ok := r.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return &slot, nil
}

func (r slotRepository) MarkBooked(_ context.Context, slotID, appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	slot, ok := r.slots[slotID]
	if !ok || slot.Status != models.SlotAvailable {
		return slotRepo.ErrSlotNotAvailable
	}
	slot.Status = models.SlotBooked
	slot.AppointmentID = appointmentID
	slot.UpdatedAt = time.Now().UTC()
	r.slots[slotID] = slot
	return nil
}

func (r slotRepository) EnsureIndexes(context.Context) error { return nil }
