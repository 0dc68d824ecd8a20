// Package memory holds in-process implementations of the repositories and the
// transactor. Transactions are serialised and roll back by restoring a snapshot.
package memory

import (
	"context"
	"sync"

	"vetcare/models"
)

type slotKey struct {
	vetID string
	date  int64
	start models.ClockTime
}

// Store is the shared state behind the in-memory repositories.
type Store struct {
	mu           sync.Mutex
	txMu         sync.Mutex
	slots        map[string]models.AppointmentSlot
	vets         map[string]models.Veterinarian
	appointments map[string]models.Appointment
	failure      error

	Commits int
	Aborts  int
}

func NewStore() *Store {
	return &Store{
		slots:        make(map[string]models.AppointmentSlot),
		vets:         make(map[string]models.Veterinarian),
		appointments: make(map[string]models.Appointment),
	}
}

// FailWith makes every following repository call return err. nil clears it.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.snapshot()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.slots, s.vets, s.appointments = snapshot.slots, snapshot.vets, snapshot.appointments
		s.Aborts++
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.Commits++
	s.mu.Unlock()
	return nil
}

type state struct {
	slots        map[string]models.AppointmentSlot
	vets         map[string]models.Veterinarian
	appointments map[string]models.Appointment
}

func (s *Store) snapshot() state {
	st := state{
		slots:        make(map[string]models.AppointmentSlot, len(s.slots)),
		vets:         make(map[string]models.Veterinarian, len(s.vets)),
		appointments: make(map[string]models.Appointment, len(s.appointments)),
	}
	for k, v := range s.slots {
		st.slots[k] = v
	}
	for k, v := range s.vets {
		st.vets[k] = v
	}
	for k, v := range s.appointments {
		st.appointments[k] = v
	}
	return st
}

// AllSlots returns a copy of every stored slot.
func (s *Store) AllSlots() []models.AppointmentSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AppointmentSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, slot)
	}
	sortSlots(out)
	return out
}

// PutSlots stores slots as given, overwriting by id.
func (s *Store) PutSlots(slots ...models.AppointmentSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range slots {
		s.slots[slot.ID] = slot
	}
}
