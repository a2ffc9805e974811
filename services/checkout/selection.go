package checkout

import (
	"sync"

	"github.com/google/uuid"
)

// SlotSelection is the user's working set of slot keys plus the
// idempotency key that travels with it. The key is rotated on every
// change to the selection: submitting a stale key against a different
// slot set is undefined behavior on the backend.
type SlotSelection struct {
	mu       sync.Mutex
	slotKeys []string
	key      string
}

func NewSlotSelection() *SlotSelection {
	return &SlotSelection{}
}

// Add appends a slot key to the selection and rotates the idempotency key.
func (s *SlotSelection) Add(slotKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.slotKeys {
		if k == slotKey {
			return
		}
	}
	s.slotKeys = append(s.slotKeys, slotKey)
	s.key = uuid.New().String()
}

// Remove drops a slot key from the selection and rotates the idempotency key.
func (s *SlotSelection) Remove(slotKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, k := range s.slotKeys {
		if k == slotKey {
			s.slotKeys = append(s.slotKeys[:i], s.slotKeys[i+1:]...)
			if len(s.slotKeys) == 0 {
				s.key = ""
			} else {
				s.key = uuid.New().String()
			}
			return
		}
	}
}

// Clear empties the selection and discards the idempotency key.
func (s *SlotSelection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slotKeys = nil
	s.key = ""
}

// Invalidate discards the current idempotency key and issues a fresh one
// for the same slot set. Called after the backend reports the slots
// unavailable, so a new attempt is never tied to the dead key.
func (s *SlotSelection) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slotKeys) == 0 {
		s.key = ""
		return
	}
	s.key = uuid.New().String()
}

// SlotKeys returns a copy of the selected slot keys.
func (s *SlotSelection) SlotKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, len(s.slotKeys))
	copy(keys, s.slotKeys)
	return keys
}

// IdempotencyKey returns the key for the current selection, or "" if the
// selection is empty.
func (s *SlotSelection) IdempotencyKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}
