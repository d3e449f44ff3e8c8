package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/amonks/todoboard/internal/kv"
)

// countingSlot wraps a memory store and counts writes.
type countingSlot struct {
	*kv.MemoryStore
	sets   int
	getErr error
	setErr error
}

func newCountingSlot() *countingSlot {
	return &countingSlot{MemoryStore: kv.NewMemory()}
}

func (s *countingSlot) Get(key string) ([]byte, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	return s.MemoryStore.Get(key)
}

func (s *countingSlot) Set(key string, value []byte) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(key, value)
}

var errSlotUnavailable = errors.New("slot unavailable")

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

var testEpoch = time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *countingSlot) {
	t.Helper()

	slot := newCountingSlot()
	store, err := Open(slot, OpenOptions{Now: stepClock(testEpoch, time.Second)})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, slot
}

func mustAdd(t *testing.T, store *Store, title, description string) Todo {
	t.Helper()

	created, err := store.Add(title, description)
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return created
}

func idsOf(todos []Todo) []int64 {
	ids := make([]int64, 0, len(todos))
	for _, t := range todos {
		ids = append(ids, t.ID)
	}
	return ids
}
