package todo

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Slot is the key-value byte store the collection is mirrored into.
type Slot interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been written.
	Get(key string) (value []byte, ok bool, err error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error
}

// Store holds a board's todos in memory and mirrors them into a Slot.
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	slot       Slot
	key        string
	todos      []Todo
	ids        idGenerator
	now        func() time.Time
	timeFormat string
	logger     *log.Logger
	persistErr error
	listeners  []listenerEntry
	nextListen int
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Key is the slot name. If empty, DefaultKey is used.
	Key string

	// TimeFormat is the time layout for createDate and completedDate.
	// If empty, DefaultTimeFormat is used.
	TimeFormat string

	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives load and persistence warnings. If nil, nothing is logged.
	Logger *log.Logger
}

// Open creates a store backed by slot and loads any persisted todos.
// Missing or unreadable data leaves the store empty; Open only fails when
// slot is nil.
func Open(slot Slot, opts OpenOptions) (*Store, error) {
	if slot == nil {
		return nil, fmt.Errorf("todo store requires a slot")
	}
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Store{
		slot:       slot,
		key:        opts.Key,
		now:        opts.Now,
		timeFormat: opts.TimeFormat,
		logger:     opts.Logger,
	}
	s.Load()
	return s, nil
}

// Load replaces the in-memory collection with the slot's contents. Absent,
// unreadable, or corrupt data yields an empty collection; individual invalid
// records are skipped with a warning.
func (s *Store) Load() {
	s.todos = s.readSlot()
	for _, t := range s.todos {
		s.ids.observe(t.ID)
	}
	s.notify(Event{Kind: EventLoaded})
}

func (s *Store) readSlot() []Todo {
	data, ok, err := s.slot.Get(s.key)
	if err != nil {
		s.logger.Warn("read slot failed, starting empty", "key", s.key, "err", err)
		return nil
	}
	if !ok {
		s.logger.Debug("no stored todos", "key", s.key)
		return nil
	}

	todos, skipped, err := decodeTodos(data)
	if err != nil {
		s.logger.Warn("stored todos are corrupt, starting empty", "key", s.key, "err", err)
		return nil
	}
	for _, err := range skipped {
		s.logger.Warn("skipping invalid stored todo", "key", s.key, "err", err)
	}
	s.logger.Debug("loaded todos", "key", s.key, "count", len(todos))
	return todos
}

// persist writes the full collection to the slot. Failures are logged and
// kept in PersistError; the in-memory collection stays authoritative.
func (s *Store) persist() {
	data, err := encodeTodos(s.todos)
	if err == nil {
		err = s.slot.Set(s.key, data)
	}
	if err != nil {
		s.persistErr = fmt.Errorf("persist todos: %w", err)
		s.logger.Warn("persist failed", "key", s.key, "err", err)
		return
	}
	s.persistErr = nil
}

// PersistError returns the error from the most recent persistence write, or
// nil if it succeeded.
func (s *Store) PersistError() error {
	return s.persistErr
}

// Close retries a failed final write and closes the slot if it is an
// io.Closer.
func (s *Store) Close() error {
	if s.persistErr != nil {
		s.persist()
	}
	var closeErr error
	if closer, ok := s.slot.(io.Closer); ok {
		closeErr = closer.Close()
	}
	return errors.Join(s.persistErr, closeErr)
}

func (s *Store) timestamp() string {
	return s.now().Format(s.timeFormat)
}

func (s *Store) indexOf(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// EventKind identifies the store change an Event describes.
type EventKind int

const (
	// EventLoaded is sent after the collection is read from the slot.
	EventLoaded EventKind = iota

	// EventAdded is sent after a todo is appended.
	EventAdded

	// EventStatusChanged is sent after a todo's status is set.
	EventStatusChanged

	// EventRemoved is sent after a todo is deleted.
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventAdded:
		return "added"
	case EventStatusChanged:
		return "status changed"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event describes a change to the store. Todo is the affected todo after
// the change (or as it was, for EventRemoved); it is zero for EventLoaded.
type Event struct {
	Kind     EventKind
	Todo     Todo
	Previous Status
}

// Listener is called synchronously after each change, once the change has
// been persisted.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

// Subscribe registers fn for change events and returns a function that
// unregisters it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextListen++
	id := s.nextListen
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range s.listeners {
			if entry.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(event Event) {
	for _, entry := range s.listeners {
		entry.fn(event)
	}
}
