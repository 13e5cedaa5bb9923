package journal

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/meuse24/taplog/internal/storage"
)

// TimestampLayout is the local date-time format stamped on every
// event. Lexical order of these strings equals chronological order,
// so the display sort works on the raw strings.
const TimestampLayout = "2006-01-02T15:04:05"

// Snapshot is an immutable view of the service state handed to
// subscribers and pollers.
type Snapshot struct {
	Events  []storage.Event
	Loading bool
	Err     *OpError
}

// Service owns the canonical in-memory event log. Mutations apply
// synchronously and are visible to the caller before the disk outcome
// is known; persistence runs in one goroutine per mutation and reports
// failures into the single stored error slot. Overlapping writes are
// not serialized: each goroutine writes its own consistent snapshot
// and the last completed write wins.
type Service struct {
	store storage.Store
	log   *logrus.Logger
	now   func() time.Time

	mu      sync.Mutex
	events  []storage.Event
	loading bool
	lastErr *OpError
	subs    []func(Snapshot)

	wg sync.WaitGroup
}

// New creates a Service over the given store. A nil logger discards
// all output.
func New(store storage.Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Service{
		store:  store,
		log:    log,
		now:    time.Now,
		events: []storage.Event{},
	}
}

// SetClock overrides the event time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Load reads the persisted document and replaces the in-memory log
// with the result. A missing document is an empty log, not an error;
// a read or parse failure stores a LoadError and leaves the log empty.
// This is the only blocking operation callers see.
func (s *Service) Load(ctx context.Context) []storage.Event {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	events, err := s.store.Load(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.events = []storage.Event{}
		s.lastErr = &OpError{Kind: LoadError, Message: err.Error()}
		s.log.WithError(err).Error("loading event log failed")
	} else {
		s.events = events
		s.log.WithField("events", len(events)).Debug("event log loaded")
	}
	out := copyEvents(s.events)
	s.mu.Unlock()
	s.notify()

	return out
}

// Add appends an event of the given type stamped with the current
// local time, then persists the full log in the background. The append
// is durable in memory even if the disk write later fails.
func (s *Service) Add(eventType string) storage.Event {
	ev := storage.Event{
		Type:      eventType,
		Timestamp: s.now().Format(TimestampLayout),
	}

	s.mu.Lock()
	s.events = append(s.events, ev)
	snapshot := copyEvents(s.events)
	s.mu.Unlock()
	s.notify()

	s.persist(snapshot)
	return ev
}

// Remove deletes the first event equal to ev, leaving any later
// duplicate in place. Removing an event that is not in the log is a
// no-op and produces no error. When the last event goes, the persisted
// document is deleted instead of rewritten as an empty array.
func (s *Service) Remove(ev storage.Event) bool {
	s.mu.Lock()
	removed := false
	for i := range s.events {
		if s.events[i] == ev {
			s.events = append(s.events[:i], s.events[i+1:]...)
			removed = true
			break
		}
	}
	empty := len(s.events) == 0
	snapshot := copyEvents(s.events)
	s.mu.Unlock()

	if !removed {
		return false
	}
	s.notify()

	if empty {
		s.deleteDocument()
	} else {
		s.persist(snapshot)
	}
	return true
}

// ClearAll resets the log and deletes the persisted document in the
// background. Clearing an already empty log succeeds.
func (s *Service) ClearAll() {
	s.mu.Lock()
	s.events = []storage.Event{}
	s.mu.Unlock()
	s.notify()

	s.deleteDocument()
}

// Events returns the log in insertion order.
func (s *Service) Events() []storage.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEvents(s.events)
}

// Display returns the log sorted newest-first by timestamp. Ties keep
// their insertion order.
func (s *Service) Display() []storage.Event {
	out := s.Events()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// Loading reports whether a Load is in progress.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the stored error, or nil.
func (s *Service) Err() *OpError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError discards the stored error without touching the log.
func (s *Service) ClearError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers fn to receive a snapshot after every state
// change. Callbacks run on the mutating goroutine and must not call
// back into the service.
func (s *Service) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Snapshot returns the current state as one immutable view.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until all in-flight background persistence goroutines
// finish. The CLI calls it before exiting so a write is never cut off
// mid-process.
func (s *Service) Wait() {
	s.wg.Wait()
}

// persist writes the given snapshot of the log in the background. A
// failure is stored as a SaveError; the in-memory log is never rolled
// back.
func (s *Service) persist(events []storage.Event) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.Save(context.Background(), events); err != nil {
			s.log.WithError(err).Error("saving event log failed")
			s.setErr(&OpError{Kind: SaveError, Message: err.Error()})
			return
		}
		s.log.WithField("events", len(events)).Debug("event log saved")
	}()
}

// deleteDocument removes the persisted document in the background. A
// failure is stored as a generic DeleteError.
func (s *Service) deleteDocument() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.Delete(context.Background()); err != nil {
			s.log.WithError(err).Error("deleting event document failed")
			s.setErr(&OpError{Kind: DeleteError})
			return
		}
		s.log.Debug("event document deleted")
	}()
}

func (s *Service) setErr(opErr *OpError) {
	s.mu.Lock()
	s.lastErr = opErr
	s.mu.Unlock()
	s.notify()
}

// notify delivers a fresh snapshot to every subscriber, outside the
// lock.
func (s *Service) notify() {
	s.mu.Lock()
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Service) snapshotLocked() Snapshot {
	return Snapshot{
		Events:  copyEvents(s.events),
		Loading: s.loading,
		Err:     s.lastErr,
	}
}

func copyEvents(events []storage.Event) []storage.Event {
	out := make([]storage.Event, len(events))
	copy(out, events)
	return out
}
