package services

import (
	"sort"
	"sync"
	"time"

	"countdown/internal/models"
	"countdown/internal/providers"
	"countdown/internal/storage/interfaces"
)

type EventStoreInterface interface {
	Load()
	Save()
	Add(event models.Event)
	Remove(indices []int)
	Move(from []int, to int)
	Replace(events []models.Event)
	Events() []models.Event
	Len() int
	IndexOf(id string) int
}

// EventStore owns the ordered event list and mirrors it to the event
// document after every mutation. Memory is authoritative: a failed save is
// logged and counted, never returned.
type EventStore struct {
	mu      sync.RWMutex
	events  []models.Event
	files   interfaces.FileManagerInterface
	images  interfaces.ImageStorageInterface
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

func NewEventStore(files interfaces.FileManagerInterface, images interfaces.ImageStorageInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) *EventStore {
	s := &EventStore{
		events:  make([]models.Event, 0),
		files:   files,
		images:  images,
		metrics: metrics,
		logger:  logger,
	}
	s.Load()
	return s
}

// Load replaces the in-memory list with the document content. A missing or
// unreadable document yields an empty list.
func (s *EventStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	events, err := s.files.LoadEvents()
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Cannot load events from %s, starting empty: %v", s.files.Path(), err)
		events = nil
	}
	if events == nil {
		events = make([]models.Event, 0)
	}
	s.events = events
	s.metrics.SetEventsTotal(len(s.events))
	s.logger.Infof(providers.TypeStore, "Loaded %d events from %s", len(s.events), s.files.Path())
}

func (s *EventStore) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save()
}

// save expects s.mu to be held, which keeps writes in mutation order.
func (s *EventStore) save() {
	start := time.Now()
	err := s.files.SaveEvents(s.events)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	s.metrics.SetEventsTotal(len(s.events))
	if err != nil {
		s.metrics.IncSaveFailures()
		s.logger.Errorf(providers.TypeStore, "Cannot save %d events to %s: %v", len(s.events), s.files.Path(), err)
		return
	}
	s.logger.Debugf(providers.TypeStore, "Saved %d events", len(s.events))
}

// Add puts event at the head of the list.
func (s *EventStore) Add(event models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]models.Event, 0, len(s.events)+1)
	events = append(events, event)
	s.events = append(events, s.events...)
	s.save()
}

// Remove deletes the events at indices of the current list. Local images
// owned by removed events are deleted best-effort.
func (s *EventStore) Remove(indices []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := s.offsets(indices, "remove")
	var orphans []string
	kept := make([]models.Event, 0, len(s.events))
	for i, e := range s.events {
		if _, ok := drop[i]; !ok {
			kept = append(kept, e)
			continue
		}
		if name, ok := e.Image.Filename(); ok {
			orphans = append(orphans, name)
		}
	}
	s.events = kept

	for _, name := range orphans {
		if err := s.images.Delete(name); err != nil {
			s.logger.Warnf(providers.TypeStore, "Cannot delete image %s: %v", name, err)
		}
	}
	s.save()
}

// Move relocates the events at from so they sit before the element that
// was at index to. Moved events keep their relative order, to is clamped to
// [0, len].
func (s *EventStore) Move(from []int, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if to < 0 {
		to = 0
	}
	if to > len(s.events) {
		to = len(s.events)
	}

	picked := s.offsets(from, "move")
	moved := make([]models.Event, 0, len(picked))
	rest := make([]models.Event, 0, len(s.events))
	insertAt := to
	for i, e := range s.events {
		if _, ok := picked[i]; ok {
			moved = append(moved, e)
			if i < to {
				insertAt--
			}
			continue
		}
		rest = append(rest, e)
	}

	events := make([]models.Event, 0, len(s.events))
	events = append(events, rest[:insertAt]...)
	events = append(events, moved...)
	events = append(events, rest[insertAt:]...)
	s.events = events
	s.save()
}

// Replace swaps in a whole list, as when recovering a quarantined document.
// Images referenced by the dropped list are left on disk.
func (s *EventStore) Replace(events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make([]models.Event, len(events))
	copy(s.events, events)
	s.logger.Infof(providers.TypeStore, "Replacing list with %d events", len(s.events))
	s.save()
}

// offsets dedupes indices and drops the ones outside the list.
func (s *EventStore) offsets(indices []int, op string) map[int]struct{} {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	set := make(map[int]struct{}, len(sorted))
	for _, i := range sorted {
		if i < 0 || i >= len(s.events) {
			s.logger.Warnf(providers.TypeStore, "Ignoring %s index %d, list has %d events", op, i, len(s.events))
			continue
		}
		set[i] = struct{}{}
	}
	return set
}

// Events returns a copy of the list.
func (s *EventStore) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// IndexOf returns -1 when no event has id.
func (s *EventStore) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
