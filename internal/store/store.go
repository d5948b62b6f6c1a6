// Package store implements the owning in-memory container of entries for one
// tracked domain. The store is the single authority on entry state: derived
// values (streaks, summaries, trends) are always recomputed from it, and the
// persistence backend is a write-through target that never gates reads.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/storage"
)

// Sentinel errors for store operations.
var (
	ErrNotFound     = errors.New("entry not found")
	ErrDuplicateDay = errors.New("an entry already exists for that day")
	ErrInvalidRange = errors.New("invalid date range: start is after end")
)

const (
	defaultRetryAttempts  = 3
	defaultRetryBaseDelay = 250 * time.Millisecond
)

// Options configures a Store.
type Options struct {
	// Backend is the optional write-through persistence target. A nil
	// backend keeps the store purely in-memory.
	Backend storage.Backend

	// OnPersistError is invoked (possibly from a retry goroutine) when a
	// persistence attempt has exhausted its retries. The in-memory state
	// remains authoritative regardless.
	OnPersistError func(error)

	// RetryAttempts caps persistence retries after the initial failure.
	RetryAttempts int

	// RetryBaseDelay is the first retry delay; it doubles per attempt.
	RetryBaseDelay time.Duration
}

// Store owns all entries for one tracker (and, for habits, one habit kind).
// Entries are created by user input and destroyed only by explicit deletion.
type Store struct {
	tracker entry.Tracker
	kind    entry.Category // habit kind scope; empty for other trackers

	mu      sync.RWMutex
	entries map[string]entry.Entry // by ID
	byDay   map[string]string      // day key -> entry ID

	backend        storage.Backend
	onPersistError func(error)
	retryAttempts  int
	retryBaseDelay time.Duration
	retries        sync.WaitGroup
}

// New creates a store for the given tracker and replays persisted entries
// from the backend, if one is configured.
func New(tracker entry.Tracker, opts Options) (*Store, error) {
	if !tracker.Valid() {
		return nil, fmt.Errorf("unknown tracker: %q", tracker)
	}
	s := &Store{
		tracker:        tracker,
		entries:        make(map[string]entry.Entry),
		byDay:          make(map[string]string),
		backend:        opts.Backend,
		onPersistError: opts.OnPersistError,
		retryAttempts:  opts.RetryAttempts,
		retryBaseDelay: opts.RetryBaseDelay,
	}
	if s.retryAttempts <= 0 {
		s.retryAttempts = defaultRetryAttempts
	}
	if s.retryBaseDelay <= 0 {
		s.retryBaseDelay = defaultRetryBaseDelay
	}
	if s.onPersistError == nil {
		s.onPersistError = func(error) {}
	}

	if s.backend != nil {
		loaded, err := s.backend.LoadAll(tracker)
		if err != nil {
			return nil, err
		}
		for _, e := range loaded {
			s.entries[e.ID] = e
			s.byDay[entry.DayKey(e.Date)] = e.ID
		}
	}
	return s, nil
}

// NewHabit creates a store scoped to a single habit kind. Each habit kind is
// its own tracked thing and keeps its own one-entry-per-day invariant.
func NewHabit(kind entry.Category, opts Options) (*Store, error) {
	if err := entry.ValidateCategory(entry.TrackerHabit, kind); err != nil {
		return nil, err
	}
	s, err := New(entry.TrackerHabit, Options{
		OnPersistError: opts.OnPersistError,
		RetryAttempts:  opts.RetryAttempts,
		RetryBaseDelay: opts.RetryBaseDelay,
	})
	if err != nil {
		return nil, err
	}
	s.kind = kind
	s.backend = opts.Backend
	if s.backend != nil {
		persisted, err := s.backend.LoadAll(entry.TrackerHabit)
		if err != nil {
			return nil, err
		}
		for _, e := range persisted {
			if e.Category != kind {
				continue
			}
			s.entries[e.ID] = e
			s.byDay[entry.DayKey(e.Date)] = e.ID
		}
	}
	return s, nil
}

// Tracker returns the tracked domain this store owns.
func (s *Store) Tracker() entry.Tracker {
	return s.tracker
}

// Kind returns the habit kind this store is scoped to, or empty for
// non-habit stores.
func (s *Store) Kind() entry.Category {
	return s.kind
}

// Insert adds a new entry and returns its ID. Missing ID, date, and
// timestamps are filled in. Returns ErrDuplicateDay when the entry's day is
// already occupied; callers should Update the existing entry instead.
func (s *Store) Insert(e entry.Entry) (string, error) {
	now := time.Now()
	if e.ID == "" {
		id, err := entry.NewID()
		if err != nil {
			return "", err
		}
		e.ID = id
	}
	if e.Tracker == "" {
		e.Tracker = s.tracker
	}
	if s.kind != "" && e.Category == "" {
		e.Category = s.kind
	}
	if e.Date.IsZero() {
		e.Date = entry.NormalizeDate(now)
	} else {
		e.Date = entry.NormalizeDate(e.Date)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.ModifiedAt.IsZero() {
		e.ModifiedAt = e.CreatedAt
	}

	if err := s.validateOwned(e); err != nil {
		return "", err
	}

	s.mu.Lock()
	day := entry.DayKey(e.Date)
	if _, occupied := s.byDay[day]; occupied {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrDuplicateDay, day)
	}
	if _, exists := s.entries[e.ID]; exists {
		s.mu.Unlock()
		return "", fmt.Errorf("duplicate entry ID: %s", e.ID)
	}
	s.entries[e.ID] = e
	s.byDay[day] = e.ID
	s.mu.Unlock()

	s.persist(e)
	return e.ID, nil
}

// Update applies mutator to a copy of the entry and commits the result if it
// still satisfies the store's invariants. A failed update leaves the store
// unchanged. Returns ErrNotFound for unknown IDs.
func (s *Store) Update(id string, mutator func(*entry.Entry)) (entry.Entry, error) {
	s.mu.Lock()
	current, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return entry.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := cloneEntry(current)
	mutator(&updated)

	// Identity and origin are immutable.
	updated.ID = current.ID
	updated.Tracker = current.Tracker
	updated.CreatedAt = current.CreatedAt
	updated.Date = entry.NormalizeDate(updated.Date)
	updated.ModifiedAt = time.Now()

	if err := s.validateOwned(updated); err != nil {
		s.mu.Unlock()
		return entry.Entry{}, err
	}

	oldDay := entry.DayKey(current.Date)
	newDay := entry.DayKey(updated.Date)
	if oldDay != newDay {
		if _, occupied := s.byDay[newDay]; occupied {
			s.mu.Unlock()
			return entry.Entry{}, fmt.Errorf("%w: %s", ErrDuplicateDay, newDay)
		}
		delete(s.byDay, oldDay)
		s.byDay[newDay] = id
	}
	s.entries[id] = updated
	s.mu.Unlock()

	s.persist(updated)
	return updated, nil
}

// Delete removes an entry permanently. Returns ErrNotFound for unknown IDs.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.entries, id)
	delete(s.byDay, entry.DayKey(e.Date))
	s.mu.Unlock()

	s.remove(id)
	return nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return entry.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneEntry(e), nil
}

// EntriesInRange returns entries whose day falls within [start, end]
// (inclusive, normalized), ordered by date ascending with creation-time and
// ID tie-breaks so downstream computations are deterministic.
func (s *Store) EntriesInRange(start, end time.Time) ([]entry.Entry, error) {
	start = entry.NormalizeDate(start)
	end = entry.NormalizeDate(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, entry.DayKey(start), entry.DayKey(end))
	}

	s.mu.RLock()
	result := make([]entry.Entry, 0)
	for _, e := range s.entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		result = append(result, cloneEntry(e))
	}
	s.mu.RUnlock()

	sortAscending(result)
	return result, nil
}

// EntryForDay returns the entry for the given calendar day, if any.
func (s *Store) EntryForDay(day time.Time) (entry.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byDay[entry.DayKey(entry.NormalizeDate(day))]
	if !ok {
		return entry.Entry{}, false
	}
	return cloneEntry(s.entries[id]), true
}

// All returns every entry, ordered by date ascending.
func (s *Store) All() []entry.Entry {
	s.mu.RLock()
	result := make([]entry.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, cloneEntry(e))
	}
	s.mu.RUnlock()

	sortAscending(result)
	return result
}

// EarliestDay returns the oldest stored day, or false for an empty store.
func (s *Store) EarliestDay() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var earliest time.Time
	found := false
	for _, e := range s.entries {
		if !found || e.Date.Before(earliest) {
			earliest = e.Date
			found = true
		}
	}
	return earliest, found
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Flush blocks until any in-flight persistence retries have settled.
func (s *Store) Flush() {
	s.retries.Wait()
}

func (s *Store) validateOwned(e entry.Entry) error {
	if e.Tracker != s.tracker {
		return fmt.Errorf("entry tracker %q does not match store tracker %q", e.Tracker, s.tracker)
	}
	if s.kind != "" && e.Category != s.kind {
		return fmt.Errorf("entry habit kind %q does not match store kind %q", e.Category, s.kind)
	}
	return e.Validate()
}

// persist writes through to the backend. The first attempt runs inline;
// failures are retried with exponential backoff off the caller's path and
// surfaced through the error callback once attempts are exhausted.
func (s *Store) persist(e entry.Entry) {
	if s.backend == nil {
		return
	}
	err := s.backend.Persist(e)
	if err == nil {
		return
	}
	s.retryAsync(func() error { return s.backend.Persist(e) }, err)
}

func (s *Store) remove(id string) {
	if s.backend == nil {
		return
	}
	err := s.backend.Remove(id)
	if err == nil || errors.Is(err, storage.ErrNotFound) {
		return
	}
	s.retryAsync(func() error {
		err := s.backend.Remove(id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}, err)
}

func (s *Store) retryAsync(attempt func() error, firstErr error) {
	s.retries.Add(1)
	go func() {
		defer s.retries.Done()
		err := firstErr
		delay := s.retryBaseDelay
		for i := 0; i < s.retryAttempts; i++ {
			time.Sleep(delay)
			if err = attempt(); err == nil {
				return
			}
			delay *= 2
		}
		s.onPersistError(err)
	}()
}

func cloneEntry(e entry.Entry) entry.Entry {
	if e.Items != nil {
		items := make([]entry.Item, len(e.Items))
		copy(items, e.Items)
		e.Items = items
	}
	return e
}

func sortAscending(entries []entry.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
}
