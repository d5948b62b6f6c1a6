package store

import (
	"errors"
	"fmt"

	"github.com/devoto-app/devoto/internal/entry"
)

// ErrHabitKindRequired is returned when a habit store is requested without
// naming which habit.
var ErrHabitKindRequired = errors.New("habit operations require a habit kind")

// Registry groups the per-tracker stores behind one handle. Journal,
// gratitude, and mood each get a single store; habits get one store per kind
// so every habit keeps its own one-entry-per-day invariant.
type Registry struct {
	trackers map[entry.Tracker]*Store
	habits   map[entry.Category]*Store
}

// NewRegistry builds stores for every tracker and habit kind, replaying each
// from the shared backend in opts.
func NewRegistry(opts Options) (*Registry, error) {
	r := &Registry{
		trackers: make(map[entry.Tracker]*Store),
		habits:   make(map[entry.Category]*Store),
	}
	for _, tracker := range []entry.Tracker{entry.TrackerJournal, entry.TrackerGratitude, entry.TrackerMood} {
		s, err := New(tracker, opts)
		if err != nil {
			return nil, fmt.Errorf("initializing %s store: %w", tracker, err)
		}
		r.trackers[tracker] = s
	}
	for _, kind := range entry.Categories(entry.TrackerHabit) {
		s, err := NewHabit(kind, opts)
		if err != nil {
			return nil, fmt.Errorf("initializing habit store %s: %w", kind, err)
		}
		r.habits[kind] = s
	}
	return r, nil
}

// Tracker returns the store for a non-habit tracker.
func (r *Registry) Tracker(t entry.Tracker) (*Store, error) {
	if t == entry.TrackerHabit {
		return nil, ErrHabitKindRequired
	}
	s, ok := r.trackers[t]
	if !ok {
		return nil, fmt.Errorf("unknown tracker: %q", t)
	}
	return s, nil
}

// Habit returns the store for one habit kind.
func (r *Registry) Habit(kind entry.Category) (*Store, error) {
	s, ok := r.habits[kind]
	if !ok {
		return nil, fmt.Errorf("unknown habit: %q", kind)
	}
	return s, nil
}

// Resolve returns the store for a tracker, using kind to pick the habit
// store when the tracker is habit.
func (r *Registry) Resolve(t entry.Tracker, kind entry.Category) (*Store, error) {
	if t == entry.TrackerHabit {
		if kind == "" {
			return nil, ErrHabitKindRequired
		}
		return r.Habit(kind)
	}
	return r.Tracker(t)
}

// Habits returns the habit stores in taxonomy order.
func (r *Registry) Habits() []*Store {
	kinds := entry.Categories(entry.TrackerHabit)
	out := make([]*Store, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, r.habits[kind])
	}
	return out
}

// Flush waits for in-flight persistence retries across every store.
func (r *Registry) Flush() {
	for _, s := range r.trackers {
		s.Flush()
	}
	for _, s := range r.habits {
		s.Flush()
	}
}
