// Package storage defines the persistence boundary behind the in-memory
// entry stores. Backends are write-through targets: the store stays
// authoritative, backends only have to replay entries at session start and
// absorb mutations afterwards.
package storage

import (
	"errors"

	"github.com/devoto-app/devoto/internal/entry"
)

// Sentinel errors for persistence operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrNotFound   = errors.New("entry not found")
	ErrValidation = errors.New("validation error")
)

// Backend persists entries for one data directory, across all trackers.
type Backend interface {
	// LoadAll returns every persisted entry for the tracker, ordered by
	// date ascending.
	LoadAll(tracker entry.Tracker) ([]entry.Entry, error)

	// Persist writes an entry, inserting or replacing by ID.
	Persist(e entry.Entry) error

	// Remove deletes the entry with the given ID. Returns ErrNotFound if
	// no such entry is persisted.
	Remove(id string) error

	// Close releases any resources held by the backend.
	Close() error
}
