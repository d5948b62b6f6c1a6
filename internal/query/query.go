// Package query evaluates filter/search descriptors against an entry store.
// Descriptors are immutable values produced by the caller and replaced
// wholesale on every input change; predicates combine with AND semantics
// only, matching search chips that narrow and never widen.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
)

// Order names a sort order for results.
type Order string

const (
	// Newest sorts date descending, ties by creation time descending.
	Newest Order = "newest"
	// Oldest sorts date ascending, ties by creation time ascending.
	Oldest Order = "oldest"
	// MostItems sorts item count descending, ties newest-first.
	MostItems Order = "most-items"
)

// ParseOrder maps a user-supplied string to an Order, defaulting to Newest.
func ParseOrder(s string) Order {
	switch Order(s) {
	case Oldest:
		return Oldest
	case MostItems:
		return MostItems
	default:
		return Newest
	}
}

// Descriptor describes the active filter/sort state. It is never mutated,
// only replaced.
type Descriptor struct {
	// Text matches case-insensitively against item text, the note, the
	// category display name, and the linked-verse reference; any one
	// field matching is sufficient.
	Text string

	// Category keeps only entries carrying the tag (entry- or item-level).
	Category entry.Category

	// FavoritesOnly keeps only favorited entries.
	FavoritesOnly bool

	// WithVerse keeps only entries carrying a verse reference.
	WithVerse bool

	// Start and End bound the entry date, inclusive, when non-nil.
	Start *time.Time
	End   *time.Time

	Sort Order
}

// Evaluate applies the descriptor to the store and returns the filtered,
// sorted result. Sorting is stable and total so identical inputs always
// render in the same order.
func Evaluate(s *store.Store, desc Descriptor) ([]entry.Entry, error) {
	var entries []entry.Entry
	var err error

	switch {
	case desc.Start != nil && desc.End != nil:
		entries, err = s.EntriesInRange(*desc.Start, *desc.End)
	case desc.Start != nil:
		entries, err = s.EntriesInRange(*desc.Start, farFuture())
	case desc.End != nil:
		entries, err = s.EntriesInRange(farPast(), *desc.End)
	default:
		entries = s.All()
	}
	if err != nil {
		return nil, err
	}

	result := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if desc.Matches(e) {
			result = append(result, e)
		}
	}

	Sort(result, desc.Sort)
	return result, nil
}

// Matches reports whether a single entry passes every predicate of the
// descriptor except the date bounds (those are applied by Evaluate's range
// read).
func (d Descriptor) Matches(e entry.Entry) bool {
	if d.FavoritesOnly && !e.Favorite {
		return false
	}
	if d.WithVerse && e.Verse == "" {
		return false
	}
	if d.Category != "" && !hasCategory(e, d.Category) {
		return false
	}
	if d.Text != "" && !matchesText(e, d.Text) {
		return false
	}
	return true
}

func hasCategory(e entry.Entry, c entry.Category) bool {
	if e.Category == c {
		return true
	}
	for _, item := range e.Items {
		if item.Category == c {
			return true
		}
	}
	return false
}

// matchesText implements the nested OR: a hit on any searchable field keeps
// the entry.
func matchesText(e entry.Entry, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(e.Note), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Verse), needle) {
		return true
	}
	if e.Category != "" && strings.Contains(strings.ToLower(e.Category.DisplayName()), needle) {
		return true
	}
	for _, item := range e.Items {
		if strings.Contains(strings.ToLower(item.Text), needle) {
			return true
		}
		if item.Category != "" && strings.Contains(strings.ToLower(item.Category.DisplayName()), needle) {
			return true
		}
	}
	return false
}

// Sort orders entries in place by the given order. Every comparison falls
// through to the entry ID, so no two distinct entries ever compare equal.
func Sort(entries []entry.Entry, order Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch order {
		case Oldest:
			if !a.Date.Equal(b.Date) {
				return a.Date.Before(b.Date)
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case MostItems:
			if a.ItemCount() != b.ItemCount() {
				return a.ItemCount() > b.ItemCount()
			}
			fallthrough
		default: // Newest
			if !a.Date.Equal(b.Date) {
				return a.Date.After(b.Date)
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})
}

// MonthGroup is one display bucket of results, keyed by the formatted month
// label of the entry date.
type MonthGroup struct {
	Label   string        `json:"label"`
	Entries []entry.Entry `json:"entries"`
}

// GroupByMonth buckets already-filtered, already-sorted entries by calendar
// month. Grouping preserves the incoming order and never changes which
// entries are present.
func GroupByMonth(entries []entry.Entry) []MonthGroup {
	var groups []MonthGroup
	index := make(map[string]int)
	for _, e := range entries {
		label := e.Date.Format("January 2006")
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

func farPast() time.Time {
	return time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local)
}

func farFuture() time.Time {
	return time.Date(2200, 1, 1, 0, 0, 0, 0, time.Local)
}
