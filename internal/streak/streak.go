// Package streak computes consecutive-day streaks over the set of qualifying
// calendar days. Streaks are derived values: they are recomputed from the
// store after every mutation and never cached, so they cannot drift from the
// entries that justify them.
package streak

import (
	"sort"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
)

// Streak is the derived streak state for one tracked domain.
type Streak struct {
	Current             int `json:"current"`
	Longest             int `json:"longest"`
	TotalQualifyingDays int `json:"total_qualifying_days"`
}

// Predicate decides whether an entry makes its day count toward a streak.
type Predicate func(entry.Entry) bool

// Exists qualifies any day that has an entry at all (journal, habits, mood).
func Exists(entry.Entry) bool { return true }

// HasItems qualifies days whose entry carries at least one item (gratitude).
func HasItems(e entry.Entry) bool { return e.HasItems() }

// Qualification returns the standard predicate for a tracker.
func Qualification(t entry.Tracker) Predicate {
	if t == entry.TrackerGratitude {
		return HasItems
	}
	return Exists
}

// QualifyingDays collects the distinct normalized days of entries satisfying
// the predicate.
func QualifyingDays(s *store.Store, qualifies Predicate) []time.Time {
	seen := make(map[string]time.Time)
	for _, e := range s.All() {
		if !qualifies(e) {
			continue
		}
		seen[entry.DayKey(e.Date)] = e.Date
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	return days
}

// ForStore computes the streak for a store under the given predicate, as of
// the given "today".
func ForStore(s *store.Store, qualifies Predicate, today time.Time) Streak {
	return Compute(QualifyingDays(s, qualifies), today)
}

// Compute derives the streak from a set of qualifying days. Duplicate days
// are collapsed, so double-counting is impossible regardless of input.
//
// The current streak counts consecutive qualifying days ending at today or,
// when today has no qualifying entry yet, at yesterday: a streak is only
// broken once a full day has elapsed without qualifying.
func Compute(days []time.Time, today time.Time) Streak {
	daySet := make(map[string]bool, len(days))
	distinct := make([]time.Time, 0, len(days))
	for _, d := range days {
		key := entry.DayKey(entry.NormalizeDate(d))
		if daySet[key] {
			continue
		}
		daySet[key] = true
		distinct = append(distinct, entry.NormalizeDate(d))
	}

	if len(distinct) == 0 {
		return Streak{}
	}

	today = entry.NormalizeDate(today)

	// Walk backward from today; a missing today defers to yesterday.
	current := 0
	check := today
	if !daySet[entry.DayKey(check)] {
		check = check.AddDate(0, 0, -1)
	}
	for daySet[entry.DayKey(check)] {
		current++
		check = check.AddDate(0, 0, -1)
	}

	// Longest run across history: sort distinct days and scan for
	// day-to-day deltas of exactly one.
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].Before(distinct[j]) })
	longest, run := 1, 1
	for i := 1; i < len(distinct); i++ {
		if entry.DayKey(distinct[i-1].AddDate(0, 0, 1)) == entry.DayKey(distinct[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if current > longest {
		longest = current
	}

	return Streak{
		Current:             current,
		Longest:             longest,
		TotalQualifyingDays: len(distinct),
	}
}
