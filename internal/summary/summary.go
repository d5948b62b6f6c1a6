// Package summary rolls dated entries up into range-level counts and category
// distributions. There is exactly one aggregation algorithm, parameterized by
// date range; week and month views are just ranges handed to it.
package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
)

// CategoryCount is one bucket of the category distribution.
type CategoryCount struct {
	Category entry.Category `json:"category"`
	Count    int            `json:"count"`
}

// Summary is the aggregated view of a date range.
type Summary struct {
	TotalItems      int             `json:"total_items"`
	DaysWithEntries int             `json:"days_with_entries"`
	CompleteDays    *int            `json:"complete_days,omitempty"`
	Distribution    []CategoryCount `json:"distribution"`
	RangeLabel      string          `json:"range_label"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
}

// Predicate decides whether a day's entry satisfies a tracker's completeness
// notion (e.g. gratitude: all three items present).
type Predicate func(entry.Entry) bool

// GratitudeComplete is the completeness predicate for the gratitude tracker.
func GratitudeComplete(e entry.Entry) bool {
	return len(e.Items) >= entry.MaxGratitudeItems
}

// Completeness returns the standard completeness predicate for a tracker, or
// nil for trackers without a completeness notion.
func Completeness(t entry.Tracker) Predicate {
	if t == entry.TrackerGratitude {
		return GratitudeComplete
	}
	return nil
}

// Compute aggregates the store's entries over [start, end] (inclusive,
// normalized days). It holds no state between calls: computing the same range
// twice over an unchanged store yields identical results.
func Compute(s *store.Store, start, end time.Time, complete Predicate) (Summary, error) {
	entries, err := s.EntriesInRange(start, end)
	if err != nil {
		return Summary{}, err
	}

	start = entry.NormalizeDate(start)
	end = entry.NormalizeDate(end)
	sum := Summary{
		Start:      start,
		End:        end,
		RangeLabel: rangeLabel(start, end),
	}

	counts := make(map[entry.Category]int)
	daysWith := make(map[string]bool)
	completeDays := 0

	for _, e := range entries {
		units := e.ItemCount()
		sum.TotalItems += units
		if units > 0 {
			daysWith[entry.DayKey(e.Date)] = true
		}

		// Flatten logged units into category buckets. Items fall back
		// to the entry-level category; units with no category at all
		// land in the empty bucket so counts still reconcile.
		if len(e.Items) > 0 && !e.Tracker.SingleOccurrence() {
			for _, item := range e.Items {
				c := item.Category
				if c == "" {
					c = e.Category
				}
				counts[c]++
			}
		} else {
			counts[e.Category] += units
		}

		if complete != nil && complete(e) {
			completeDays++
		}
	}

	sum.DaysWithEntries = len(daysWith)
	if complete != nil {
		sum.CompleteDays = &completeDays
	}

	tracker := s.Tracker()
	for c, n := range counts {
		sum.Distribution = append(sum.Distribution, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(sum.Distribution, func(i, j int) bool {
		if sum.Distribution[i].Count != sum.Distribution[j].Count {
			return sum.Distribution[i].Count > sum.Distribution[j].Count
		}
		return entry.CategoryRank(tracker, sum.Distribution[i].Category) <
			entry.CategoryRank(tracker, sum.Distribution[j].Category)
	})

	return sum, nil
}

// WeekRange returns the [start, end] days of the week containing today,
// shifted by offset weeks (0 = this week, negative = past).
func WeekRange(today time.Time, offset int, weekStart time.Weekday) (time.Time, time.Time) {
	today = entry.NormalizeDate(today)
	back := (int(today.Weekday()) - int(weekStart) + 7) % 7
	start := today.AddDate(0, 0, -back+offset*7)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the [start, end] days of the month containing today,
// shifted by offset months.
func MonthRange(today time.Time, offset int) (time.Time, time.Time) {
	today = entry.NormalizeDate(today)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, offset, 0)
	return start, start.AddDate(0, 1, -1)
}

// ComputeWeek aggregates the week at the given offset. Navigating to a week
// that ends before the earliest stored entry yields an empty Summary rather
// than fabricating a phantom week.
func ComputeWeek(s *store.Store, today time.Time, offset int, weekStart time.Weekday, complete Predicate) (Summary, error) {
	start, end := WeekRange(today, offset, weekStart)
	if beforeHistory(s, end) {
		return emptySummary(start, end, weekLabel(start)), nil
	}
	sum, err := Compute(s, start, end, complete)
	if err != nil {
		return Summary{}, err
	}
	sum.RangeLabel = weekLabel(start)
	return sum, nil
}

// ComputeMonth aggregates the month at the given offset, with the same
// gating as ComputeWeek.
func ComputeMonth(s *store.Store, today time.Time, offset int, complete Predicate) (Summary, error) {
	start, end := MonthRange(today, offset)
	if beforeHistory(s, end) {
		return emptySummary(start, end, monthLabel(start)), nil
	}
	sum, err := Compute(s, start, end, complete)
	if err != nil {
		return Summary{}, err
	}
	sum.RangeLabel = monthLabel(start)
	return sum, nil
}

// CanGoBack reports whether the week at the given offset still overlaps
// stored history, for back-navigation gating.
func CanGoBack(s *store.Store, today time.Time, offset int, weekStart time.Weekday) bool {
	_, end := WeekRange(today, offset, weekStart)
	return !beforeHistory(s, end)
}

func beforeHistory(s *store.Store, periodEnd time.Time) bool {
	earliest, ok := s.EarliestDay()
	if !ok {
		return true
	}
	return periodEnd.Before(earliest)
}

func emptySummary(start, end time.Time, label string) Summary {
	return Summary{Start: start, End: end, RangeLabel: label}
}

func rangeLabel(start, end time.Time) string {
	if start.Equal(end) {
		return start.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func weekLabel(start time.Time) string {
	return "Week of " + start.Format("Jan 2, 2006")
}

func monthLabel(start time.Time) string {
	return start.Format("January 2006")
}
