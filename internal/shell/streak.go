package shell

import (
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/streak"
)

// ComputeStatus derives the prompt status from one tracker's store: whether
// today has a qualifying entry and the current consecutive-day streak.
func ComputeStatus(s *store.Store) (todayExists bool, current int) {
	today := entry.NormalizeDate(time.Now())
	qualifies := streak.Qualification(s.Tracker())

	if e, ok := s.EntryForDay(today); ok && qualifies(e) {
		todayExists = true
	}
	return todayExists, streak.ForStore(s, qualifies, today).Current
}
