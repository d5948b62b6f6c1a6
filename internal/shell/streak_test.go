package shell

import (
	"testing"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
)

func TestComputeStatus(t *testing.T) {
	s, err := store.NewHabit(entry.HabitPrayer, store.Options{})
	if err != nil {
		t.Fatalf("store.NewHabit: %v", err)
	}

	todayExists, current := ComputeStatus(s)
	if todayExists || current != 0 {
		t.Errorf("empty store: got today=%v current=%d", todayExists, current)
	}

	today := entry.NormalizeDate(time.Now())
	for offset := 0; offset > -3; offset-- {
		if _, err := s.Insert(entry.Entry{
			Tracker:  entry.TrackerHabit,
			Date:     today.AddDate(0, 0, offset),
			Category: entry.HabitPrayer,
		}); err != nil {
			t.Fatalf("inserting completion: %v", err)
		}
	}

	todayExists, current = ComputeStatus(s)
	if !todayExists {
		t.Error("expected today's completion to register")
	}
	if current != 3 {
		t.Errorf("expected current streak 3, got %d", current)
	}
}

func TestComputeStatusYesterdayOnly(t *testing.T) {
	s, err := store.NewHabit(entry.HabitReading, store.Options{})
	if err != nil {
		t.Fatalf("store.NewHabit: %v", err)
	}

	yesterday := entry.NormalizeDate(time.Now()).AddDate(0, 0, -1)
	if _, err := s.Insert(entry.Entry{
		Tracker:  entry.TrackerHabit,
		Date:     yesterday,
		Category: entry.HabitReading,
	}); err != nil {
		t.Fatalf("inserting completion: %v", err)
	}

	todayExists, current := ComputeStatus(s)
	if todayExists {
		t.Error("no completion today, but today reported as done")
	}
	if current != 1 {
		t.Errorf("streak ending yesterday still counts: got %d", current)
	}
}
