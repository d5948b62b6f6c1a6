package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
)

func TestMoodCheckIn(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := moodRun(&buf, "good", "slept well", ""); err != nil {
		t.Fatalf("moodRun: %v", err)
	}

	s, _ := registry.Tracker(entry.TrackerMood)
	e, ok := s.EntryForDay(entry.NormalizeDate(time.Now()))
	if !ok {
		t.Fatal("expected a check-in for today")
	}
	if e.Category != entry.MoodGood || e.Note != "slept well" {
		t.Errorf("unexpected check-in: %+v", e)
	}
}

func TestMoodOnePerDay(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := moodRun(&buf, "okay", "", ""); err != nil {
		t.Fatalf("first moodRun: %v", err)
	}
	err := moodRun(&buf, "great", "", "")
	if err == nil {
		t.Fatal("expected error for second check-in on the same day")
	}
	if !strings.Contains(err.Error(), "already recorded") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMoodRejectsUnknownLevel(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := moodRun(&buf, "ecstatic", "", ""); err == nil {
		t.Error("expected error for unknown mood level")
	}
}
