package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
)

func TestHabitCheckOff(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := habitRun(&buf, "prayer", "", ""); err != nil {
		t.Fatalf("habitRun: %v", err)
	}

	s, _ := registry.Habit(entry.HabitPrayer)
	e, ok := s.EntryForDay(entry.NormalizeDate(time.Now()))
	if !ok {
		t.Fatal("expected a completion for today")
	}
	if e.Category != entry.HabitPrayer {
		t.Errorf("expected prayer completion, got %+v", e)
	}
}

func TestHabitDuplicateDayIsNoOp(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := habitRun(&buf, "reading", "", ""); err != nil {
		t.Fatalf("first habitRun: %v", err)
	}
	buf.Reset()
	if err := habitRun(&buf, "reading", "", ""); err != nil {
		t.Fatalf("second habitRun: %v", err)
	}
	if !strings.Contains(buf.String(), "already checked off") {
		t.Errorf("expected no-op notice, got %q", buf.String())
	}
}

func TestHabitsIndependentPerKind(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := habitRun(&buf, "prayer", "", ""); err != nil {
		t.Fatalf("prayer: %v", err)
	}
	if err := habitRun(&buf, "fasting", "", ""); err != nil {
		t.Errorf("fasting on the same day should succeed: %v", err)
	}
}

func TestHabitRejectsUnknownKind(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := habitRun(&buf, "jogging", "", ""); err == nil {
		t.Error("expected error for unknown habit kind")
	}
}
