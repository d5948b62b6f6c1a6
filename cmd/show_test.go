package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestShowFindsEntryAcrossTrackers(t *testing.T) {
	setupTestEnv(t)
	id := insertJournalEntry(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), "quiet morning walk")

	var buf bytes.Buffer
	if err := showRun(&buf, id); err != nil {
		t.Fatalf("showRun: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Entry: "+id) || !strings.Contains(out, "quiet morning walk") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestShowUnknownID(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := showRun(&buf, "zzzzzzzz"); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestFavoriteToggles(t *testing.T) {
	setupTestEnv(t)
	id := insertJournalEntry(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), "worth keeping")

	var buf bytes.Buffer
	if err := favoriteRun(&buf, id); err != nil {
		t.Fatalf("favoriteRun: %v", err)
	}
	_, e, err := findEntry(id)
	if err != nil {
		t.Fatalf("findEntry: %v", err)
	}
	if !e.Favorite {
		t.Error("expected entry to be favorited")
	}

	if err := favoriteRun(&buf, id); err != nil {
		t.Fatalf("second favoriteRun: %v", err)
	}
	_, e, _ = findEntry(id)
	if e.Favorite {
		t.Error("expected second toggle to unfavorite")
	}
}

func TestEditVerseOnly(t *testing.T) {
	setupTestEnv(t)
	id := insertJournalEntry(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), "by the river")
	editVerse = "Phil 4:6"

	var buf bytes.Buffer
	if err := editRun(&buf, id, true); err != nil {
		t.Fatalf("editRun: %v", err)
	}
	_, e, err := findEntry(id)
	if err != nil {
		t.Fatalf("findEntry: %v", err)
	}
	if e.Verse != "Phil 4:6" {
		t.Errorf("expected verse set, got %q", e.Verse)
	}
}
