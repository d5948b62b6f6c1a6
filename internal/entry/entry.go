// Package entry provides the Entry data structure shared by every tracked
// domain (journal, gratitude, habits, mood check-ins). Entries are keyed by
// their normalized calendar day; all streak and aggregation logic operates on
// that day, never on time-of-day.
package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8

	// MaxGratitudeItems caps the number of gratitude items per day.
	MaxGratitudeItems = 3
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Tracker identifies which tracked domain an entry belongs to.
type Tracker string

const (
	TrackerJournal   Tracker = "journal"
	TrackerGratitude Tracker = "gratitude"
	TrackerHabit     Tracker = "habit"
	TrackerMood      Tracker = "mood"
)

// Trackers lists all trackers in declaration order.
var Trackers = []Tracker{TrackerJournal, TrackerGratitude, TrackerHabit, TrackerMood}

// SingleOccurrence reports whether the tracker allows at most one entry per
// (tracked thing, day) and treats the entry itself as the logged unit.
func (t Tracker) SingleOccurrence() bool {
	return t == TrackerHabit || t == TrackerMood
}

// Valid reports whether t names a known tracker.
func (t Tracker) Valid() bool {
	switch t {
	case TrackerJournal, TrackerGratitude, TrackerHabit, TrackerMood:
		return true
	}
	return false
}

// ParseTracker maps a user-supplied name to a Tracker.
func ParseTracker(s string) (Tracker, error) {
	t := Tracker(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tracker %q (want journal, gratitude, habit, or mood)", s)
	}
	return t, nil
}

// Item is one free-text payload fragment within an entry. Multi-item trackers
// (gratitude) may tag each item with its own category.
type Item struct {
	Text     string   `json:"text"`
	Category Category `json:"category,omitempty"`
}

// Entry represents one logged activity instance on a calendar day.
type Entry struct {
	ID      string  `json:"id"`
	Tracker Tracker `json:"tracker"`

	// Date is the calendar day this entry belongs to, normalized to local
	// midnight at creation time.
	Date time.Time `json:"date"`

	// Category is the entry-level tag: mood level for mood check-ins,
	// habit kind for habit completions. Empty for journal entries.
	Category Category `json:"category,omitempty"`

	// Items holds the ordered payload fragments. Empty for trackers where
	// the entry itself is the unit (a habit completion).
	Items []Item `json:"items,omitempty"`

	// Note is optional free-text reflection attached to the entry.
	Note string `json:"note,omitempty"`

	// Verse is an optional linked scripture reference, e.g. "Ps 23:1".
	Verse string `json:"verse,omitempty"`

	// Favorite marks journal entries pinned by the user.
	Favorite bool `json:"favorite,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NewID generates a new nanoid for an entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid entry ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// NormalizeDate normalizes a time.Time to midnight (00:00:00) in the local
// timezone, so that all times within one calendar day compare equal.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// DayKey formats a normalized day as its canonical YYYY-MM-DD key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Validate checks structural invariants: known tracker, normalized date,
// category/tracker agreement, and the gratitude item cap.
func (e Entry) Validate() error {
	if err := ValidateID(e.ID); err != nil {
		return err
	}
	if !e.Tracker.Valid() {
		return fmt.Errorf("unknown tracker: %q", e.Tracker)
	}
	if !e.Date.Equal(NormalizeDate(e.Date)) {
		return fmt.Errorf("entry date %s is not normalized to local midnight", e.Date)
	}
	if e.Category != "" {
		if err := ValidateCategory(e.Tracker, e.Category); err != nil {
			return err
		}
	}
	if e.Tracker == TrackerMood && e.Category == "" {
		return fmt.Errorf("mood entry requires a mood level")
	}
	if e.Tracker == TrackerHabit && e.Category == "" {
		return fmt.Errorf("habit entry requires a habit kind")
	}
	if e.Tracker == TrackerGratitude && len(e.Items) > MaxGratitudeItems {
		return fmt.Errorf("gratitude entries hold at most %d items, got %d", MaxGratitudeItems, len(e.Items))
	}
	for i, item := range e.Items {
		if strings.TrimSpace(item.Text) == "" {
			return fmt.Errorf("item %d has empty text", i)
		}
		if item.Category != "" {
			if err := ValidateCategory(e.Tracker, item.Category); err != nil {
				return err
			}
		}
	}
	return nil
}

// HasItems reports whether the entry carries at least one item.
func (e Entry) HasItems() bool {
	return len(e.Items) > 0
}

// ItemCount returns the number of payload fragments; single-occurrence
// trackers count the entry itself as one logged unit.
func (e Entry) ItemCount() int {
	if e.Tracker.SingleOccurrence() {
		return 1
	}
	return len(e.Items)
}

// Preview returns a truncated single-line preview of the entry's content.
func (e Entry) Preview(maxLen int) string {
	var parts []string
	for _, item := range e.Items {
		parts = append(parts, item.Text)
	}
	if len(parts) == 0 && e.Note != "" {
		parts = append(parts, e.Note)
	}
	if len(parts) == 0 && e.Category != "" {
		parts = append(parts, e.Category.DisplayName())
	}
	content := strings.ReplaceAll(strings.Join(parts, "; "), "\n", " ")
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen-3] + "..."
}
