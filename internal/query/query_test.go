package query

import (
	"errors"
	"testing"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func seedJournal(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(entry.TrackerJournal, store.Options{})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	seed := []entry.Entry{
		{
			Date:     day(2024, 5, 1),
			Items:    []entry.Item{{Text: "Morning prayer walk"}},
			Verse:    "Ps 23:1",
			Favorite: true,
		},
		{
			Date:  day(2024, 5, 2),
			Items: []entry.Item{{Text: "Quiet evening"}, {Text: "Read with the kids"}},
			Note:  "long day at work",
		},
		{
			Date:     day(2024, 6, 3),
			Items:    []entry.Item{{Text: "Fasting reflection"}, {Text: "walked at dawn"}, {Text: "gratitude list"}},
			Favorite: true,
			Verse:    "Rom 8:28",
		},
		{
			Date:  day(2024, 6, 10),
			Items: []entry.Item{{Text: "nothing much"}},
		},
	}
	for _, e := range seed {
		e.Tracker = entry.TrackerJournal
		if _, err := s.Insert(e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return s
}

func TestEmptyDescriptorReturnsAll(t *testing.T) {
	s := seedJournal(t)
	got, err := Evaluate(s, Descriptor{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestTextMatchesAcrossFields(t *testing.T) {
	s := seedJournal(t)
	cases := []struct {
		text string
		want int
	}{
		{"WALK", 2},     // item text, case-insensitive
		{"long day", 1}, // note
		{"rom 8", 1},    // verse reference
		{"zzz", 0},
	}
	for _, tc := range cases {
		got, err := Evaluate(s, Descriptor{Text: tc.text})
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", tc.text, err)
		}
		if len(got) != tc.want {
			t.Errorf("search %q matched %d entries, want %d", tc.text, len(got), tc.want)
		}
	}
}

func TestTextMatchesCategoryDisplayName(t *testing.T) {
	s, err := store.New(entry.TrackerMood, store.Options{})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	if _, err := s.Insert(entry.Entry{Tracker: entry.TrackerMood, Date: day(2024, 5, 1), Category: entry.MoodStruggling}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got, err := Evaluate(s, Descriptor{Text: "struggl"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("display-name search matched %d, want 1", len(got))
	}
}

func TestANDSemantics(t *testing.T) {
	s := seedJournal(t)

	// Sequential application equals the combined descriptor.
	favorites, err := Evaluate(s, Descriptor{FavoritesOnly: true})
	if err != nil {
		t.Fatalf("Evaluate favorites: %v", err)
	}
	var sequential []entry.Entry
	verseDesc := Descriptor{WithVerse: true}
	for _, e := range favorites {
		if verseDesc.Matches(e) {
			sequential = append(sequential, e)
		}
	}

	combined, err := Evaluate(s, Descriptor{FavoritesOnly: true, WithVerse: true})
	if err != nil {
		t.Fatalf("Evaluate combined: %v", err)
	}

	if len(sequential) != len(combined) {
		t.Fatalf("sequential %d != combined %d", len(sequential), len(combined))
	}
	for i := range combined {
		if combined[i].ID != sequential[i].ID {
			t.Errorf("result %d: %s != %s", i, combined[i].ID, sequential[i].ID)
		}
	}
}

func TestDateBounds(t *testing.T) {
	s := seedJournal(t)
	start, end := day(2024, 5, 1), day(2024, 5, 31)
	got, err := Evaluate(s, Descriptor{Start: &start, End: &end})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("May entries = %d, want 2", len(got))
	}

	bad := Descriptor{Start: &end, End: &start}
	if _, err := Evaluate(s, bad); !errors.Is(err, store.ErrInvalidRange) {
		t.Errorf("reversed bounds = %v, want ErrInvalidRange", err)
	}
}

func TestSortOrders(t *testing.T) {
	s := seedJournal(t)

	newest, _ := Evaluate(s, Descriptor{Sort: Newest})
	for i := 1; i < len(newest); i++ {
		if newest[i].Date.After(newest[i-1].Date) {
			t.Error("newest: not date-descending")
		}
	}

	oldest, _ := Evaluate(s, Descriptor{Sort: Oldest})
	for i := 1; i < len(oldest); i++ {
		if oldest[i].Date.Before(oldest[i-1].Date) {
			t.Error("oldest: not date-ascending")
		}
	}

	most, _ := Evaluate(s, Descriptor{Sort: MostItems})
	for i := 1; i < len(most); i++ {
		if most[i].ItemCount() > most[i-1].ItemCount() {
			t.Error("most-items: not count-descending")
		}
	}
	if most[0].ItemCount() != 3 {
		t.Errorf("most-items first entry has %d items, want 3", most[0].ItemCount())
	}
}

func TestSortReproducible(t *testing.T) {
	s := seedJournal(t)
	first, _ := Evaluate(s, Descriptor{Sort: Newest})
	for i := 0; i < 5; i++ {
		again, _ := Evaluate(s, Descriptor{Sort: Newest})
		for j := range first {
			if first[j].ID != again[j].ID {
				t.Fatalf("run %d: order diverged at index %d", i, j)
			}
		}
	}
}

func TestSortTotalOnEqualDates(t *testing.T) {
	// Ties on both date and creation time must break by ID.
	now := time.Now()
	a := entry.Entry{ID: "aaaaaaaa", Tracker: entry.TrackerJournal, Date: day(2024, 5, 1), CreatedAt: now}
	b := entry.Entry{ID: "bbbbbbbb", Tracker: entry.TrackerJournal, Date: day(2024, 5, 1), CreatedAt: now}
	entries := []entry.Entry{b, a}
	Sort(entries, Newest)
	if entries[0].ID != "aaaaaaaa" {
		t.Errorf("tie on date+createdAt should break by ID, got %s first", entries[0].ID)
	}
}

func TestGroupByMonth(t *testing.T) {
	s := seedJournal(t)
	entries, _ := Evaluate(s, Descriptor{Sort: Newest})
	groups := GroupByMonth(entries)

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Label != "June 2024" {
		t.Errorf("first group = %q, want June 2024 (newest-first input)", groups[0].Label)
	}

	total := 0
	for _, g := range groups {
		total += len(g.Entries)
	}
	if total != len(entries) {
		t.Errorf("grouping changed entry count: %d != %d", total, len(entries))
	}
}

func TestParseOrder(t *testing.T) {
	if ParseOrder("oldest") != Oldest || ParseOrder("most-items") != MostItems {
		t.Error("known orders should parse")
	}
	if ParseOrder("") != Newest || ParseOrder("bogus") != Newest {
		t.Error("unknown orders default to newest")
	}
}
