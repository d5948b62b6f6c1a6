package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/query"
	"github.com/devoto-app/devoto/internal/streak"
	"github.com/devoto-app/devoto/internal/summary"
	"github.com/devoto-app/devoto/internal/trend"
)

// FormatEntryCreated formats a creation confirmation message.
func FormatEntryCreated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Logged %s entry %s for %s\n", e.Tracker, e.ID, entry.DayKey(e.Date))
}

// FormatEntryUpdated formats an update confirmation message.
func FormatEntryUpdated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Updated entry %s (%s)\n", e.ID, e.ModifiedAt.Local().Format("2006-01-02 15:04"))
}

// FormatEntryDeleted formats a deletion confirmation message.
func FormatEntryDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted entry %s.\n", id)
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer, id string) {
	fmt.Fprintf(w, "No changes detected for entry %s.\n", id)
}

// FormatEntryFull formats a full entry display with metadata header. The
// markdownStyle parameter controls glamour rendering of the note body.
func FormatEntryFull(w io.Writer, e entry.Entry, markdownStyle string) {
	fmt.Fprintf(w, "Entry: %s\n", e.ID)
	fmt.Fprintf(w, "Tracker: %s\n", e.Tracker)
	fmt.Fprintf(w, "Date: %s\n", entry.DayKey(e.Date))
	if e.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", e.Category.DisplayName())
	}
	if e.Favorite {
		fmt.Fprintln(w, "Favorite: yes")
	}
	if e.Verse != "" {
		fmt.Fprintf(w, "Verse: %s\n", e.Verse)
	}
	fmt.Fprintf(w, "Created: %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Modified: %s\n", e.ModifiedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(w)

	for _, item := range e.Items {
		if item.Category != "" {
			fmt.Fprintf(w, "  - %s (%s)\n", item.Text, item.Category.DisplayName())
		} else {
			fmt.Fprintf(w, "  - %s\n", item.Text)
		}
	}
	if len(e.Items) > 0 && e.Note != "" {
		fmt.Fprintln(w)
	}
	if e.Note != "" {
		rendered := RenderMarkdownWithStyle(e.Note, 80, markdownStyle)
		fmt.Fprintln(w, rendered)
	}
}

// FormatEntryList formats a list of entries, one line each.
func FormatEntryList(w io.Writer, entries []entry.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(w, entryLine(e))
	}
}

func entryLine(e entry.Entry) string {
	marker := " "
	if e.Favorite {
		marker = "★"
	}
	return fmt.Sprintf("%s %s  %s  %s", marker, e.ID, entry.DayKey(e.Date), e.Preview(60))
}

// FormatGroupedEntries formats month-grouped entries with a header per group.
func FormatGroupedEntries(w io.Writer, groups []query.MonthGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for i, g := range groups {
		label := "entries"
		if len(g.Entries) == 1 {
			label = "entry"
		}
		fmt.Fprintf(w, "── %s (%d %s) ──────────\n", g.Label, len(g.Entries), label)
		for _, e := range g.Entries {
			fmt.Fprintf(w, "  %s\n", entryLine(e))
		}
		if i < len(groups)-1 {
			fmt.Fprintln(w)
		}
	}
}

// FormatStreak formats a streak report. The label names the tracked thing,
// e.g. "journal" or "habit (prayer)".
func FormatStreak(w io.Writer, label string, s streak.Streak, icon string) {
	if icon == "" {
		icon = "🔥"
	}
	fmt.Fprintf(w, "%s streak\n", label)
	fmt.Fprintf(w, "  current: %s %d\n", icon, s.Current)
	fmt.Fprintf(w, "  longest: %d\n", s.Longest)
	fmt.Fprintf(w, "  total days: %d\n", s.TotalQualifyingDays)
}

// FormatSummary formats a period summary with its category distribution.
func FormatSummary(w io.Writer, sum summary.Summary) {
	fmt.Fprintln(w, sum.RangeLabel)
	fmt.Fprintf(w, "  items: %d\n", sum.TotalItems)
	fmt.Fprintf(w, "  days with entries: %d\n", sum.DaysWithEntries)
	if sum.CompleteDays != nil {
		fmt.Fprintf(w, "  complete days: %d\n", *sum.CompleteDays)
	}
	if len(sum.Distribution) > 0 {
		fmt.Fprintln(w)
		for _, cc := range sum.Distribution {
			name := cc.Category.DisplayName()
			if cc.Category == "" {
				name = "(uncategorized)"
			}
			fmt.Fprintf(w, "  %-12s %s %d\n", name, strings.Repeat("▇", barWidth(cc.Count, sum.TotalItems)), cc.Count)
		}
	}
}

// barWidth scales a count into a 1..20 character bar.
func barWidth(count, total int) int {
	if total <= 0 || count <= 0 {
		return 0
	}
	w := count * 20 / total
	if w < 1 {
		w = 1
	}
	return w
}

// FormatTrend formats a mood trend report.
func FormatTrend(w io.Writer, r trend.Report) {
	if r.Entries == 0 {
		fmt.Fprintln(w, "No mood check-ins in this window.")
		return
	}
	fmt.Fprintf(w, "mood trend: %s", r.Trend)
	if r.LowConfidence {
		fmt.Fprint(w, " (low confidence)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  dominant mood: %s\n", r.DominantMood.DisplayName())
	fmt.Fprintf(w, "  positivity: %.0f%%\n", r.PositivityRate*100)
	fmt.Fprintf(w, "  check-ins: %d\n", r.Entries)
}

// FormatExport renders entries as a standalone Markdown document with header
// statistics. Entries must arrive newest-first.
func FormatExport(w io.Writer, label string, entries []entry.Entry) {
	fmt.Fprintf(w, "# devoto export: %s\n\n", label)
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format("2006-01-02"))
	if len(entries) == 0 {
		fmt.Fprintln(w, "\nNo entries.")
		return
	}

	days := make(map[string]bool)
	items := 0
	for _, e := range entries {
		days[entry.DayKey(e.Date)] = true
		items += e.ItemCount()
	}
	oldest := entries[len(entries)-1].Date
	newest := entries[0].Date
	fmt.Fprintf(w, "Entries: %d | Items: %d | Days: %d | Range: %s to %s\n",
		len(entries), items, len(days), entry.DayKey(oldest), entry.DayKey(newest))

	for _, e := range entries {
		fmt.Fprintf(w, "\n## %s %s", entry.DayKey(e.Date), e.Tracker)
		if e.Category != "" {
			fmt.Fprintf(w, ": %s", e.Category.DisplayName())
		}
		if e.Favorite {
			fmt.Fprint(w, " ★")
		}
		fmt.Fprint(w, "\n")
		if e.Verse != "" {
			fmt.Fprintf(w, "\n> %s\n", e.Verse)
		}
		if len(e.Items) > 0 {
			fmt.Fprintln(w)
			for _, item := range e.Items {
				if item.Category != "" {
					fmt.Fprintf(w, "- %s (%s)\n", item.Text, item.Category.DisplayName())
				} else {
					fmt.Fprintf(w, "- %s\n", item.Text)
				}
			}
		}
		if e.Note != "" {
			fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(e.Note))
		}
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID       string         `json:"id"`
	Tracker  entry.Tracker  `json:"tracker"`
	Date     string         `json:"date"`
	Category entry.Category `json:"category,omitempty"`
	Preview  string         `json:"preview"`
	Favorite bool           `json:"favorite,omitempty"`
	Verse    string         `json:"verse,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ToSummaries converts entries to summary format for JSON list output.
func ToSummaries(entries []entry.Entry) []EntrySummary {
	summaries := make([]EntrySummary, len(entries))
	for i, e := range entries {
		summaries[i] = EntrySummary{
			ID:         e.ID,
			Tracker:    e.Tracker,
			Date:       entry.DayKey(e.Date),
			Category:   e.Category,
			Preview:    e.Preview(60),
			Favorite:   e.Favorite,
			Verse:      e.Verse,
			CreatedAt:  e.CreatedAt,
			ModifiedAt: e.ModifiedAt,
		}
	}
	return summaries
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// MonthGroupJSON is the JSON representation of a month bucket.
type MonthGroupJSON struct {
	Month   string         `json:"month"`
	Count   int            `json:"count"`
	Entries []EntrySummary `json:"entries"`
}

// BuildMonthGroups converts query month groups for JSON output.
func BuildMonthGroups(groups []query.MonthGroup) []MonthGroupJSON {
	out := make([]MonthGroupJSON, len(groups))
	for i, g := range groups {
		out[i] = MonthGroupJSON{
			Month:   g.Label,
			Count:   len(g.Entries),
			Entries: ToSummaries(g.Entries),
		}
	}
	return out
}

// StatusLine renders the one-line prompt status used by shell integration.
func StatusLine(todayDone bool, current int, todayIcon, noTodayIcon, streakIcon string) string {
	icon := noTodayIcon
	if todayDone {
		icon = todayIcon
	}
	if current > 0 {
		return fmt.Sprintf("%s %s%d", icon, streakIcon, current)
	}
	return icon
}
