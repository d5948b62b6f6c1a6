package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	thanksCategory string
	thanksDate     string
)

var thanksCmd = &cobra.Command{
	Use:   "thanks [text...]",
	Short: "Log something you are grateful for",
	Long: `Add a gratitude item to today's entry, creating the entry if none
exists yet. A day holds at most three gratitude items.

Categories: faith, family, provision, health, community, other.`,
	Example: `  devoto thanks "safe travel home"
  devoto thanks warm dinner with friends --category community`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("thanks requires text: devoto thanks \"some text\"")
		}
		if err := thanksRun(os.Stdout, strings.Join(args, " "), thanksCategory, thanksDate); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func thanksRun(w io.Writer, content, category, dateFlag string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("thanks: empty content")
	}

	item := entry.Item{Text: content}
	if category != "" {
		c := entry.Category(strings.ToLower(category))
		if err := entry.ValidateCategory(entry.TrackerGratitude, c); err != nil {
			return err
		}
		item.Category = c
	}

	s, err := registry.Tracker(entry.TrackerGratitude)
	if err != nil {
		return err
	}

	day := time.Now()
	if dateFlag != "" {
		day, err = parseDay(dateFlag)
		if err != nil {
			return err
		}
	}
	day = entry.NormalizeDate(day)

	if existing, ok := s.EntryForDay(day); ok {
		if len(existing.Items) >= entry.MaxGratitudeItems {
			return fmt.Errorf("the gratitude list for %s is full (%d items)", entry.DayKey(day), entry.MaxGratitudeItems)
		}
		updated, err := s.Update(existing.ID, func(e *entry.Entry) {
			e.Items = append(e.Items, item)
		})
		if err != nil {
			return fmt.Errorf("updating entry: %w", err)
		}
		touchPromptCache()
		if jsonOutput {
			return ui.FormatJSON(w, updated)
		}
		ui.FormatEntryUpdated(w, updated)
		return nil
	}

	id, err := s.Insert(entry.Entry{
		Tracker: entry.TrackerGratitude,
		Date:    day,
		Items:   []entry.Item{item},
	})
	if err != nil {
		return fmt.Errorf("creating entry: %w", err)
	}
	created, err := s.Get(id)
	if err != nil {
		return err
	}
	touchPromptCache()
	if jsonOutput {
		return ui.FormatJSON(w, created)
	}
	ui.FormatEntryCreated(w, created)
	return nil
}

func init() {
	thanksCmd.Flags().StringVar(&thanksCategory, "category", "", "gratitude category for the item")
	thanksCmd.Flags().StringVar(&thanksDate, "date", "", "log for a past day (YYYY-MM-DD)")
	rootCmd.AddCommand(thanksCmd)
}
