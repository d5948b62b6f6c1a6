package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	habitNote string
	habitDate string
)

var habitCmd = &cobra.Command{
	Use:   "habit <kind>",
	Short: "Check off a habit for today",
	Long: `Record a habit completion for today. Each habit can be checked off
once per day.

Habits: prayer, reading, fasting, service.`,
	Example: `  devoto habit prayer
  devoto habit reading --note "Romans 8"
  devoto habit fasting --date 2026-08-27`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := habitRun(os.Stdout, args[0], habitNote, habitDate); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func habitRun(w io.Writer, kindName, note, dateFlag string) error {
	kind := entry.Category(strings.ToLower(strings.TrimSpace(kindName)))
	if err := entry.ValidateCategory(entry.TrackerHabit, kind); err != nil {
		return err
	}

	s, err := registry.Habit(kind)
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

	id, err := s.Insert(entry.Entry{
		Tracker:  entry.TrackerHabit,
		Date:     day,
		Category: kind,
		Note:     note,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateDay) {
			// Checking off twice is a no-op, not a failure
			fmt.Fprintf(w, "%s is already checked off for %s.\n", kind.DisplayName(), entry.DayKey(day))
			return nil
		}
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
	habitCmd.Flags().StringVar(&habitNote, "note", "", "attach a note to the completion")
	habitCmd.Flags().StringVar(&habitDate, "date", "", "check off a past day (YYYY-MM-DD)")
	rootCmd.AddCommand(habitCmd)
}
