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
	moodNote string
	moodDate string
)

var moodCmd = &cobra.Command{
	Use:   "mood <level>",
	Short: "Record today's mood check-in",
	Long: `Record one mood check-in for today. A day holds a single check-in;
use edit to change it afterwards.

Levels: great, good, okay, low, struggling.`,
	Example: `  devoto mood good
  devoto mood struggling --note "rough night"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := moodRun(os.Stdout, args[0], moodNote, moodDate); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func moodRun(w io.Writer, levelName, note, dateFlag string) error {
	level := entry.Category(strings.ToLower(strings.TrimSpace(levelName)))
	if err := entry.ValidateCategory(entry.TrackerMood, level); err != nil {
		return err
	}

	s, err := registry.Tracker(entry.TrackerMood)
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
		Tracker:  entry.TrackerMood,
		Date:     day,
		Category: level,
		Note:     note,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateDay) {
			return fmt.Errorf("a mood is already recorded for %s (use edit to change it)", entry.DayKey(day))
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
	moodCmd.Flags().StringVar(&moodNote, "note", "", "attach a note to the check-in")
	moodCmd.Flags().StringVar(&moodDate, "date", "", "record for a past day (YYYY-MM-DD)")
	rootCmd.AddCommand(moodCmd)
}
