package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/streak"
	"github.com/devoto-app/devoto/internal/ui"
)

var streakHabit string

var streakCmd = &cobra.Command{
	Use:   "streak [tracker]",
	Short: "Show consecutive-day streaks",
	Long: `Show the current and longest consecutive-day streak for one tracker,
or for every tracker when none is named. A streak counts qualifying days; it
survives until a full calendar day passes without one.`,
	Example: `  devoto streak
  devoto streak journal
  devoto streak habit --habit prayer`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := ""
		if len(args) > 0 {
			tracker = args[0]
		}
		if err := streakRun(os.Stdout, tracker, streakHabit); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

// streakJSON is the JSON shape for streak output.
type streakJSON struct {
	Tracker   string `json:"tracker"`
	Habit     string `json:"habit,omitempty"`
	Current   int    `json:"current"`
	Longest   int    `json:"longest"`
	TotalDays int    `json:"total_days"`
}

func streakRun(w io.Writer, trackerName, habitName string) error {
	var stores []*store.Store
	if trackerName == "" {
		stores = allStores()
	} else {
		s, err := resolveStore(trackerName, habitName)
		if err != nil {
			return err
		}
		stores = []*store.Store{s}
	}

	now := time.Now()
	if jsonOutput {
		out := make([]streakJSON, 0, len(stores))
		for _, s := range stores {
			result := streak.ForStore(s, streak.Qualification(s.Tracker()), now)
			out = append(out, streakJSON{
				Tracker:   string(s.Tracker()),
				Habit:     string(s.Kind()),
				Current:   result.Current,
				Longest:   result.Longest,
				TotalDays: result.TotalQualifyingDays,
			})
		}
		return ui.FormatJSON(w, out)
	}

	for i, s := range stores {
		if i > 0 {
			fmt.Fprintln(w)
		}
		result := streak.ForStore(s, streak.Qualification(s.Tracker()), now)
		ui.FormatStreak(w, storeLabel(s), result, appConfig.Shell.StreakIcon)
	}
	return nil
}

func init() {
	streakCmd.Flags().StringVar(&streakHabit, "habit", "", "habit kind (required for the habit tracker)")
	rootCmd.AddCommand(streakCmd)
}
