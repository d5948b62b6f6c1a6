package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/trend"
	"github.com/devoto-app/devoto/internal/ui"
)

var trendDays int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the recent mood trend",
	Long: `Classify the mood trajectory over a recent window of check-ins as
improving, declining, or stable, with the dominant mood and positivity rate.`,
	Example: `  devoto trend
  devoto trend --days 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendDays <= 0 {
			fmt.Fprintln(os.Stderr, "Error: days must be positive")
			os.Exit(1)
		}
		if err := trendRun(os.Stdout, trendDays); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func trendRun(w io.Writer, days int) error {
	s, err := registry.Tracker(entry.TrackerMood)
	if err != nil {
		return err
	}

	today := entry.NormalizeDate(time.Now())
	entries, err := s.EntriesInRange(today.AddDate(0, 0, -(days-1)), today)
	if err != nil {
		return err
	}

	report := trend.Classify(entries)
	if jsonOutput {
		return ui.FormatJSON(w, report)
	}
	ui.FormatTrend(w, report)
	return nil
}

func init() {
	trendCmd.Flags().IntVar(&trendDays, "days", 30, "window length in days ending today")
	rootCmd.AddCommand(trendCmd)
}
