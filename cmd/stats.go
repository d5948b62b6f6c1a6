package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/summary"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	statsHabit  string
	statsMonth  bool
	statsOffset int
)

var statsCmd = &cobra.Command{
	Use:   "stats <tracker>",
	Short: "Show weekly or monthly statistics",
	Long: `Show item totals, active days, and the category distribution for one
tracker over a week (default) or month. Use --offset to look at past periods;
navigating past the earliest entry yields an empty period.`,
	Example: `  devoto stats gratitude
  devoto stats gratitude --offset -1
  devoto stats mood --month
  devoto stats habit --habit prayer --month --offset -2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsOffset > 0 {
			fmt.Fprintln(os.Stderr, "Error: offset must be zero or negative")
			os.Exit(1)
		}
		if err := statsRun(os.Stdout, args[0], statsHabit, statsMonth, statsOffset); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func statsRun(w io.Writer, trackerName, habitName string, month bool, offset int) error {
	s, err := resolveStore(trackerName, habitName)
	if err != nil {
		return err
	}

	now := time.Now()
	weekStart := appConfig.WeekStartDay()
	complete := summary.Completeness(s.Tracker())

	var sum summary.Summary
	if month {
		sum, err = summary.ComputeMonth(s, now, offset, complete)
	} else {
		sum, err = summary.ComputeWeek(s, now, offset, weekStart, complete)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, sum)
	}

	var buf bytes.Buffer
	ui.FormatSummary(&buf, sum)
	if !month && !summary.CanGoBack(s, now, offset-1, weekStart) {
		fmt.Fprintln(&buf, "  (no earlier history)")
	}
	return ui.OutputOrPage(w, buf.String(), false, ui.ResolveTheme(appConfig.Theme))
}

func init() {
	statsCmd.Flags().StringVar(&statsHabit, "habit", "", "habit kind (required for the habit tracker)")
	statsCmd.Flags().BoolVar(&statsMonth, "month", false, "aggregate over a calendar month instead of a week")
	statsCmd.Flags().IntVar(&statsOffset, "offset", 0, "periods back from the current one (0 = current, -1 = previous)")
	rootCmd.AddCommand(statsCmd)
}
