package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/query"
	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	exportHabit string
	exportFrom  string
	exportTo    string
)

var exportCmd = &cobra.Command{
	Use:   "export [tracker]",
	Short: "Export entries as Markdown",
	Long: `Write entries to stdout as a Markdown document with header statistics,
newest first. Exports every tracker unless one is named. With --json, writes
the raw entries instead, for backup or moving between backends.`,
	Example: `  devoto export > devotional.md
  devoto export journal --from 2026-01-01
  devoto export --json > backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := ""
		if len(args) > 0 {
			tracker = args[0]
		}
		if err := exportRun(os.Stdout, tracker); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

// exportDoc is the top-level JSON export format.
type exportDoc struct {
	ExportedAt time.Time     `json:"exported_at"`
	Entries    []entry.Entry `json:"entries"`
}

func exportRun(w io.Writer, trackerName string) error {
	desc := query.Descriptor{Sort: query.Newest}
	if exportFrom != "" {
		from, err := parseDay(exportFrom)
		if err != nil {
			return err
		}
		desc.Start = &from
	}
	if exportTo != "" {
		to, err := parseDay(exportTo)
		if err != nil {
			return err
		}
		desc.End = &to
	}

	label := "all trackers"
	var stores []*store.Store
	if trackerName == "" {
		stores = allStores()
	} else {
		s, err := resolveStore(trackerName, exportHabit)
		if err != nil {
			return err
		}
		stores = []*store.Store{s}
		label = storeLabel(s)
	}

	var entries []entry.Entry
	for _, s := range stores {
		matched, err := query.Evaluate(s, desc)
		if err != nil {
			return err
		}
		entries = append(entries, matched...)
	}
	// Re-sort after merging across stores
	query.Sort(entries, query.Newest)

	if jsonOutput {
		return ui.FormatJSON(w, exportDoc{ExportedAt: time.Now(), Entries: entries})
	}
	ui.FormatExport(w, label, entries)
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportHabit, "habit", "", "habit kind (required for the habit tracker)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "earliest day to include (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "latest day to include (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}
