package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/query"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	listHabit     string
	listCategory  string
	listFrom      string
	listTo        string
	listSearch    string
	listSort      string
	listFavorites bool
	listVerse     bool
	listByMonth   bool
	listIDOnly    bool
)

var listCmd = &cobra.Command{
	Use:   "list <tracker>",
	Short: "List entries for a tracker",
	Long: `List entries for a tracker, filtered and sorted. All filters combine;
an entry must satisfy every one to appear.

Sort orders: newest (default), oldest, most-items.`,
	Example: `  devoto list journal
  devoto list journal --favorites --search prayer
  devoto list gratitude --from 2026-08-01 --to 2026-08-31
  devoto list habit --habit prayer
  devoto list journal --group-by-month --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := listRun(os.Stdout, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func listRun(w io.Writer, trackerName string) error {
	s, err := resolveStore(trackerName, listHabit)
	if err != nil {
		return err
	}

	desc := query.Descriptor{
		Text:          listSearch,
		Category:      entry.Category(listCategory),
		FavoritesOnly: listFavorites,
		WithVerse:     listVerse,
		Sort:          query.ParseOrder(listSort),
	}
	if listFrom != "" {
		from, err := parseDay(listFrom)
		if err != nil {
			return err
		}
		desc.Start = &from
	}
	if listTo != "" {
		to, err := parseDay(listTo)
		if err != nil {
			return err
		}
		desc.End = &to
	}

	entries, err := query.Evaluate(s, desc)
	if err != nil {
		return err
	}

	if listIDOnly {
		for _, e := range entries {
			fmt.Fprintln(w, e.ID)
		}
		return nil
	}

	theme := ui.ResolveTheme(appConfig.Theme)

	if listByMonth {
		groups := query.GroupByMonth(entries)
		if jsonOutput {
			return ui.FormatJSON(w, ui.BuildMonthGroups(groups))
		}
		var buf bytes.Buffer
		ui.FormatGroupedEntries(&buf, groups)
		return ui.OutputOrPage(w, buf.String(), false, theme)
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaries(entries))
	}
	var buf bytes.Buffer
	ui.FormatEntryList(&buf, entries)
	return ui.OutputOrPage(w, buf.String(), false, theme)
}

func init() {
	listCmd.Flags().StringVar(&listHabit, "habit", "", "habit kind (required for the habit tracker)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "keep only entries tagged with this category")
	listCmd.Flags().StringVar(&listFrom, "from", "", "earliest day to include (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "latest day to include (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "keep only entries matching this text")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort order (newest|oldest|most-items)")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "keep only favorited entries")
	listCmd.Flags().BoolVar(&listVerse, "verse", false, "keep only entries with a linked verse")
	listCmd.Flags().BoolVar(&listByMonth, "group-by-month", false, "group output by calendar month")
	listCmd.Flags().BoolVar(&listIDOnly, "id-only", false, "print just entry IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
