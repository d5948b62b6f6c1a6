package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/ui"
)

var searchHabit string

var searchCmd = &cobra.Command{
	Use:   "search [tracker]",
	Short: "Search entries interactively",
	Long: `Open the interactive search UI over one tracker (journal by default).
Typing filters as you pause; toggles narrow by favorites, verse, and category.

Keys: ctrl+f favorites, ctrl+v verse, ctrl+t category, ctrl+s sort,
ctrl+r recent searches, enter opens the selected entry.`,
	Example: `  devoto search
  devoto search gratitude
  devoto search habit --habit prayer`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker := "journal"
		if len(args) > 0 {
			tracker = args[0]
		}
		s, err := resolveStore(tracker, searchHabit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return ui.RunSearch(s, tuiConfig())
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchHabit, "habit", "", "habit kind (required for the habit tracker)")
	rootCmd.AddCommand(searchCmd)
}
