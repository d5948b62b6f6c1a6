package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/ui"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle an entry's favorite mark",
	Example: `  devoto favorite a3kf9x2m`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := favoriteRun(os.Stdout, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func favoriteRun(w io.Writer, id string) error {
	s, _, err := findEntry(id)
	if err != nil {
		return err
	}

	updated, err := s.Update(id, func(e *entry.Entry) {
		e.Favorite = !e.Favorite
	})
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, updated)
	}
	if updated.Favorite {
		fmt.Fprintf(w, "Favorited entry %s.\n", id)
	} else {
		fmt.Fprintf(w, "Unfavorited entry %s.\n", id)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
