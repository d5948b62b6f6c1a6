package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/ui"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Long:  "Permanently delete an entry. Requires confirmation unless --force is used.",
	Example: `  devoto delete a3kf9x2m
  devoto delete a3kf9x2m --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deleteRun(os.Stdout, args[0], forceDelete); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func deleteRun(w io.Writer, id string, force bool) error {
	s, e, err := findEntry(id)
	if err != nil {
		return err
	}

	if !force {
		fmt.Fprintf(w, "Entry: %s (%s, %s)\n", e.ID, e.Tracker, e.Date.Format("2006-01-02"))
		fmt.Fprintf(w, "Preview: %s\n\n", e.Preview(60))

		confirmed, err := ui.Confirm("Delete this entry? This cannot be undone.", ui.ResolveTheme(appConfig.Theme))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := s.Delete(id); err != nil {
		return err
	}
	touchPromptCache()

	if jsonOutput {
		return ui.FormatJSON(w, ui.DeleteResult{ID: id, Deleted: true})
	}
	ui.FormatEntryDeleted(w, id)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
