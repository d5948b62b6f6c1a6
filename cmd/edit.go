package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/editor"
	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/ui"
)

var editVerse string

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry's note in your editor",
	Long: `Open an entry's note in your configured editor. The entry's tracker,
day, and creation time never change.

Use --verse to set or replace the linked verse without opening the editor.`,
	Example: `  devoto edit a3kf9x2m
  devoto edit a3kf9x2m --verse "Phil 4:6"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verseOnly := cmd.Flags().Changed("verse")
		if err := editRun(os.Stdout, args[0], verseOnly); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func editRun(w io.Writer, id string, verseOnly bool) error {
	s, e, err := findEntry(id)
	if err != nil {
		return err
	}

	if verseOnly {
		updated, err := s.Update(id, func(e *entry.Entry) {
			e.Verse = editVerse
		})
		if err != nil {
			return err
		}
		touchPromptCache()
		if jsonOutput {
			return ui.FormatJSON(w, updated)
		}
		ui.FormatEntryUpdated(w, updated)
		return nil
	}

	editorCmd := editor.ResolveEditor(appConfig.Editor)
	content, changed, err := editor.Edit(editorCmd, e.Note)
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	if !changed {
		if jsonOutput {
			return ui.FormatJSON(w, e)
		}
		ui.FormatNoChanges(w, id)
		return nil
	}

	updated, err := s.Update(id, func(e *entry.Entry) {
		e.Note = content
	})
	if err != nil {
		return err
	}
	touchPromptCache()
	if jsonOutput {
		return ui.FormatJSON(w, updated)
	}
	ui.FormatEntryUpdated(w, updated)
	return nil
}

func init() {
	editCmd.Flags().StringVar(&editVerse, "verse", "", "set the linked verse reference")
	rootCmd.AddCommand(editCmd)
}
