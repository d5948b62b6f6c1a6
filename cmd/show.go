package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a full entry",
	Long:  "Show one entry in full, with its items and rendered note.",
	Example: `  devoto show a3kf9x2m
  devoto show a3kf9x2m --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := showRun(os.Stdout, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func showRun(w io.Writer, id string) error {
	_, e, err := findEntry(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, e)
	}
	var buf bytes.Buffer
	ui.FormatEntryFull(&buf, e, appConfig.Theme.MarkdownStyle)
	return ui.OutputOrPage(w, buf.String(), false, ui.ResolveTheme(appConfig.Theme))
}

func init() {
	rootCmd.AddCommand(showCmd)
}
