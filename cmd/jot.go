package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	jotVerse    string
	jotNote     string
	jotFavorite bool
	jotDate     string
)

var jotCmd = &cobra.Command{
	Use:   "jot [text...]",
	Short: "Add a journal item for today",
	Long: `Add an item to today's journal entry, creating the entry if none
exists yet. A day holds one journal entry; repeated jots append items to it.`,
	Example: `  devoto jot "morning prayer answered"
  devoto jot grateful after the walk --verse "Ps 23:1"
  echo "note from pipe" | devoto jot -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string

		switch {
		case len(args) == 1 && args[0] == "-":
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			content = strings.TrimSpace(string(data))
		case len(args) > 0:
			content = strings.Join(args, " ")
		default:
			return fmt.Errorf("jot requires text: devoto jot \"some text\"")
		}

		if err := jotRun(os.Stdout, content, jotDate); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func jotRun(w io.Writer, content, dateFlag string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("jot: empty content")
	}

	s, err := registry.Tracker(entry.TrackerJournal)
	if err != nil {
		return err
	}

	day := time.Now()
	if dateFlag != "" {
		day, err = parseDay(dateFlag)
		if err != nil {
			return err
		}
	}
	day = entry.NormalizeDate(day)

	item := entry.Item{Text: content}
	if existing, ok := s.EntryForDay(day); ok {
		updated, err := s.Update(existing.ID, func(e *entry.Entry) {
			e.Items = append(e.Items, item)
			if jotVerse != "" {
				e.Verse = jotVerse
			}
			if jotNote != "" {
				e.Note = jotNote
			}
			if jotFavorite {
				e.Favorite = true
			}
		})
		if err != nil {
			return fmt.Errorf("updating entry: %w", err)
		}
		touchPromptCache()
		if jsonOutput {
			return ui.FormatJSON(w, updated)
		}
		ui.FormatEntryUpdated(w, updated)
		return nil
	}

	id, err := s.Insert(entry.Entry{
		Tracker:  entry.TrackerJournal,
		Date:     day,
		Items:    []entry.Item{item},
		Note:     jotNote,
		Verse:    jotVerse,
		Favorite: jotFavorite,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateDay) {
			return fmt.Errorf("an entry for %s already exists", entry.DayKey(day))
		}
		return fmt.Errorf("creating entry: %w", err)
	}
	created, err := s.Get(id)
	if err != nil {
		return err
	}
	touchPromptCache()
	if jsonOutput {
		return ui.FormatJSON(w, created)
	}
	ui.FormatEntryCreated(w, created)
	return nil
}

func init() {
	jotCmd.Flags().StringVar(&jotVerse, "verse", "", "link a verse reference to the entry")
	jotCmd.Flags().StringVar(&jotNote, "note", "", "attach a reflection note to the entry")
	jotCmd.Flags().BoolVar(&jotFavorite, "favorite", false, "mark the entry as a favorite")
	jotCmd.Flags().StringVar(&jotDate, "date", "", "log for a past day (YYYY-MM-DD)")
	rootCmd.AddCommand(jotCmd)
}
