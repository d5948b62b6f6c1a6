package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/devoto-app/devoto/internal/config"
	"github.com/devoto-app/devoto/internal/editor"
	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/shell"
	"github.com/devoto-app/devoto/internal/storage"
	"github.com/devoto-app/devoto/internal/storage/markdown"
	"github.com/devoto-app/devoto/internal/storage/sqlite"
	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/ui"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	backend        storage.Backend
	registry       *store.Registry
)

var rootCmd = &cobra.Command{
	Use:   "devoto",
	Short: "A devotional activity tracking CLI",
	Long: `devoto tracks daily devotional activity: journal entries, gratitude
items, habit check-offs, and mood check-ins, with streaks and summaries
computed over calendar days.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		// Initialize storage backend
		switch appConfig.Storage {
		case "markdown":
			backend, err = markdown.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing markdown storage: %w", err)
			}
		case "sqlite":
			backend, err = sqlite.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing sqlite storage: %w", err)
			}
		default:
			return fmt.Errorf("unknown storage backend: %s", appConfig.Storage)
		}

		// Replay persisted entries into the in-memory stores. The stores
		// stay authoritative afterwards; failed writes only warn.
		registry, err = store.NewRegistry(store.Options{
			Backend: backend,
			OnPersistError: func(err error) {
				fmt.Fprintln(os.Stderr, "Warning: persistence failed:", err)
			},
		})
		if err != nil {
			return fmt.Errorf("loading entries: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if registry != nil {
			registry.Flush()
		}
		if backend != nil {
			backend.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to the streak overview
			return streakRun(os.Stdout, "", "")
		}
		journal, err := registry.Tracker(entry.TrackerJournal)
		if err != nil {
			return err
		}
		return ui.RunSearch(journal, tuiConfig())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (markdown|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// tuiConfig resolves the interactive UI configuration from app config.
func tuiConfig() ui.TUIConfig {
	return ui.TUIConfig{
		Editor:        editor.ResolveEditor(appConfig.Editor),
		MaxWidth:      appConfig.MaxWidth,
		Theme:         ui.ResolveTheme(appConfig.Theme),
		DebounceDelay: appConfig.DebounceDelay(),
		HistorySize:   appConfig.Search.HistorySize,
	}
}

// resolveStore maps a tracker name (plus a habit kind for the habit tracker)
// onto its store.
func resolveStore(trackerName, habitName string) (*store.Store, error) {
	tracker, err := entry.ParseTracker(trackerName)
	if err != nil {
		return nil, err
	}
	return registry.Resolve(tracker, entry.Category(habitName))
}

// allStores returns every store in display order: journal, gratitude, the
// habit kinds, then mood.
func allStores() []*store.Store {
	var out []*store.Store
	for _, t := range []entry.Tracker{entry.TrackerJournal, entry.TrackerGratitude} {
		if s, err := registry.Tracker(t); err == nil {
			out = append(out, s)
		}
	}
	out = append(out, registry.Habits()...)
	if s, err := registry.Tracker(entry.TrackerMood); err == nil {
		out = append(out, s)
	}
	return out
}

// storeLabel names a store for display: the tracker, plus the habit kind for
// habit stores.
func storeLabel(s *store.Store) string {
	if kind := s.Kind(); kind != "" {
		return fmt.Sprintf("%s (%s)", s.Tracker(), kind)
	}
	return string(s.Tracker())
}

// findEntry locates an entry by ID across every store.
func findEntry(id string) (*store.Store, entry.Entry, error) {
	for _, s := range allStores() {
		e, err := s.Get(id)
		if err == nil {
			return s, e, nil
		}
	}
	return nil, entry.Entry{}, fmt.Errorf("entry %s not found", id)
}

// parseDay parses a YYYY-MM-DD flag value as a local calendar day.
func parseDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", value)
	}
	return t, nil
}

// touchPromptCache drops the shell prompt cache after a write so the next
// prompt recomputes.
func touchPromptCache() {
	if appConfig != nil && appConfig.DataDir != "" {
		_ = shell.InvalidateCache(appConfig.DataDir)
	}
}
