package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/devoto-app/devoto/internal/shell"
	"github.com/devoto-app/devoto/internal/ui"
)

// statusData holds the template data for status formatting.
type statusData struct {
	TodayIcon  string
	Streak     int
	StreakIcon string
	Backend    string
	HasToday   bool
}

var (
	statusTracker string
	statusHabit   string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show prompt status",
	Long: `Show tracking status for shell prompt integration: whether today has
an entry, and the current streak. Reads from cache when fresh, recomputes when
stale.

Use --env to output shell environment variable assignments.
Use --refresh to force a cache refresh.
Use --format with a Go template for custom output.`,
	Example: `  devoto status
  devoto status --env
  devoto status --tracker habit --habit prayer
  devoto status --format "{{.TodayIcon}} {{.Streak}}{{.StreakIcon}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFlag, _ := cmd.Flags().GetBool("env")
		refreshFlag, _ := cmd.Flags().GetBool("refresh")
		formatFlag, _ := cmd.Flags().GetString("format")

		// Parse cache TTL
		ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
		if err != nil {
			ttl = 5 * time.Minute
		}

		// Read or refresh cache
		cache := shell.ReadCache(appConfig.DataDir)
		if refreshFlag || !cache.IsFresh(ttl) {
			s, err := resolveStore(statusTracker, statusHabit)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			todayExists, current := shell.ComputeStatus(s)

			cache = &shell.PromptCache{
				Today:          todayExists,
				Streak:         current,
				TodayDate:      time.Now().Format("2006-01-02"),
				StorageBackend: appConfig.Storage,
				UpdatedAt:      time.Now(),
			}

			if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
				// Non-fatal: cache write failure shouldn't break the prompt
				fmt.Fprintln(os.Stderr, "Warning: could not write cache:", err)
			}
		}

		data := buildStatusData(cache)

		if envFlag {
			return outputEnv(data)
		}

		if formatFlag != "" {
			return outputTemplate(data, formatFlag)
		}

		return outputDefault(data)
	},
}

func buildStatusData(cache *shell.PromptCache) statusData {
	icon := appConfig.Shell.NoTodayIcon
	if cache.Today {
		icon = appConfig.Shell.TodayIcon
	}

	return statusData{
		TodayIcon:  icon,
		Streak:     cache.Streak,
		StreakIcon: appConfig.Shell.StreakIcon,
		Backend:    cache.StorageBackend,
		HasToday:   cache.Today,
	}
}

func outputEnv(data statusData) error {
	fmt.Printf("export DEVOTO_TODAY=%q\n", data.TodayIcon)
	fmt.Printf("export DEVOTO_STREAK=%q\n", fmt.Sprintf("%d", data.Streak))
	fmt.Printf("export DEVOTO_STREAK_ICON=%q\n", data.StreakIcon)
	if data.Backend != "" {
		fmt.Printf("export DEVOTO_BACKEND=%q\n", data.Backend)
	}
	return nil
}

func outputTemplate(data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(os.Stdout, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Println()
	return nil
}

func outputDefault(data statusData) error {
	parts := []string{ui.StatusLine(data.HasToday, data.Streak, appConfig.Shell.TodayIcon, appConfig.Shell.NoTodayIcon, appConfig.Shell.StreakIcon)}

	if appConfig.Shell.ShowBackend && data.Backend != "" {
		parts = append(parts, data.Backend)
	}

	fmt.Println(strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().Bool("env", false, "output shell environment variable assignments")
	statusCmd.Flags().Bool("refresh", false, "force cache refresh")
	statusCmd.Flags().String("format", "", "Go template format string")
	statusCmd.Flags().StringVar(&statusTracker, "tracker", "journal", "tracker to report on")
	statusCmd.Flags().StringVar(&statusHabit, "habit", "", "habit kind (required for the habit tracker)")
	rootCmd.AddCommand(statusCmd)
}
