package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ThemeConfig holds visual styling configuration. Color overrides apply on
// top of the chosen preset.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// SearchConfig holds interactive search configuration.
type SearchConfig struct {
	DebounceMS  int `mapstructure:"debounce_ms"`
	HistorySize int `mapstructure:"history_size"`
}

// ShellConfig holds shell prompt integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	TodayIcon   string `mapstructure:"today_icon"`
	NoTodayIcon string `mapstructure:"no_today_icon"`
	StreakIcon  string `mapstructure:"streak_icon"`
	ShowBackend bool   `mapstructure:"show_backend"`
}

// Config holds the application configuration.
type Config struct {
	Storage   string       `mapstructure:"storage"`
	DataDir   string       `mapstructure:"data_dir"`
	Editor    string       `mapstructure:"editor"`
	WeekStart string       `mapstructure:"week_start"`
	MaxWidth  int          `mapstructure:"max_width"`
	Theme     ThemeConfig  `mapstructure:"theme"`
	Search    SearchConfig `mapstructure:"search"`
	Shell     ShellConfig  `mapstructure:"shell"`
}

// DefaultDataDir returns the default data directory (~/.devoto/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".devoto")
	}
	return filepath.Join(home, ".devoto")
}

// WeekStartDay maps the configured week start to a weekday. Only monday and
// sunday are meaningful; anything else falls back to monday.
func (c *Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(c.WeekStart, "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// DebounceDelay returns the configured search debounce as a duration.
func (c *Config) DebounceDelay() time.Duration {
	if c.Search.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// Validate rejects configuration values the rest of the program cannot act
// on.
func (c *Config) Validate() error {
	switch c.Storage {
	case "markdown", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q (want markdown or sqlite)", c.Storage)
	}
	switch strings.ToLower(c.WeekStart) {
	case "monday", "sunday":
	default:
		return fmt.Errorf("unknown week_start %q (want monday or sunday)", c.WeekStart)
	}
	return nil
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "markdown")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("week_start", "monday")
	v.SetDefault("max_width", 100)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("search.debounce_ms", 300)
	v.SetDefault("search.history_size", 5)
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.today_icon", "✓")
	v.SetDefault("shell.no_today_icon", "✗")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.show_backend", false)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "devoto"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DEVOTO_STORAGE, DEVOTO_DATA_DIR, etc.
	v.SetEnvPrefix("DEVOTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
