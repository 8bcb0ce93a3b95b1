// Package config loads matchdeck settings from matchdeck.yaml, the
// environment (MATCHDECK_ prefix), and bound CLI flags, in viper's
// usual precedence order.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// TabConfig binds one gallery tab to its chart folder.
type TabConfig struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
	Dir   string `mapstructure:"dir"`
}

// Config is the resolved application configuration.
type Config struct {
	ChartsDir string        `mapstructure:"charts_dir"` // root holding the chart folders
	Output    string        `mapstructure:"output"`     // generated page path
	Title     string        `mapstructure:"title"`
	Remote    string        `mapstructure:"remote"`
	Branch    string        `mapstructure:"branch"`
	Debounce  time.Duration `mapstructure:"debounce"`
	Tabs      []TabConfig   `mapstructure:"tabs"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   string `mapstructure:"file"`
	} `mapstructure:"log"`
}

// DefaultTabs is the matchup gallery's tab order: today and tomorrow,
// game charts and batter-pitcher charts.
func DefaultTabs() []TabConfig {
	return []TabConfig{
		{ID: "TodayGame", Label: "Today Game Matchups", Dir: "today_game"},
		{ID: "TodayBP", Label: "Today Batter-Pitcher Matchups", Dir: "today_bp"},
		{ID: "TomorrowGame", Label: "Tomorrow Game Matchups", Dir: "tomorrow_game"},
		{ID: "TomorrowBP", Label: "Tomorrow Batter-Pitcher Matchups", Dir: "tomorrow_bp"},
	}
}

// New returns a viper instance with matchdeck's defaults and env
// binding. Callers may bind flags to it before Parse.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("charts_dir", ".")
	v.SetDefault("output", "index.html")
	v.SetDefault("title", "MLB Matchups")
	v.SetDefault("remote", "origin")
	v.SetDefault("branch", "main")
	v.SetDefault("debounce", 500*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("MATCHDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Parse reads the config file (explicit path, or matchdeck.yaml in the
// working directory if present) and resolves the final Config. A
// missing default config file is fine; an explicit path must exist.
func Parse(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("matchdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = DefaultTabs()
	}
	for i, tab := range cfg.Tabs {
		if tab.ID == "" || tab.Dir == "" {
			return Config{}, fmt.Errorf("tab %d: id and dir are required", i)
		}
		if tab.Label == "" {
			cfg.Tabs[i].Label = tab.ID
		}
	}
	return cfg, nil
}
