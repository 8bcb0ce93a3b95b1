// Package cli wires the matchdeck commands: build the static gallery
// page, view the charts in the terminal, watch the chart folders, and
// publish the generated site.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matchdeck/internal/assets"
	"matchdeck/internal/config"
	"matchdeck/internal/logging"
	"matchdeck/internal/site"
	"matchdeck/internal/telemetry"
)

// app carries the state shared by subcommands after the root command's
// setup has run.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	shutdown func(context.Context) error
}

// NewRootCmd builds the matchdeck command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "matchdeck",
		Short:         "Tabbed slideshow site for daily matchup charts",
		Long:          "matchdeck turns folders of pre-rendered matchup charts into a tabbed\nslideshow page and offers the same gallery in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Parse(v, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			// The viewer owns the terminal; keep its console quiet.
			quiet := cmd.Name() == "view"
			log, err := logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				File:   cfg.Log.File,
				Quiet:  quiet,
			})
			if err != nil {
				return err
			}
			a.log = log

			shutdown, err := telemetry.Setup(cmd.Context())
			if err != nil {
				return fmt.Errorf("setting up telemetry: %w", err)
			}
			a.shutdown = shutdown
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			_ = a.log.Sync()
			if a.shutdown != nil {
				return a.shutdown(cmd.Context())
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default matchdeck.yaml in the working directory)")
	flags.String("charts-dir", ".", "root directory holding the chart folders")
	flags.String("output", "index.html", "generated page path (relative to charts dir)")
	flags.String("title", "MLB Matchups", "page title")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	cobra.CheckErr(v.BindPFlag("charts_dir", flags.Lookup("charts-dir")))
	cobra.CheckErr(v.BindPFlag("output", flags.Lookup("output")))
	cobra.CheckErr(v.BindPFlag("title", flags.Lookup("title")))
	cobra.CheckErr(v.BindPFlag("log.level", flags.Lookup("log-level")))

	root.AddCommand(
		newBuildCmd(a),
		newViewCmd(a),
		newWatchCmd(a),
		newPublishCmd(a),
		newVersionCmd(),
	)
	return root
}

// library builds the chart library from the resolved config.
func (a *app) library() *assets.Library {
	sources := make([]assets.Source, 0, len(a.cfg.Tabs))
	for _, tab := range a.cfg.Tabs {
		sources = append(sources, assets.Source{PanelID: tab.ID, Dir: tab.Dir})
	}
	return assets.NewLibrary(a.cfg.ChartsDir, sources)
}

// builder constructs the page builder from the resolved config.
func (a *app) builder() *site.Builder {
	tabs := make([]site.Tab, 0, len(a.cfg.Tabs))
	for _, tab := range a.cfg.Tabs {
		tabs = append(tabs, site.Tab{ID: tab.ID, Label: tab.Label})
	}
	return site.NewBuilder(a.library(), site.Options{
		Title:  a.cfg.Title,
		Output: a.outputPath(),
		Tabs:   tabs,
	}, a.log)
}

// outputPath resolves the page path; a relative output lands next to
// the chart folders so the page's relative image refs work.
func (a *app) outputPath() string {
	if filepath.IsAbs(a.cfg.Output) {
		return a.cfg.Output
	}
	return filepath.Join(a.cfg.ChartsDir, a.cfg.Output)
}
