package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matchdeck/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the page whenever the chart folders change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			builder := a.builder()
			// Build once up front so the page reflects the current
			// folders even if nothing changes while watching.
			if _, err := builder.Build(ctx); err != nil {
				return err
			}

			w := watch.New(a.library().WatchDirs(), a.cfg.Debounce, func(ctx context.Context) error {
				_, err := builder.Build(ctx)
				return err
			}, a.log)
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info("watching for chart changes", zap.String("charts_dir", a.cfg.ChartsDir))
			<-ctx.Done()
			a.log.Info("shutting down")
			return nil
		},
	}
}
