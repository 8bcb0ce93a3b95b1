package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchdeck/internal/publish"
)

func newPublishCmd(a *app) *cobra.Command {
	var rebuild bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Commit and push the generated site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rebuild {
				if _, err := a.builder().Build(cmd.Context()); err != nil {
					return err
				}
			}
			p := publish.NewPublisher(a.cfg.ChartsDir, a.cfg.Remote, a.cfg.Branch, a.log)
			res, err := p.Publish(cmd.Context())
			if err != nil {
				return err
			}
			if !res.Committed {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to publish")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published to %s/%s (run %s)\n",
				a.cfg.Remote, a.cfg.Branch, res.RunID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rebuild, "rebuild", true, "rebuild the page before publishing")
	return cmd
}
