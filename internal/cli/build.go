package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate the gallery page from the chart folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.builder().Build(cmd.Context())
			if err != nil {
				return err
			}
			total := 0
			for _, n := range res.Counts {
				total += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s written (%d charts across %d tabs)\n",
				res.Output, total, len(res.Counts))
			return nil
		},
	}
}
