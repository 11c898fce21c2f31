package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRasterizersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rasterizers",
		Short: "List the rasterizers and where they were found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListRasterizers(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
