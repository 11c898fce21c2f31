package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <archive> <files...>",
		Short: "Create the package archive from the built files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Pack(cmd.Context(), args[0], args[1:])
		},
	}
}
