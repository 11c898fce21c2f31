package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRasterizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rasterize <input.svg> <output.png>",
		Short: "Render an SVG file to PNG with the built-in rasterizer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _ := cmd.Flags().GetInt("scale")
			return c.app.Rasterize(cmd.Context(), args[0], args[1], scale)
		},
	}
	cmd.Flags().IntP("scale", "s", 1, "Integer scale factor")
	return cmd
}
