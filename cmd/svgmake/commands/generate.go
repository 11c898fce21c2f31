package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/svgmake/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the build script for the source tree",
		Args:  cobra.NoArgs,
		RunE:  c.runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	opts := generateOptions(cmd)
	if opts.ListRasterizers {
		return c.app.ListRasterizers(cmd.Context(), cmd.OutOrStdout())
	}
	return c.app.Generate(cmd.Context(), opts)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", `Output file, "-" for standard output (default "Makefile")`)
	cmd.Flags().StringP("rasterizer", "r", "", "Rasterizer: auto, imagemagick, rsvg, inkscape or builtin (default \"auto\")")
	cmd.Flags().String("rasterizer-path", "", "Path to the rasterizer executable, skipping the search")
	cmd.Flags().String("sourcedir", "", `Directory holding the vector sources (default "source")`)
	cmd.Flags().String("builddir", "", `Directory receiving the rasterized images (default "build")`)
	cmd.Flags().Bool("list-rasterizers", false, "List the rasterizers and where they were found, then exit")
}

func generateOptions(cmd *cobra.Command) app.GenerateOptions {
	output, _ := cmd.Flags().GetString("output")
	rasterizer, _ := cmd.Flags().GetString("rasterizer")
	rasterizerPath, _ := cmd.Flags().GetString("rasterizer-path")
	sourceDir, _ := cmd.Flags().GetString("sourcedir")
	buildDir, _ := cmd.Flags().GetString("builddir")
	list, _ := cmd.Flags().GetBool("list-rasterizers")

	return app.GenerateOptions{
		Output:          output,
		Rasterizer:      rasterizer,
		RasterizerPath:  rasterizerPath,
		SourceDir:       sourceDir,
		BuildDir:        buildDir,
		ListRasterizers: list,
	}
}
