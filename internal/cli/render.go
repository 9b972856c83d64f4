package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrunert/amaze/pkg/mazefile"
	"github.com/jgrunert/amaze/pkg/pipeline"
)

// renderCommand creates the render command for re-rendering a saved maze.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "render [maze.json]",
		Short: "Render a saved maze without solving it",
		Long: `Render a maze saved with 'generate --save'.

The maze file contains all grid information, so this step is purely about
rendering. Results are cached locally for faster subsequent runs.`,
		Example: `  amaze render maze.json -f svg
  amaze render maze.json --theme midnight -f svg,png -o out/maze`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render theme: classic, midnight, paper")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ascii (default), json, svg, png, dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the maze and renders it.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()

	m, err := mazefile.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load maze %s: %w", input, err)
	}
	g, err := m.Grid()
	if err != nil {
		return fmt.Errorf("load maze %s: %w", input, err)
	}
	opts.Algorithm = m.Algorithm
	opts.Width = m.Width
	opts.Height = m.Height
	opts.Seed = &m.Seed

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering maze...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, nil, gridHash(m), opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		output:    output,
		stem:      trimExt(input),
		cacheHit:  cacheHit,
		stats:     pipeline.Stats{PassageCount: g.PassageCount()},
	})
}
