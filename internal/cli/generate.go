package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/pipeline"
)

// generateCommand creates the generate command, the main entry point of the
// CLI. It runs the full generate → solve → render pipeline.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		startStr   string
		endStr     string
		noCache    bool
		mazeOut    string
		seed       uint64
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and render it",
		Long: `Generate a perfect maze with the selected algorithm.

Without --seed every run draws a fresh random maze. The same seed always
produces the same maze, so seeded results are reproducible and cached
locally for faster subsequent runs. Add --solve to overlay the path from
start to end (by default the top-left and bottom-right rooms).`,
		Example: `  amaze generate
  amaze generate -a prim --width 31 --height 31 --seed 7
  amaze generate --solve --show-visited -f svg -o maze.svg
  amaze generate -a astar --start 0,0 --end 20,20 -f ascii,svg,dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := applyEndpoints(&opts, startStr, endStr); err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}
			return c.runGenerate(cmd, opts, output, mazeOut, noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", opts.Algorithm, "generation algorithm: dfs, bfs, astar, prim")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "grid width in cells")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "grid height in cells")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (omitted: random; same seed, same maze)")
	cmd.Flags().BoolVar(&opts.Solve, "solve", false, "solve the maze and overlay the path")
	cmd.Flags().StringVar(&opts.Solver, "solver", "", "solving algorithm (defaults to the generator)")
	cmd.Flags().StringVar(&startStr, "start", "", "start room as x,y (implies --solve)")
	cmd.Flags().StringVar(&endStr, "end", "", "end room as x,y (implies --solve)")
	cmd.Flags().BoolVar(&opts.ShowVisited, "show-visited", false, "overlay cells visited during solving")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render theme: classic, midnight, paper")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ascii (default), json, svg, png, dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&mazeOut, "save", "", "also save the maze as JSON for later solving")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate even if cached")

	return cmd
}

// runGenerate executes the pipeline and writes the results.
func (c *CLI) runGenerate(cmd *cobra.Command, opts pipeline.Options, output, mazeOut string, noCache bool) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Generating %s maze...", opts.Algorithm))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if mazeOut != "" {
		if err := saveMaze(result, mazeOut); err != nil {
			return err
		}
		printFile(mazeOut)
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		output:    output,
		stem:      "maze",
		cacheHit:  result.CacheInfo.GenerateHit,
		stats:     result.Stats,
	}); err != nil {
		return err
	}

	if !opts.Solve {
		printNextStep("Solve it", fmt.Sprintf("%s generate -a %s --seed %d --solve", appName, result.Maze.Algorithm, result.Maze.Seed))
	}
	return nil
}

// applyEndpoints parses --start and --end into pipeline options.
func applyEndpoints(opts *pipeline.Options, startStr, endStr string) error {
	if startStr != "" {
		p, err := apperrors.ParsePosition(startStr)
		if err != nil {
			return err
		}
		opts.Start = &p
	}
	if endStr != "" {
		p, err := apperrors.ParsePosition(endStr)
		if err != nil {
			return err
		}
		opts.End = &p
	}
	return nil
}
