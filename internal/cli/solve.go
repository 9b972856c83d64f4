package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrunert/amaze/pkg/mazefile"
	"github.com/jgrunert/amaze/pkg/pipeline"
)

// solveCommand creates the solve command for solving a previously saved
// maze.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		formatsStr  string
		output      string
		startStr    string
		endStr      string
		noCache     bool
		solutionOut string
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "solve [maze.json]",
		Short: "Solve a saved maze",
		Long: `Solve a maze saved with 'generate --save'.

The path is searched between --start and --end, which default to the
top-left and bottom-right rooms. An unreachable end is not an error; the
result simply reports no path.`,
		Example: `  amaze solve maze.json
  amaze solve maze.json --solver astar --show-visited
  amaze solve maze.json -f svg -o solved.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := applyEndpoints(&opts, startStr, endStr); err != nil {
				return err
			}
			return c.runSolve(cmd, args[0], opts, output, solutionOut, noCache)
		},
	}

	cmd.Flags().StringVar(&opts.Solver, "solver", "", "solving algorithm: dfs, bfs, astar (defaults to the maze's generator)")
	cmd.Flags().StringVar(&startStr, "start", "", "start room as x,y")
	cmd.Flags().StringVar(&endStr, "end", "", "end room as x,y")
	cmd.Flags().BoolVar(&opts.ShowVisited, "show-visited", false, "overlay cells visited during solving")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render theme: classic, midnight, paper")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ascii (default), svg, png, dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&solutionOut, "save", "", "also save the solution as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runSolve loads the maze, solves it and renders the overlay.
func (c *CLI) runSolve(cmd *cobra.Command, input string, opts pipeline.Options, output, solutionOut string, noCache bool) error {
	ctx := cmd.Context()

	m, err := mazefile.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load maze %s: %w", input, err)
	}
	g, err := m.Grid()
	if err != nil {
		return fmt.Errorf("load maze %s: %w", input, err)
	}

	// Carry the maze's provenance so cache keys and defaults line up.
	opts.Algorithm = m.Algorithm
	opts.Width = m.Width
	opts.Height = m.Height
	opts.Seed = &m.Seed
	opts.Solve = true

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	hash := gridHash(m)

	track := newProgress(loggerFromContext(ctx))
	sol, cacheHit, err := runner.SolveWithCacheInfo(ctx, g, hash, opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	if len(sol.Path) == 0 {
		printWarning("No path from %d,%d to %d,%d", sol.Start.X, sol.Start.Y, sol.End.X, sol.End.Y)
	} else {
		track.done(fmt.Sprintf("Solved with %s: %d steps, %d cells visited", sol.Algorithm, sol.PathLength(), len(sol.Visited)))
	}

	if solutionOut != "" {
		if err := mazefile.WriteSolutionFile(*sol, solutionOut); err != nil {
			return fmt.Errorf("save solution: %w", err)
		}
		printFile(solutionOut)
	}

	artifacts, _, err := runner.RenderWithCacheInfo(ctx, g, sol, hash, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		output:    output,
		stem:      trimExt(input),
		cacheHit:  cacheHit,
		stats: pipeline.Stats{
			PassageCount: g.PassageCount(),
			PathLength:   sol.PathLength(),
		},
	})
}
