package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jgrunert/amaze/pkg/maze"
	"github.com/jgrunert/amaze/pkg/pipeline"
	"github.com/jgrunert/amaze/pkg/render"
)

// playCommand creates the play command, an animated replay of the solver.
func (c *CLI) playCommand() *cobra.Command {
	var (
		startStr, endStr string
		seed             uint64
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch a solver explore a maze in the terminal",
		Long: `Generate a maze and replay the solver's search animated in the
terminal: first the cells in visit order, then the final path.`,
		Example: `  amaze play
  amaze play -a prim --solver astar --width 31 --height 31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEndpoints(&opts, startStr, endStr); err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}
			opts.Solve = true
			opts.ShowVisited = true
			return c.runPlay(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", opts.Algorithm, "generation algorithm: dfs, bfs, astar, prim")
	cmd.Flags().StringVar(&opts.Solver, "solver", "", "solving algorithm (defaults to the generator)")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "grid width in cells")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "grid height in cells")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (omitted: random; same seed, same maze)")
	cmd.Flags().StringVar(&startStr, "start", "", "start room as x,y")
	cmd.Flags().StringVar(&endStr, "end", "", "end room as x,y")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render theme: classic, midnight, paper")

	return cmd
}

// runPlay generates, solves and hands the result to the bubbletea program.
func (c *CLI) runPlay(cmd *cobra.Command, opts pipeline.Options) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Formats = []string{pipeline.FormatASCII}
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	theme, err := opts.ResolveTheme()
	if err != nil {
		return err
	}

	model := newPlayModel(result, theme, opts.Solver)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// playTickMsg advances the animation by one frame.
type playTickMsg time.Time

const playFrameInterval = 40 * time.Millisecond

// playModel is the bubbletea model animating a solver run.
type playModel struct {
	grid    *maze.Grid
	theme   render.Theme
	solver  string
	visited []maze.Position
	path    maze.Path

	visitStep int // visited cells revealed so far
	pathStep  int // path cells revealed so far
	paused    bool
	done      bool
}

func newPlayModel(result *pipeline.Result, theme render.Theme, solver string) playModel {
	m := playModel{
		grid:   result.Grid,
		theme:  theme,
		solver: solver,
	}
	if result.Solution != nil {
		m.visited = result.Solution.Visited
		m.path = result.Solution.Path
	}
	return m
}

func playTick() tea.Cmd {
	return tea.Tick(playFrameInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m playModel) Init() tea.Cmd {
	return playTick()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.visitStep = 0
			m.pathStep = 0
			m.done = false
		}
	case playTickMsg:
		if !m.paused && !m.done {
			m.advance()
		}
		if !m.done {
			return m, playTick()
		}
	}
	return m, nil
}

// advance reveals the next visited cell, then the next path cell.
func (m *playModel) advance() {
	switch {
	case m.visitStep < len(m.visited):
		m.visitStep++
	case m.pathStep < len(m.path):
		m.pathStep++
	default:
		m.done = true
	}
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("amaze · %s solver", m.solver)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  r restart  q quit"))
	b.WriteString("\n\n")

	overlay := render.Overlay{
		Visited: m.visited[:m.visitStep],
		Path:    m.path[:m.pathStep],
	}
	b.WriteString(render.ASCII(m.grid, overlay, m.theme))
	b.WriteString("\n")

	switch {
	case m.done && len(m.path) > 0:
		b.WriteString(StyleSuccess.Render(fmt.Sprintf("Solved: %d steps, %d cells visited", len(m.path)-1, len(m.visited))))
	case m.done:
		b.WriteString(StyleWarning.Render("No path found"))
	case m.pathStep > 0:
		b.WriteString(StyleDim.Render(fmt.Sprintf("Tracing path... %d/%d", m.pathStep, len(m.path))))
	default:
		b.WriteString(StyleDim.Render(fmt.Sprintf("Exploring... %d/%d cells", m.visitStep, len(m.visited))))
	}
	b.WriteString("\n")

	return b.String()
}
