// Package pipeline provides the core maze pipeline for amaze.
//
// This package implements the complete generate → solve → render pipeline
// that can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Carve a maze grid with the selected algorithm and seed
//  2. Solve: Find a path between two rooms (optional)
//  3. Render: Produce output in various formats (ASCII, JSON, SVG, PNG, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Algorithm: "dfs",
//	    Width:     21,
//	    Height:    21,
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jgrunert/amaze/pkg/cache"
	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/maze"
	"github.com/jgrunert/amaze/pkg/maze/algo"
	"github.com/jgrunert/amaze/pkg/mazefile"
	"github.com/jgrunert/amaze/pkg/render"
)

// Default values shared by CLI and API so both entry points behave the same.
const (
	// DefaultAlgorithm is used when no algorithm is selected.
	DefaultAlgorithm = string(algo.DFS)

	// DefaultWidth is the default grid width in cells.
	DefaultWidth = 21

	// DefaultHeight is the default grid height in cells.
	DefaultHeight = 21
)

// Format constants for output formats.
const (
	FormatASCII = "ascii"
	FormatJSON  = "json"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatDOT   = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatASCII: true,
	FormatJSON:  true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatDOT:   true,
}

// Options contains all configuration for the maze pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options. Seed nil draws a fresh seed from process randomness;
	// the drawn value is recorded in the maze's provenance so runs can be
	// reproduced. An explicit zero is a valid seed.
	Algorithm string  `json:"algorithm"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	Seed      *uint64 `json:"seed,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`

	// Solve options. Start and End default to the top-left and bottom-right
	// rooms when nil.
	Solve  bool           `json:"solve,omitempty"`
	Solver string         `json:"solver,omitempty"` // defaults to Algorithm
	Start  *maze.Position `json:"start,omitempty"`
	End    *maze.Position `json:"end,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	ShowVisited bool     `json:"show_visited,omitempty"`

	// Runtime options (not serialized)
	Logger         *log.Logger  `json:"-"`
	ThemeOverrides render.Theme `json:"-"` // merged over the named theme

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the generated maze grid.
	Grid *maze.Grid

	// Maze is the serialized form of the grid.
	Maze mazefile.Maze

	// GridHash is the content hash of the serialized grid.
	GridHash string

	// Solution is the solve result, nil when solving was not requested.
	Solution *mazefile.Solution

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	PassageCount int
	PathLength   int
	VisitedCount int
	GenerateTime time.Duration
	SolveTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the grid came from cache
	SolveHit    bool // Whether the solution came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: ascii, json, svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetSolveDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for generation.
func (o *Options) ValidateForGenerate() error {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == nil {
		seed := rand.Uint64()
		o.Seed = &seed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if _, err := algo.Lookup(algo.ID(o.Algorithm)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnknownAlgorithm, err, "generator %q", o.Algorithm)
	}
	return apperrors.ValidateDimensions(o.Width, o.Height)
}

// SetSolveDefaults sets default values for solving.
func (o *Options) SetSolveDefaults() {
	if o.Solver == "" {
		o.Solver = o.Algorithm
	}
	if o.Start != nil || o.End != nil {
		o.Solve = true
	}
}

// ValidateForSolve validates solve options against a generated grid.
func (o *Options) ValidateForSolve(g *maze.Grid) error {
	o.SetSolveDefaults()
	if _, err := algo.Lookup(algo.ID(o.Solver)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnknownAlgorithm, err, "solver %q", o.Solver)
	}
	if o.Start != nil {
		if err := apperrors.ValidatePositionInGrid(g, *o.Start, "start"); err != nil {
			return err
		}
	}
	if o.End != nil {
		if err := apperrors.ValidatePositionInGrid(g, *o.End, "end"); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatASCII}
	}
	if o.Theme == "" {
		o.Theme = render.DefaultTheme
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	_, err := o.ResolveTheme()
	return err
}

// ResolveTheme looks up the named theme and applies any runtime overrides.
func (o *Options) ResolveTheme() (render.Theme, error) {
	t, err := render.LookupTheme(o.Theme)
	if err != nil {
		return render.Theme{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "resolve theme")
	}
	return t.Merge(o.ThemeOverrides), nil
}

// SeedValue returns the configured seed, or zero when none has been set or
// drawn yet.
func (o *Options) SeedValue() uint64 {
	if o.Seed != nil {
		return *o.Seed
	}
	return 0
}

// StartOrDefault returns the configured start room or the top-left room.
func (o *Options) StartOrDefault() maze.Position {
	if o.Start != nil {
		return *o.Start
	}
	return maze.Position{X: 0, Y: 0}
}

// EndOrDefault returns the configured end room or the bottom-right room.
func (o *Options) EndOrDefault(g *maze.Grid) maze.Position {
	if o.End != nil {
		return *o.End
	}
	return g.LastRoom()
}

// GridKeyOpts returns cache key options for generation.
func (o *Options) GridKeyOpts() cache.GridKeyOpts {
	return cache.GridKeyOpts{
		Algorithm: o.Algorithm,
		Width:     o.Width,
		Height:    o.Height,
		Seed:      o.SeedValue(),
	}
}

// SolveKeyOpts returns cache key options for solving on a given grid.
func (o *Options) SolveKeyOpts(g *maze.Grid) cache.SolveKeyOpts {
	start := o.StartOrDefault()
	end := o.EndOrDefault(g)
	return cache.SolveKeyOpts{
		Algorithm: o.Solver,
		StartX:    start.X,
		StartY:    start.Y,
		EndX:      end.X,
		EndY:      end.Y,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// solveKey ties the artifact to a specific solution overlay, empty when
// rendering the bare maze.
func (o *Options) ArtifactKeyOpts(format, solveKey string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Theme:       o.Theme,
		ShowVisited: o.ShowVisited,
		SolveKey:    solveKey,
	}
}

// overlayFor builds the render overlay for a solution, honoring ShowVisited.
func (o *Options) overlayFor(sol *mazefile.Solution) render.Overlay {
	if sol == nil {
		return render.Overlay{}
	}
	ov := render.Overlay{Path: sol.Path}
	if o.ShowVisited {
		ov.Visited = sol.Visited
	}
	return ov
}
