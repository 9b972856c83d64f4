package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jgrunert/amaze/pkg/cache"
	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/maze"
	"github.com/jgrunert/amaze/pkg/maze/algo"
	"github.com/jgrunert/amaze/pkg/mazefile"
	"github.com/jgrunert/amaze/pkg/observability"
	"github.com/jgrunert/amaze/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	g, generateHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "generate")
	}
	result.Grid = g
	result.Maze = mazefile.FromGrid(g, opts.Algorithm, opts.SeedValue())
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.RoomCount = g.RoomCols() * g.RoomRows()
	result.Stats.PassageCount = g.PassageCount()
	result.CacheInfo.GenerateHit = generateHit

	// Content hash for downstream cache keys and API responses
	data, err := mazefile.Marshal(result.Maze)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode maze")
	}
	result.GridHash = cache.Hash(data)

	r.Logger.Info("generated maze",
		"algorithm", opts.Algorithm,
		"width", opts.Width,
		"height", opts.Height,
		"seed", opts.SeedValue(),
		"passages", result.Stats.PassageCount,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Solve (optional)
	if opts.Solve {
		solveStart := time.Now()
		sol, solveHit, err := r.SolveWithCacheInfo(ctx, g, result.GridHash, opts)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "solve")
		}
		result.Solution = sol
		result.Stats.SolveTime = time.Since(solveStart)
		result.Stats.PathLength = sol.PathLength()
		result.Stats.VisitedCount = len(sol.Visited)
		result.CacheInfo.SolveHit = solveHit

		r.Logger.Info("solved maze",
			"algorithm", opts.Solver,
			"path_length", result.Stats.PathLength,
			"visited", result.Stats.VisitedCount,
			"duration", result.Stats.SolveTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, result.Solution, result.GridHash, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render")
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo carves a maze with caching and returns cache hit info.
// An unseeded Options draws a fresh seed during validation; callers that need
// the drawn seed should run ValidateForGenerate themselves first.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*maze.Grid, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.GridKey(opts.GridKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if m, err := mazefile.Unmarshal(data); err == nil {
				if g, err := m.Grid(); err == nil {
					observability.Cache().OnCacheHit(ctx, "grid")
					return g, true, nil
				}
			}
		}
		observability.Cache().OnCacheMiss(ctx, "grid")
	}

	// Generate
	start := time.Now()
	observability.Engine().OnGenerateStart(ctx, opts.Algorithm, opts.Width, opts.Height)
	g, err := algo.Generate(algo.ID(opts.Algorithm), opts.Width, opts.Height, opts.SeedValue())
	observability.Engine().OnGenerateComplete(ctx, opts.Algorithm, opts.Width, opts.Height, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := mazefile.Marshal(mazefile.FromGrid(g, opts.Algorithm, opts.SeedValue())); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLGrid) == nil {
			observability.Cache().OnCacheSet(ctx, "grid", len(data))
		}
	}

	return g, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*maze.Grid, error) {
	g, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, err
}

// SolveWithCacheInfo solves a grid with caching and returns cache hit info.
// gridHash must be the content hash of the serialized grid; it scopes the
// cache key to this exact maze.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, g *maze.Grid, gridHash string, opts Options) (*mazefile.Solution, bool, error) {
	if err := opts.ValidateForSolve(g); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := opts.StartOrDefault()
	end := opts.EndOrDefault(g)
	cacheKey := r.Keyer.SolveKey(gridHash, opts.SolveKeyOpts(g))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if sol, err := mazefile.UnmarshalSolution(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "solve")
				return &sol, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "solve")
	}

	solveStart := time.Now()
	observability.Engine().OnSolveStart(ctx, opts.Solver)
	res, err := algo.Solve(algo.ID(opts.Solver), g, start, end)
	var sol mazefile.Solution
	if err == nil {
		sol = mazefile.FromSolveResult(opts.Solver, start, end, res.Path, res.Visited)
	}
	observability.Engine().OnSolveComplete(ctx, opts.Solver, sol.PathLength(), len(sol.Visited), time.Since(solveStart), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := mazefile.MarshalSolution(sol); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLSolve) == nil {
			observability.Cache().OnCacheSet(ctx, "solve", len(data))
		}
	}

	return &sol, false, nil
}

// Solve is a convenience wrapper that discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, g *maze.Grid, gridHash string, opts Options) (*mazefile.Solution, error) {
	sol, _, err := r.SolveWithCacheInfo(ctx, g, gridHash, opts)
	return sol, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. sol may be nil for a bare maze.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *maze.Grid, sol *mazefile.Solution, gridHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	theme, err := opts.ResolveTheme()
	if err != nil {
		return nil, false, err
	}

	solveKey := ""
	if sol != nil {
		solveKey = r.Keyer.SolveKey(gridHash, opts.SolveKeyOpts(g))
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format, solveKey))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	renderStart := time.Now()
	observability.Engine().OnRenderStart(ctx, opts.Formats)
	rendered, err := r.renderAll(ctx, g, sol, theme, opts)
	observability.Engine().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format, solveKey))
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact) == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *maze.Grid, sol *mazefile.Solution, gridHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, sol, gridHash, opts)
	return artifacts, err
}

// renderAll produces every requested format from scratch.
func (r *Runner) renderAll(ctx context.Context, g *maze.Grid, sol *mazefile.Solution, theme render.Theme, opts Options) (map[string][]byte, error) {
	overlay := opts.overlayFor(sol)
	out := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatASCII:
			out[format] = []byte(render.ASCII(g, overlay, theme))
		case FormatJSON:
			data, err := mazefile.Marshal(mazefile.FromGrid(g, opts.Algorithm, opts.SeedValue()))
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode maze")
			}
			out[format] = data
		case FormatSVG:
			out[format] = render.SVG(g, overlay, theme)
		case FormatDOT:
			out[format] = []byte(render.ToDOT(g, overlay, theme))
		case FormatPNG:
			data, err := render.RenderPNG(ctx, g, overlay, theme)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render png")
			}
			out[format] = data
		default:
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
