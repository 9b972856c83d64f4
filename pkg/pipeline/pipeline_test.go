package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/jgrunert/amaze/pkg/cache"
	"github.com/jgrunert/amaze/pkg/maze"
)

func seedOf(v uint64) *uint64 { return &v }

func TestOptions_ValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Algorithm != "dfs" {
		t.Errorf("Algorithm = %q, want dfs", opts.Algorithm)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Seed == nil {
		t.Error("Seed = nil after validation, want a drawn seed")
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatASCII {
		t.Errorf("Formats = %v, want [ascii]", opts.Formats)
	}
	if opts.Solver != opts.Algorithm {
		t.Errorf("Solver = %q, want %q", opts.Solver, opts.Algorithm)
	}
}

func TestOptions_UnseededDrawsFreshSeed(t *testing.T) {
	var a, b Options
	if err := a.ValidateForGenerate(); err != nil {
		t.Fatal(err)
	}
	if err := b.ValidateForGenerate(); err != nil {
		t.Fatal(err)
	}
	if *a.Seed == *b.Seed {
		t.Errorf("two unseeded validations drew the same seed %d", *a.Seed)
	}
}

func TestOptions_SeedZeroIsPreserved(t *testing.T) {
	opts := Options{Seed: seedOf(0)}
	if err := opts.ValidateForGenerate(); err != nil {
		t.Fatal(err)
	}
	if *opts.Seed != 0 {
		t.Errorf("Seed = %d after validation, want explicit 0 kept", *opts.Seed)
	}
}

func TestOptions_ValidateAndSetDefaults_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown algorithm", Options{Algorithm: "kruskal"}},
		{"width too small", Options{Width: 2, Height: 9}},
		{"unknown format", Options{Formats: []string{"pdf"}}},
		{"unknown theme", Options{Theme: "neon-unicorn"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults() error = nil, want error")
			}
		})
	}
}

func TestOptions_SolveDefaults_ImpliedByEndpoints(t *testing.T) {
	opts := Options{Start: &maze.Position{X: 0, Y: 0}}
	opts.SetSolveDefaults()
	if !opts.Solve {
		t.Error("Solve = false after setting Start, want true")
	}
}

func TestRunner_Execute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Algorithm: "bfs",
		Width:     13,
		Height:    13,
		Seed:      seedOf(7),
		Solve:     true,
		Formats:   []string{FormatASCII, FormatJSON, FormatSVG, FormatDOT},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Grid == nil {
		t.Fatal("Execute() returned nil grid")
	}
	if result.GridHash == "" {
		t.Error("GridHash is empty")
	}
	for _, format := range opts.Formats {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("Artifacts[%q] is empty", format)
		}
	}

	sol := result.Solution
	if sol == nil {
		t.Fatal("Solution = nil with Solve set")
	}
	if (sol.Start != maze.Position{X: 0, Y: 0}) {
		t.Errorf("Start = %v, want origin", sol.Start)
	}
	if want := result.Grid.LastRoom(); sol.End != want {
		t.Errorf("End = %v, want %v", sol.End, want)
	}
	if len(sol.Path) == 0 {
		t.Error("Path is empty for a perfect maze")
	}
	if result.Stats.PathLength != len(sol.Path)-1 {
		t.Errorf("Stats.PathLength = %d, want %d", result.Stats.PathLength, len(sol.Path)-1)
	}
}

func TestRunner_Execute_ASCIIArtifact(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Algorithm: "dfs",
		Width:     9,
		Height:    9,
		Seed:      seedOf(3),
		Theme:     "paper",
		Formats:   []string{FormatASCII},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	art := string(result.Artifacts[FormatASCII])
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if len(lines) != 9 {
		t.Errorf("ascii artifact has %d lines, want 9", len(lines))
	}
}

func TestRunner_Execute_CacheRoundTrip(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)
	opts := Options{
		Algorithm: "prim",
		Width:     11,
		Height:    11,
		Seed:      seedOf(5),
		Solve:     true,
		Formats:   []string{FormatASCII, FormatSVG},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.SolveHit || first.CacheInfo.RenderHit {
		t.Errorf("first run cache info = %+v, want all misses", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.SolveHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v, want all hits", second.CacheInfo)
	}

	if !first.Grid.Equal(second.Grid) {
		t.Error("cached grid differs from generated grid")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached svg artifact differs from rendered artifact")
	}
}

func TestRunner_Execute_Refresh(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)
	opts := Options{Algorithm: "dfs", Width: 9, Height: 9, Seed: seedOf(2)}

	if _, err := runner.Execute(context.Background(), opts); err != nil {
		t.Fatalf("prime Execute() error = %v", err)
	}

	opts.Refresh = true
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute() error = %v", err)
	}
	if result.CacheInfo.GenerateHit {
		t.Error("GenerateHit = true with Refresh set, want regeneration")
	}
}

func TestRunner_Execute_RecordsDrawnSeed(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	first, err := runner.Execute(context.Background(), Options{
		Algorithm: "dfs", Width: 9, Height: 9,
	})
	if err != nil {
		t.Fatalf("unseeded Execute() error = %v", err)
	}

	// The drawn seed lands in the maze's provenance and replays exactly.
	second, err := runner.Execute(context.Background(), Options{
		Algorithm: "dfs", Width: 9, Height: 9, Seed: seedOf(first.Maze.Seed),
	})
	if err != nil {
		t.Fatalf("replay Execute() error = %v", err)
	}
	if !first.Grid.Equal(second.Grid) {
		t.Errorf("replaying recorded seed %d produced a different maze", first.Maze.Seed)
	}
	if second.GridHash != first.GridHash {
		t.Errorf("GridHash = %s on replay, want %s", second.GridHash, first.GridHash)
	}
}

func TestRunner_Solve_CustomEndpoints(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	start := maze.Position{X: 2, Y: 2}
	end := maze.Position{X: 8, Y: 8}
	opts := Options{
		Algorithm: "dfs",
		Width:     11,
		Height:    11,
		Seed:      seedOf(4),
		Start:     &start,
		End:       &end,
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Solution == nil {
		t.Fatal("Solution = nil, endpoints should imply solving")
	}
	if result.Solution.Start != start || result.Solution.End != end {
		t.Errorf("endpoints = %v..%v, want %v..%v",
			result.Solution.Start, result.Solution.End, start, end)
	}
}

func TestRunner_Solve_OutOfBoundsEndpoint(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Algorithm: "dfs",
		Width:     9,
		Height:    9,
		Seed:      seedOf(1),
		End:       &maze.Position{X: 99, Y: 0},
	}

	if _, err := runner.Execute(context.Background(), opts); err == nil {
		t.Error("Execute() error = nil for out-of-bounds end, want error")
	}
}
