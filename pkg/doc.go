// Package pkg provides the core libraries for amaze maze generation.
//
// # Overview
//
// Amaze generates perfect mazes with classic graph algorithms, solves them,
// and renders the result. The pkg directory is organized into five areas:
//
//  1. [maze] - Domain model (grid, cells, positions) and algorithms
//  2. [mazefile] - Serialization types for mazes and solutions
//  3. [render] - ASCII, SVG and Graphviz DOT renderers with themes
//  4. [pipeline] - Orchestration (generate → solve → render) with caching
//  5. [cache] - Pluggable byte caches (file, Redis, null)
//
// # Architecture
//
// The typical data flow through amaze:
//
//	Algorithm + Seed
//	         ↓
//	    [maze/algo] package (carve a perfect maze)
//	         ↓
//	    [maze/algo] package (solve between two rooms)
//	         ↓
//	    [render] package (themes + output formats)
//	         ↓
//	    ASCII/JSON/SVG/PNG/DOT output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Algorithm: "dfs",
//	    Width:     21,
//	    Height:    21,
//	    Solve:     true,
//	    Formats:   []string{"svg"},
//	})
//
// Supporting packages: [errors] for structured error codes shared by CLI and
// API, [observability] for optional instrumentation hooks, and [buildinfo]
// for version stamping.
package pkg
