package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jgrunert/amaze/pkg/cache"
	"github.com/jgrunert/amaze/pkg/mazefile"
	"github.com/jgrunert/amaze/pkg/pipeline"
)

// textFormats render as plain text and go to stdout when no output file is
// requested.
var textFormats = map[string]bool{
	pipeline.FormatASCII: true,
	pipeline.FormatJSON:  true,
	pipeline.FormatDOT:   true,
}

// artifactWriteParams bundles everything writeArtifacts needs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	output    string // output file (single format) or base path (multiple)
	stem      string // fallback base path when output is empty
	cacheHit  bool
	stats     pipeline.Stats
}

// writeArtifacts writes rendered outputs to stdout or files.
//
// A single text format with no --output goes to stdout so results can be
// piped. Everything else lands in files named base.format.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "" && len(p.formats) == 1 && textFormats[p.formats[0]] {
		fmt.Print(string(p.artifacts[p.formats[0]]))
		return nil
	}

	base := basePath(p.output, p.stem)
	for _, format := range p.formats {
		path := base + "." + format
		if err := os.WriteFile(path, p.artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Rendered %d file(s)", len(p.formats))
	printStats(p.stats.PassageCount, p.stats.PathLength, p.cacheHit)
	return nil
}

// saveMaze writes the serialized maze for later solving.
func saveMaze(result *pipeline.Result, path string) error {
	if err := mazefile.WriteFile(result.Maze, path); err != nil {
		return fmt.Errorf("save maze: %w", err)
	}
	return nil
}

// gridHash content-addresses a loaded maze the same way the pipeline does.
func gridHash(m mazefile.Maze) string {
	data, err := mazefile.Marshal(m)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// trimExt strips the file extension from a path.
func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
