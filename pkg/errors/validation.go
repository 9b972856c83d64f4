package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgrunert/amaze/pkg/maze"
)

// MaxDimension caps maze width and height. Beyond a few hundred cells per
// side, interactive rendering stops being useful and solver working sets get
// needlessly large.
const MaxDimension = 501

// ValidateDimensions validates a requested maze size at the call boundary.
// Dimensions below maze.MinDimension or above MaxDimension fail fast;
// dimensions are never clamped silently.
func ValidateDimensions(width, height int) error {
	if width < maze.MinDimension || height < maze.MinDimension {
		return New(ErrCodeInvalidDimensions,
			"maze must be at least %dx%d, got %dx%d", maze.MinDimension, maze.MinDimension, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions,
			"maze must be at most %dx%d, got %dx%d", MaxDimension, MaxDimension, width, height)
	}
	return nil
}

// ParsePosition parses a position in "x,y" form.
func ParsePosition(s string) (maze.Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return maze.Position{}, New(ErrCodeInvalidPosition, "position must be \"x,y\", got %q", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.Position{}, New(ErrCodeInvalidPosition, "position coordinates must be integers, got %q", s)
	}
	return maze.Position{X: x, Y: y}, nil
}

// ValidatePositionInGrid checks that a parsed position lies inside the grid.
func ValidatePositionInGrid(g *maze.Grid, p maze.Position, label string) error {
	if !g.InBounds(p) {
		return New(ErrCodeInvalidPosition,
			"%s %v outside %dx%d grid", label, p, g.Width(), g.Height())
	}
	return nil
}

// FormatPosition renders a position back into the "x,y" flag syntax.
func FormatPosition(p maze.Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
