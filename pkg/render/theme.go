package render

import (
	"fmt"
	"sort"
)

// Theme controls the glyphs and colors of rendered mazes. Glyphs feed the
// ASCII renderer, colors the SVG renderer and the terminal styles layered on
// top by the CLI.
type Theme struct {
	Name string `toml:"-"`

	// Glyphs, one per cell class. Multi-rune strings are allowed so themes
	// can use double-width blocks for square terminal cells.
	WallGlyph    string `toml:"wall_glyph"`
	PassageGlyph string `toml:"passage_glyph"`
	VisitedGlyph string `toml:"visited_glyph"`
	PathGlyph    string `toml:"path_glyph"`
	StartGlyph   string `toml:"start_glyph"`
	EndGlyph     string `toml:"end_glyph"`

	// Colors as #rrggbb, used verbatim in SVG output.
	WallColor    string `toml:"wall_color"`
	PassageColor string `toml:"passage_color"`
	VisitedColor string `toml:"visited_color"`
	PathColor    string `toml:"path_color"`
	StartColor   string `toml:"start_color"`
	EndColor     string `toml:"end_color"`
}

// builtin themes, selectable by name and extensible via config overrides.
var themes = map[string]Theme{
	"classic": {
		Name:      "classic",
		WallGlyph: "██", PassageGlyph: "  ", VisitedGlyph: "░░", PathGlyph: "▓▓", StartGlyph: "S ", EndGlyph: "E ",
		WallColor: "#1f2430", PassageColor: "#fafafa", VisitedColor: "#aed6f1", PathColor: "#f4d03f",
		StartColor: "#2ecc71", EndColor: "#e74c3c",
	},
	"midnight": {
		Name:      "midnight",
		WallGlyph: "██", PassageGlyph: "  ", VisitedGlyph: "··", PathGlyph: "◆◆", StartGlyph: "S ", EndGlyph: "E ",
		WallColor: "#0b0e14", PassageColor: "#1c2333", VisitedColor: "#3b4d73", PathColor: "#5ccfe6",
		StartColor: "#bae67e", EndColor: "#f28779",
	},
	"paper": {
		Name:      "paper",
		WallGlyph: "#", PassageGlyph: " ", VisitedGlyph: "o", PathGlyph: "*", StartGlyph: "S", EndGlyph: "E",
		WallColor: "#333333", PassageColor: "#ffffff", VisitedColor: "#cccccc", PathColor: "#666666",
		StartColor: "#000000", EndColor: "#000000",
	},
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

// LookupTheme resolves a theme name, with a descriptive error for unknown
// names.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (valid: %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames returns the builtin theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge overlays non-empty fields of override onto t. Used by the CLI to
// apply per-user TOML theme tweaks on top of a builtin.
func (t Theme) Merge(override Theme) Theme {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&t.WallGlyph, override.WallGlyph)
	merge(&t.PassageGlyph, override.PassageGlyph)
	merge(&t.VisitedGlyph, override.VisitedGlyph)
	merge(&t.PathGlyph, override.PathGlyph)
	merge(&t.StartGlyph, override.StartGlyph)
	merge(&t.EndGlyph, override.EndGlyph)
	merge(&t.WallColor, override.WallColor)
	merge(&t.PassageColor, override.PassageColor)
	merge(&t.VisitedColor, override.VisitedColor)
	merge(&t.PathColor, override.PathColor)
	merge(&t.StartColor, override.StartColor)
	merge(&t.EndColor, override.EndColor)
	return t
}
