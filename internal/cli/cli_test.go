package cli

import (
	"io"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"ascii"}},
		{"svg", []string{"svg"}},
		{"ascii,svg,png", []string{"ascii", "svg", "png"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		stem   string
		want   string
	}{
		{"", "maze", "maze"},
		{"out.svg", "maze", "out"},
		{"out/maze", "maze", "out/maze"},
		{"archive.tar", "maze", "archive.tar"}, // unknown extension kept
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.stem); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.stem, got, tt.want)
		}
	}
}

func TestTrimExt(t *testing.T) {
	if got := trimExt("dir/maze.json"); got != "dir/maze" {
		t.Errorf("trimExt(dir/maze.json) = %q, want dir/maze", got)
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "solve", "render", "algorithms", "play", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}
