package errors

import (
	"testing"

	"github.com/jgrunert/amaze/pkg/maze"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		width, height int
		wantErr       bool
	}{
		{3, 3, false},
		{41, 31, false},
		{501, 501, false},
		{2, 31, true},
		{31, 2, true},
		{502, 31, true},
		{0, 0, true},
	}
	for _, tt := range tests {
		err := ValidateDimensions(tt.width, tt.height)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidDimensions) {
			t.Errorf("ValidateDimensions(%d, %d) code = %q, want INVALID_DIMENSIONS", tt.width, tt.height, GetCode(err))
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    maze.Position
		wantErr bool
	}{
		{"0,0", maze.Position{}, false},
		{"12,34", maze.Position{X: 12, Y: 34}, false},
		{" 3 , 4 ", maze.Position{X: 3, Y: 4}, false},
		{"12", maze.Position{}, true},
		{"a,b", maze.Position{}, true},
		{"1,2,3", maze.Position{}, true},
		{"", maze.Position{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePosition(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidatePositionInGrid(t *testing.T) {
	g, _ := maze.New(9, 9)
	if err := ValidatePositionInGrid(g, maze.Position{X: 8, Y: 8}, "start"); err != nil {
		t.Errorf("in-bounds position rejected: %v", err)
	}
	if err := ValidatePositionInGrid(g, maze.Position{X: 9, Y: 0}, "end"); !Is(err, ErrCodeInvalidPosition) {
		t.Errorf("out-of-bounds position error = %v, want INVALID_POSITION", err)
	}
}

func TestFormatPosition_RoundTrips(t *testing.T) {
	p := maze.Position{X: 7, Y: 11}
	got, err := ParsePosition(FormatPosition(p))
	if err != nil || got != p {
		t.Errorf("round trip = %v, %v; want %v, nil", got, err, p)
	}
}
