package mazefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal encodes a maze as indented JSON.
func Marshal(m Maze) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a Maze. The document is structurally
// validated lazily, by [Maze.Grid].
func Unmarshal(data []byte) (Maze, error) {
	var m Maze
	if err := json.Unmarshal(data, &m); err != nil {
		return Maze{}, fmt.Errorf("decode maze: %w", err)
	}
	return m, nil
}

// Write encodes a maze as indented JSON to w.
func Write(m Maze, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode maze: %w", err)
	}
	return nil
}

// Read decodes a maze from r.
func Read(r io.Reader) (Maze, error) {
	var m Maze
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Maze{}, fmt.Errorf("decode maze: %w", err)
	}
	return m, nil
}

// WriteFile writes a maze to a JSON file with 0644 permissions.
func WriteFile(m Maze, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(m, f)
}

// ReadFile reads a maze from a JSON file.
func ReadFile(path string) (Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return Maze{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// MarshalSolution encodes a solution as indented JSON.
func MarshalSolution(s Solution) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalSolution decodes JSON bytes into a Solution.
func UnmarshalSolution(data []byte) (Solution, error) {
	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return Solution{}, fmt.Errorf("decode solution: %w", err)
	}
	return s, nil
}

// WriteSolutionFile writes a solution to a JSON file.
func WriteSolutionFile(s Solution, path string) error {
	data, err := MarshalSolution(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
