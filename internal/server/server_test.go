package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jgrunert/amaze/pkg/pipeline"
)

func seedOf(v uint64) *uint64 { return &v }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := New(NewMemoryStore(), pipeline.NewRunner(nil, nil, logger), logger)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestListAlgorithms(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/algorithms")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decode[map[string][]map[string]string](t, resp)
	ids := make([]string, 0, 4)
	for _, a := range body["algorithms"] {
		ids = append(ids, a["id"])
	}
	if got := strings.Join(ids, ","); got != "dfs,bfs,astar,prim" {
		t.Errorf("algorithm ids = %s, want dfs,bfs,astar,prim", got)
	}
}

func TestCreateAndGetMaze(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/mazes", createMazeRequest{
		Algorithm: "bfs", Width: 11, Height: 11, Seed: seedOf(7),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decode[mazeResponse](t, resp)
	if created.ID == "" {
		t.Fatal("created maze has empty id")
	}
	if created.Maze.Width != 11 || len(created.Maze.Rows) != 11 {
		t.Errorf("maze size = %dx%d rows, want 11x11", created.Maze.Width, len(created.Maze.Rows))
	}

	getResp, err := http.Get(fmt.Sprintf("%s/api/mazes/%s", ts.URL, created.ID))
	if err != nil {
		t.Fatal(err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", getResp.StatusCode)
	}
	fetched := decode[mazeResponse](t, getResp)
	if fetched.Maze.Rows[0] != created.Maze.Rows[0] {
		t.Error("fetched maze differs from created maze")
	}
}

func TestCreateMaze_UnseededDrawsFreshSeed(t *testing.T) {
	ts := newTestServer(t)

	req := createMazeRequest{Algorithm: "dfs", Width: 11, Height: 11}
	first := decode[mazeResponse](t, postJSON(t, ts.URL+"/api/mazes", req))
	second := decode[mazeResponse](t, postJSON(t, ts.URL+"/api/mazes", req))

	if first.Maze.Seed == second.Maze.Seed {
		t.Errorf("two unseeded creates drew the same seed %d", first.Maze.Seed)
	}

	// The drawn seed is reported back, so the maze can be reproduced.
	replay := decode[mazeResponse](t, postJSON(t, ts.URL+"/api/mazes", createMazeRequest{
		Algorithm: "dfs", Width: 11, Height: 11, Seed: seedOf(first.Maze.Seed),
	}))
	if replay.GridHash != first.GridHash {
		t.Errorf("replaying seed %d gave hash %s, want %s",
			first.Maze.Seed, replay.GridHash, first.GridHash)
	}
}

func TestGetMaze_Rendered(t *testing.T) {
	ts := newTestServer(t)

	created := decode[mazeResponse](t, postJSON(t, ts.URL+"/api/mazes", createMazeRequest{
		Algorithm: "dfs", Width: 9, Height: 9, Seed: seedOf(3),
	}))

	resp, err := http.Get(fmt.Sprintf("%s/api/mazes/%s?format=svg", ts.URL, created.ID))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("<svg")) {
		t.Errorf("body does not look like svg: %.40q", body)
	}
}

func TestGetMaze_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/mazes/no-such-id")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	body := decode[errorResponse](t, resp)
	if body.Code != "MAZE_NOT_FOUND" {
		t.Errorf("error code = %q, want MAZE_NOT_FOUND", body.Code)
	}
}

func TestCreateMaze_Invalid(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		req  createMazeRequest
	}{
		{"bad algorithm", createMazeRequest{Algorithm: "kruskal", Width: 9, Height: 9}},
		{"bad dimensions", createMazeRequest{Algorithm: "dfs", Width: 1, Height: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/mazes", tt.req)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestSolveMaze(t *testing.T) {
	ts := newTestServer(t)

	created := decode[mazeResponse](t, postJSON(t, ts.URL+"/api/mazes", createMazeRequest{
		Algorithm: "prim", Width: 13, Height: 13, Seed: seedOf(5),
	}))

	resp := postJSON(t, fmt.Sprintf("%s/api/mazes/%s/solve", ts.URL, created.ID), solveMazeRequest{
		Algorithm: "astar",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("solve status = %d, want 200", resp.StatusCode)
	}
	solved := decode[solveMazeResponse](t, resp)
	if !solved.Found {
		t.Fatal("Found = false for a perfect maze")
	}
	if solved.PathLength != len(solved.Solution.Path)-1 {
		t.Errorf("PathLength = %d, want %d", solved.PathLength, len(solved.Solution.Path)-1)
	}
	first := solved.Solution.Path[0]
	if first.X != 0 || first.Y != 0 {
		t.Errorf("path starts at %v, want origin", first)
	}
}

func TestSolveMaze_BadEndpoint(t *testing.T) {
	ts := newTestServer(t)

	created := decode[mazeResponse](t, postJSON(t, ts.URL+"/api/mazes", createMazeRequest{
		Algorithm: "dfs", Width: 9, Height: 9, Seed: seedOf(1),
	}))

	resp := postJSON(t, fmt.Sprintf("%s/api/mazes/%s/solve", ts.URL, created.ID), map[string]any{
		"start": map[string]int{"x": -1, "y": 0},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
