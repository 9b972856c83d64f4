package observability

import (
	"context"
	"testing"
	"time"
)

type recordingEngineHooks struct {
	NoopEngineHooks
	generates int
	solves    int
	renders   int
}

func (h *recordingEngineHooks) OnGenerateComplete(context.Context, string, int, int, time.Duration, error) {
	h.generates++
}
func (h *recordingEngineHooks) OnSolveComplete(context.Context, string, int, int, time.Duration, error) {
	h.solves++
}
func (h *recordingEngineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.renders++
}

func TestSetEngineHooks(t *testing.T) {
	defer Reset()

	rec := &recordingEngineHooks{}
	SetEngineHooks(rec)

	ctx := context.Background()
	Engine().OnGenerateComplete(ctx, "dfs", 9, 9, time.Millisecond, nil)
	Engine().OnSolveComplete(ctx, "bfs", 10, 40, time.Millisecond, nil)
	Engine().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	if rec.generates != 1 || rec.solves != 1 || rec.renders != 1 {
		t.Errorf("recorded events = %d/%d/%d, want 1/1/1", rec.generates, rec.solves, rec.renders)
	}
}

func TestSetEngineHooks_IgnoresNil(t *testing.T) {
	defer Reset()

	SetEngineHooks(nil)
	if Engine() == nil {
		t.Error("Engine() = nil after SetEngineHooks(nil), want no-op default")
	}
}

func TestReset(t *testing.T) {
	SetEngineHooks(&recordingEngineHooks{})
	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Errorf("Engine() after Reset = %T, want NoopEngineHooks", Engine())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() after Reset = %T, want NoopCacheHooks", Cache())
	}
}
