package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRunHooks{}
	r.OnRunStart(ctx, "id", 3)
	r.OnRunComplete(ctx, "id", 3, 1.5, time.Second, nil)
	r.OnRenderComplete(ctx, "id", "svg", 1024, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "solution:abc")
	c.OnCacheMiss(ctx, "solution:abc")
	c.OnCacheSet(ctx, "solution:abc", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Run().(NoopRunHooks); !ok {
		t.Error("Run() should return NoopRunHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	counters := &Counters{}
	SetRunHooks(counters)
	SetCacheHooks(counters)
	if Run() != RunHooks(counters) || Cache() != CacheHooks(counters) {
		t.Error("Set*Hooks should register custom hooks")
	}

	SetRunHooks(nil)
	if Run() != RunHooks(counters) {
		t.Error("SetRunHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Run().(NoopRunHooks); !ok {
		t.Error("Reset should restore NoopRunHooks")
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	c := &Counters{}

	c.OnRunStart(ctx, "a", 1)
	c.OnRunStart(ctx, "b", 2)
	c.OnRunComplete(ctx, "a", 1, 0.5, time.Second, nil)
	c.OnRunComplete(ctx, "b", 2, 0, time.Second, errors.New("boom"))
	c.OnRenderComplete(ctx, "a", "svg", 10, time.Millisecond, nil)
	c.OnCacheHit(ctx, "k")
	c.OnCacheMiss(ctx, "k")
	c.OnCacheMiss(ctx, "k")
	c.OnCacheSet(ctx, "k", 10)

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"started", c.RunsStarted.Load(), 2},
		{"succeeded", c.RunsSucceeded.Load(), 1},
		{"failed", c.RunsFailed.Load(), 1},
		{"renders", c.Renders.Load(), 1},
		{"hits", c.CacheHits.Load(), 1},
		{"misses", c.CacheMisses.Load(), 2},
		{"sets", c.CacheSets.Load(), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestCountersForwardToLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := &Counters{Next: NewLogHooks(logger)}

	c.OnRunComplete(context.Background(), "run-1", 4, 0, 0, errors.New("under sampled"))
	c.OnCacheHit(context.Background(), "solution:xyz")

	out := buf.String()
	for _, want := range []string{"run failed", "run-1", "cache hit", "solution:xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
