package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Fatal("empty cache should miss")
	}
	if err := c.Set(ctx, "k", []byte("biscuits"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get = %v, %v; want hit", hit, err)
	}
	if string(data) != "biscuits" {
		t.Errorf("Get = %q, want %q", data, "biscuits")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted key should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "new", []byte("y"), time.Hour); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)

	s, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if s.Entries != 2 || s.Expired != 1 {
		t.Errorf("Stats = %+v, want 2 entries, 1 expired", s)
	}

	removed, err := c.Prune()
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("Prune removed %d, want 1", removed)
	}
	if _, hit, _ := c.Get(ctx, "new"); !hit {
		t.Error("unexpired entry should survive Prune")
	}
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	s, _ := c.Stats()
	if s.Entries != 0 {
		t.Errorf("entries after Clear = %d, want 0", s.Entries)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
}

func TestSolutionKey(t *testing.T) {
	k := NewDefaultKeyer()
	base := SolutionKeyOpts{Biscuits: 5, Width: 100, Length: 100, Iterations: 1000, Seed: 42}
	key := k.SolutionKey(base)

	if !strings.HasPrefix(key, "solution:") {
		t.Errorf("key %q lacks prefix", key)
	}
	if key != k.SolutionKey(base) {
		t.Error("SolutionKey should be deterministic")
	}

	variants := map[string]SolutionKeyOpts{
		"biscuits":   {Biscuits: 6, Width: 100, Length: 100, Iterations: 1000, Seed: 42},
		"width":      {Biscuits: 5, Width: 101, Length: 100, Iterations: 1000, Seed: 42},
		"iterations": {Biscuits: 5, Width: 100, Length: 100, Iterations: 1001, Seed: 42},
		"seed":       {Biscuits: 5, Width: 100, Length: 100, Iterations: 1000, Seed: 43},
		"schedule":   {Biscuits: 5, Width: 100, Length: 100, Iterations: 1000, Seed: 42, Schedule: "geometric"},
	}
	for name, opts := range variants {
		if k.SolutionKey(opts) == key {
			t.Errorf("changing %s should change the key", name)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := SolutionKeyOpts{Biscuits: 1, Width: 1, Length: 1, Iterations: 1}
	scoped := NewScopedKeyer(nil, "biscuits:")

	got := scoped.SolutionKey(opts)
	want := "biscuits:" + NewDefaultKeyer().SolutionKey(opts)
	if got != want {
		t.Errorf("SolutionKey = %q, want %q", got, want)
	}
}

func TestParseRedisURL(t *testing.T) {
	opts, err := ParseRedisURL("redis://:secret@localhost:6380/2")
	if err != nil {
		t.Fatalf("ParseRedisURL: %v", err)
	}
	if opts.Addr != "localhost:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("options = addr %s db %d", opts.Addr, opts.DB)
	}

	if _, err := ParseRedisURL("http://localhost"); err == nil {
		t.Error("non-redis scheme should be rejected")
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	other := errors.New("WRONGTYPE")
	if classify(other) != other {
		t.Error("non-network errors pass through")
	}
}

func setRetryDelay(t *testing.T, d time.Duration) {
	t.Helper()
	prev := RetryDelay
	RetryDelay = d
	t.Cleanup(func() { RetryDelay = prev })
}

func TestRetryWithBackoff(t *testing.T) {
	setRetryDelay(t, time.Millisecond)
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("got err=%v calls=%d, want success after 2 calls", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrCacheMiss
	})
	if !errors.Is(err, ErrCacheMiss) || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d, want 3 calls", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	setRetryDelay(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error { return Retryable(ErrNetwork) })
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
