package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nathaniel-may/biscuit-packing/pkg/cache"
	"github.com/nathaniel-may/biscuit-packing/pkg/observability"
	"github.com/nathaniel-may/biscuit-packing/pkg/packing"
	"github.com/nathaniel-may/biscuit-packing/pkg/render"
)

// Runner executes runs with caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil keyer
// selects cache.DefaultKeyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute solves and renders one run.
func (r *Runner) Execute(ctx context.Context, run Run, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{ID: uuid.New().String(), Run: run}
	hooks := observability.Run()
	hooks.OnRunStart(ctx, res.ID, run.Biscuits)

	start := time.Now()
	sol, hit, err := r.Solve(ctx, run, opts)
	res.Stats.SolveTime = time.Since(start)
	if err != nil {
		hooks.OnRunComplete(ctx, res.ID, run.Biscuits, 0, res.Stats.SolveTime, err)
		return nil, fmt.Errorf("solve %d biscuits: %w", run.Biscuits, err)
	}
	res.Solution = sol
	res.CacheHit = hit
	hooks.OnRunComplete(ctx, res.ID, run.Biscuits, sol.Cost, res.Stats.SolveTime, nil)

	r.Logger.Debug("solved placement",
		"biscuits", run.Biscuits,
		"cost", sol.Cost,
		"clearance", sol.Clearance,
		"cached", hit,
		"duration", res.Stats.SolveTime)

	start = time.Now()
	artifacts, err := r.Render(ctx, res.ID, run, sol, opts)
	res.Stats.RenderTime = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("render %d biscuits: %w", run.Biscuits, err)
	}
	res.Artifacts = artifacts
	return res, nil
}

// Solve returns the placement for run, from the cache when the run is seeded
// and a solution is stored. Unseeded runs are never cached.
//
// Annealing is CPU-bound and cannot be interrupted. When ctx is cancelled
// Solve returns ctx.Err() immediately and the abandoned search finishes in
// the background.
func (r *Runner) Solve(ctx context.Context, run Run, opts Options) (*packing.Solution, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	key := ""
	if run.Seed != nil {
		key = r.Keyer.SolutionKey(cache.SolutionKeyOpts{
			Biscuits:    run.Biscuits,
			Width:       run.Width,
			Length:      run.Length,
			Iterations:  run.Iterations,
			Seed:        *run.Seed,
			Schedule:    opts.Schedule,
			Temperature: opts.InitialTemperature,
		})
		if !opts.Refresh {
			if sol, ok := r.load(ctx, key); ok {
				return sol, true, nil
			}
		}
	}

	type solved struct {
		sol *packing.Solution
		err error
	}
	done := make(chan solved, 1)
	go func() {
		sol, err := packing.Solve(run.Biscuits, run.Width, run.Length, opts.solveOptions(run))
		done <- solved{sol, err}
	}()

	var s solved
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case s = <-done:
	}
	if s.err != nil {
		return nil, false, s.err
	}

	if key != "" {
		r.store(ctx, key, s.sol, opts.CacheTTL)
	}
	return s.sol, false, nil
}

func (r *Runner) load(ctx context.Context, key string) (*packing.Solution, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	var sol packing.Solution
	if err := json.Unmarshal(data, &sol); err != nil || len(sol.Placement) == 0 {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	return &sol, true
}

func (r *Runner) store(ctx context.Context, key string, sol *packing.Solution, ttl time.Duration) {
	data, err := json.Marshal(sol)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

// Render produces every requested format for a solved run.
func (r *Runner) Render(ctx context.Context, id string, run Run, sol *packing.Solution, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		start := time.Now()
		data, err := render.Render(render.Format(format), run.Width, run.Length, sol.Placement, opts.RenderOptions...)
		observability.Run().OnRenderComplete(ctx, id, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
