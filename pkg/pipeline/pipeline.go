// Package pipeline turns packing requests into rendered results.
//
// It is the orchestration layer shared by every entry point: it plans runs
// from user input, executes each run (solve, then render) with caching and
// observability hooks, and fans a batch of runs out across workers.
//
// # Architecture
//
//  1. Plan: validate the request, scale the pan and build one [Run] per
//     biscuit count ([PlanSingle], [PlanMulti])
//  2. Solve: anneal a placement, or load it from the cache for seeded runs
//  3. Render: produce the requested output formats
//
// Solving is pure. Side effects (files, console output) belong to the
// caller, which receives finished [Result] values.
//
// # Usage
//
//	plan, err := pipeline.PlanMulti(3, 8, pipeline.Pan{Width: 10, Length: 10}, pipeline.PlanOptions{Iterations: 100_000})
//	runner := pipeline.NewRunner(c, nil, logger)
//	batch, err := runner.RunBatch(ctx, plan.Runs, pipeline.BatchOptions{
//	    Options: pipeline.Options{Formats: []string{"svg"}},
//	    Workers: 4,
//	})
//	for _, res := range batch.Succeeded() {
//	    svg := res.Artifacts["svg"]
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nathaniel-may/biscuit-packing/pkg/anneal"
	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
	"github.com/nathaniel-may/biscuit-packing/pkg/packing"
	"github.com/nathaniel-may/biscuit-packing/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and library callers
// =============================================================================

const (
	// DefaultIterations is the annealing budget per run.
	DefaultIterations uint64 = 5_000_000

	// DefaultScale multiplies user pan dimensions so rendered output comes
	// out at a reasonable size.
	DefaultScale = 10.0

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = "svg"

	// DefaultCacheTTL is how long solved placements stay cached.
	DefaultCacheTTL = 30 * 24 * time.Hour
)

// =============================================================================
// Run - one packing instance
// =============================================================================

// Run describes one packing instance to solve. Width and Length are already
// scaled.
type Run struct {
	Biscuits   int     `json:"biscuits"`
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`
	Iterations uint64  `json:"iterations"`
	Seed       *uint64 `json:"seed,omitempty"`

	// AnnounceEnd is printed by the caller when the run finishes. Empty
	// for single runs.
	AnnounceEnd string `json:"-"`
}

// Filename is the output file name of this run for format.
func (r Run) Filename(format string) string {
	return render.Filename(r.Biscuits, r.Width, r.Length, render.Format(format))
}

// Validate checks the run parameters.
func (r Run) Validate() error {
	if err := errors.ValidateBiscuits(r.Biscuits); err != nil {
		return err
	}
	if err := errors.ValidatePan(r.Width, r.Length); err != nil {
		return err
	}
	return errors.ValidateBudget(r.Iterations)
}

// =============================================================================
// Options - execution configuration
// =============================================================================

// Options configures how runs are executed and rendered.
type Options struct {
	// Formats to render; DefaultFormat when empty.
	Formats []string `json:"formats,omitempty"`

	// Schedule is the annealing schedule name; "fast" when empty.
	Schedule string `json:"schedule,omitempty"`

	// InitialTemperature; the annealer's default when zero.
	InitialTemperature float64 `json:"initial_temperature,omitempty"`

	// CacheTTL for solved placements; DefaultCacheTTL when zero.
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// Refresh ignores cached solutions (they are still rewritten).
	Refresh bool `json:"refresh,omitempty"`

	// RenderOptions are passed to every renderer.
	RenderOptions []render.Option `json:"-"`

	// Logger for run-level debug output.
	Logger *log.Logger `json:"-"`

	schedule  anneal.Schedule
	validated bool
}

// ValidateAndSetDefaults validates the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := errors.ValidateFormats(o.Formats); err != nil {
		return err
	}
	s, err := anneal.ParseSchedule(o.Schedule)
	if err != nil {
		return err
	}
	o.schedule = s
	o.Schedule = s.Name()
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) solveOptions(run Run) packing.Options {
	return packing.Options{
		Iterations:         run.Iterations,
		Seed:               run.Seed,
		Schedule:           o.schedule,
		InitialTemperature: o.InitialTemperature,
		Logger:             o.Logger,
	}
}

// =============================================================================
// Result - outputs of one run
// =============================================================================

// Result is the outcome of one executed run.
type Result struct {
	// ID uniquely identifies this execution.
	ID string

	Run      Run
	Solution *packing.Solution

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit is true when the solution was loaded from the cache.
	CacheHit bool
}

// Stats contains timing information for one run.
type Stats struct {
	SolveTime  time.Duration
	RenderTime time.Duration
}
