package pipeline

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

// Pan holds user-facing (unscaled) pan dimensions.
type Pan struct {
	Width  float64
	Length float64
}

// PlanOptions are shared by every run of a plan.
type PlanOptions struct {
	Iterations uint64   // DefaultIterations when zero
	Scale      *float64 // DefaultScale when nil; must be positive when set
	// Seed makes the plan reproducible. In a multi plan run i uses Seed+i
	// so that every run has its own stream.
	Seed *uint64
}

func (o PlanOptions) withDefaults() PlanOptions {
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	return o
}

func (o PlanOptions) scale() float64 {
	if o.Scale == nil {
		return DefaultScale
	}
	return *o.Scale
}

// Plan is a validated request: a header to show the user and the runs to
// execute.
type Plan struct {
	Header string
	Runs   []Run
}

// PlanSingle plans one run of n biscuits.
func PlanSingle(n int, pan Pan, opts PlanOptions) (*Plan, error) {
	if err := errors.ValidateBiscuits(n); err != nil {
		return nil, err
	}
	opts, err := validatePlan(pan, opts)
	if err != nil {
		return nil, err
	}

	header := fmt.Sprintf("optimizing placement of %d biscuits on a %s X %s pan with %d runs",
		n, num(pan.Width), num(pan.Length), opts.Iterations)
	return &Plan{
		Header: header,
		Runs:   []Run{newRun(n, pan, opts, opts.Seed, "")},
	}, nil
}

// PlanMulti plans one run per biscuit count in [start, end]. Equal bounds
// plan a single run.
func PlanMulti(start, end int, pan Pan, opts PlanOptions) (*Plan, error) {
	if err := errors.ValidateRange(start, end); err != nil {
		return nil, err
	}
	opts, err := validatePlan(pan, opts)
	if err != nil {
		return nil, err
	}

	header := fmt.Sprintf("optimizing placement of biscuits from %d to %d on a %s X %s pan with %d runs",
		start, end, num(pan.Width), num(pan.Length), opts.Iterations)

	runs := make([]Run, 0, end-start+1)
	for n := start; n <= end; n++ {
		var seed *uint64
		if opts.Seed != nil {
			s := *opts.Seed + uint64(n-start)
			seed = &s
		}
		runs = append(runs, newRun(n, pan, opts, seed, fmt.Sprintf("finished placing %d biscuits", n)))
	}
	return &Plan{Header: header, Runs: runs}, nil
}

func validatePlan(pan Pan, opts PlanOptions) (PlanOptions, error) {
	if err := errors.ValidatePan(pan.Width, pan.Length); err != nil {
		return opts, err
	}
	opts = opts.withDefaults()
	if s := opts.scale(); s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", s)
	}
	return opts, nil
}

func newRun(n int, pan Pan, opts PlanOptions, seed *uint64, announce string) Run {
	return Run{
		Biscuits:    n,
		Width:       pan.Width * opts.scale(),
		Length:      pan.Length * opts.scale(),
		Iterations:  opts.Iterations,
		Seed:        seed,
		AnnounceEnd: announce,
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
