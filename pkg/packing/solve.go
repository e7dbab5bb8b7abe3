package packing

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nathaniel-may/biscuit-packing/pkg/anneal"
	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// Options configures Solve. Only Iterations is required.
type Options struct {
	Iterations         uint64
	Seed               *uint64
	Schedule           anneal.Schedule // anneal.Fast when nil
	InitialTemperature float64         // anneal.DefaultInitialTemperature when zero
	TargetCost         *float64
	Logger             *log.Logger
}

// Solution is the outcome of one run.
type Solution struct {
	Placement   geom.Placement `json:"placement"`
	Cost        float64        `json:"cost"`
	InitialCost float64        `json:"initial_cost"`
	Clearance   float64        `json:"clearance"`
	Iterations  uint64         `json:"iterations"`
	Accepted    uint64         `json:"accepted"`
	Duration    time.Duration  `json:"duration"`
}

// Approximate runs the full search and returns the best placement found.
// With a seed the result is fully reproducible.
func Approximate(n int, width, length float64, iterations uint64, seed *uint64) (geom.Placement, error) {
	sol, err := Solve(n, width, length, Options{Iterations: iterations, Seed: seed})
	if err != nil {
		return nil, err
	}
	return sol.Placement, nil
}

// Solve validates the problem, builds the initial layout and anneals it.
func Solve(n int, width, length float64, opts Options) (*Solution, error) {
	p, err := New(n, width, length)
	if err != nil {
		return nil, err
	}
	return p.Solve(opts)
}

// Solve anneals a fresh initial layout of p.
func (p *Problem) Solve(opts Options) (*Solution, error) {
	if err := errors.ValidateBudget(opts.Iterations); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	rng := NewRand(opts.Seed)
	start, err := p.Init(rng)
	if err != nil {
		return nil, err
	}
	logger.Debug("initial layout", "problem", p.String(), "radius", p.Radius(), "cost", p.Cost(start))

	res, err := anneal.Anneal(start, p.Cost, p.Perturb, anneal.Options[geom.Placement]{
		Iterations:         opts.Iterations,
		InitialTemperature: opts.InitialTemperature,
		Schedule:           opts.Schedule,
		RNG:                rng,
		TargetCost:         opts.TargetCost,
		Logger:             logger,
	})
	if err != nil {
		return nil, err
	}

	best := res.Best.Clone()
	return &Solution{
		Placement:   best,
		Cost:        res.BestCost,
		InitialCost: res.InitialCost,
		Clearance:   p.Clearance(best),
		Iterations:  res.Iterations,
		Accepted:    res.Accepted,
		Duration:    res.Duration,
	}, nil
}
