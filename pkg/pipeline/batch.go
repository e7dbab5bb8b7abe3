package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	Options

	// Workers bounds concurrent runs; runtime.NumCPU() when zero.
	Workers int

	// OnStart and OnComplete are called as runs begin and finish, in
	// completion order. Calls are serialized, never concurrent.
	OnStart    func(index int, run Run)
	OnComplete func(index int, res *Result)

	// OnError is called for every failed run. Calls are serialized.
	OnError func(index int, run Run, err error)
}

// RunError is a failed run of a batch.
type RunError struct {
	Index int
	Run   Run
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %d (%d biscuits): %v", e.Index, e.Run.Biscuits, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// BatchResult holds the outcome of every run of a batch.
type BatchResult struct {
	// Results is index-aligned with the input runs; failed or abandoned
	// runs are nil.
	Results []*Result

	// Errors lists failed runs in input order.
	Errors []*RunError
}

// Succeeded returns the non-nil results in input order.
func (b *BatchResult) Succeeded() []*Result {
	out := make([]*Result, 0, len(b.Results))
	for _, r := range b.Results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Err joins every run error, or returns nil when all runs succeeded.
func (b *BatchResult) Err() error {
	errs := make([]error, len(b.Errors))
	for i, e := range b.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// RunBatch executes runs concurrently on at most Workers goroutines. Each run
// owns its random source. A failing run never stops the others; it is
// reported in BatchResult.Errors and through OnError.
//
// When ctx is cancelled, runs that have not started are abandoned and
// RunBatch returns the partial result together with ctx.Err().
func (r *Runner) RunBatch(ctx context.Context, runs []Run, opts BatchOptions) (*BatchResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := &BatchResult{Results: make([]*Result, len(runs))}
	var (
		mu     sync.Mutex
		failed = make([]*RunError, len(runs))
	)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, run := range runs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if opts.OnStart != nil {
				mu.Lock()
				opts.OnStart(i, run)
				mu.Unlock()
			}

			res, err := r.Execute(ctx, run, opts.Options)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
					return nil
				}
				failed[i] = &RunError{Index: i, Run: run, Err: err}
				if opts.OnError != nil {
					opts.OnError(i, run, err)
				}
				return nil
			}
			out.Results[i] = res
			if opts.OnComplete != nil {
				opts.OnComplete(i, res)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, e := range failed {
		if e != nil {
			out.Errors = append(out.Errors, e)
		}
	}
	return out, ctx.Err()
}
