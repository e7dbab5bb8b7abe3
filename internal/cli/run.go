package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
	"github.com/nathaniel-may/biscuit-packing/pkg/pipeline"
	"github.com/nathaniel-may/biscuit-packing/pkg/report"
)

// runFlags holds the flags shared by the single and multi commands.
type runFlags struct {
	width       float64       // pan width, before scaling
	length      float64       // pan length, before scaling
	runs        uint64        // annealing iterations per biscuit count
	seed        uint64        // only used when --seed is given
	formats     string        // comma-separated output formats
	outputDir   string        // directory for output files
	workers     int           // concurrent runs, 0 for one per CPU
	scale       float64       // multiplier applied to the pan dimensions
	schedule    string        // cooling schedule name
	temperature float64       // initial temperature, 0 for the default
	cacheTTL    time.Duration // lifetime of cached solutions
	noCache     bool          // disable the solution cache
	refresh     bool          // recompute cached solutions
	cacheURL    string        // redis URL of a shared cache
	report      string        // xlsx report path
	watch       bool          // live table instead of line output
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.width, "pan-width", "w", 0, "width of the pan")
	cmd.Flags().Float64VarP(&f.length, "pan-length", "l", 0, "length of the pan")
	_ = cmd.MarkFlagRequired("pan-width")
	_ = cmd.MarkFlagRequired("pan-length")

	cmd.Flags().Uint64VarP(&f.runs, "runs", "r", pipeline.DefaultIterations, "annealing iterations per biscuit count")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (makes results reproducible and cacheable)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, dxf, json (comma-separated)")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", ".", "directory for output files")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent runs (default one per CPU)")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "multiplier applied to the pan dimensions")
	cmd.Flags().StringVar(&f.schedule, "schedule", "", "cooling schedule: fast (default), boltzmann, geometric")
	cmd.Flags().Float64Var(&f.temperature, "temperature", 0, "initial annealing temperature (default 100)")
	cmd.Flags().DurationVar(&f.cacheTTL, "cache-ttl", pipeline.DefaultCacheTTL, "how long seeded solutions stay cached")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute solutions even when cached")
	cmd.Flags().StringVar(&f.cacheURL, "cache-url", "", "shared redis cache (redis://host:port/db)")
	cmd.Flags().StringVar(&f.report, "report", "", "write an xlsx report of all runs to this path")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "show a live table of runs")
}

func (f *runFlags) options(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Formats:            parseFormats(f.formats),
		Schedule:           f.schedule,
		InitialTemperature: f.temperature,
		CacheTTL:           f.cacheTTL,
		Refresh:            f.refresh,
		Logger:             logger,
	}
}

// planFunc builds a plan once flags and config are resolved.
type planFunc func(pan pipeline.Pan, opts pipeline.PlanOptions) (*pipeline.Plan, error)

// execute resolves configuration, plans, runs the batch and writes outputs.
func (c *CLI) execute(cmd *cobra.Command, f *runFlags, plan planFunc) error {
	cfg, err := loadConfig(c.configFile)
	if err != nil {
		return err
	}
	cfg.apply(cmd, f)
	if cfg.path != "" {
		c.Logger.Debug("loaded config", "path", cfg.path)
	}

	if err := errors.ValidateBudget(f.runs); err != nil {
		return err
	}
	scale := f.scale
	planOpts := pipeline.PlanOptions{Iterations: f.runs, Scale: &scale}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		planOpts.Seed = &seed
	}
	p, err := plan(pipeline.Pan{Width: f.width, Length: f.length}, planOpts)
	if err != nil {
		return err
	}

	opts := pipeline.BatchOptions{Options: f.options(c.Logger), Workers: f.workers}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	ctx := withLogger(cmd.Context(), c.Logger)
	runner, err := c.newRunner(ctx, f.noCache, f.cacheURL)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	sink := newArtifactSink(f.outputDir, len(p.Runs))
	var batch *pipeline.BatchResult
	if f.watch {
		batch, err = c.watchPlan(ctx, runner, p, opts, sink)
	} else {
		printInfo("%s", p.Header)
		batch, err = c.runPlan(ctx, runner, p, opts, sink)
	}
	if batch == nil {
		return err
	}

	printSummary(batch, sink)

	if f.report != "" {
		if rerr := report.Save(f.report, batch); rerr != nil {
			return fmt.Errorf("write report: %w", rerr)
		}
		printFile(f.report)
	}

	if err != nil {
		printWarning("Stopped after %d of %d runs", len(batch.Succeeded()), len(p.Runs))
		return err
	}
	if serr := sink.err(); serr != nil {
		return serr
	}
	if len(batch.Errors) > 0 {
		return fmt.Errorf("%d of %d runs failed", len(batch.Errors), len(p.Runs))
	}
	printSuccess("done")
	return nil
}

// runPlan executes the plan with line-oriented output. Announcements are
// printed as runs finish, so their order follows completion, not input.
func (c *CLI) runPlan(ctx context.Context, runner *pipeline.Runner, p *pipeline.Plan, opts pipeline.BatchOptions, sink *artifactSink) (*pipeline.BatchResult, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var spinner *Spinner
	if len(p.Runs) == 1 {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d biscuits...", p.Runs[0].Biscuits))
		spinner.Start()
	}

	opts.OnStart = func(i int, run pipeline.Run) {
		logger.Debug("run started", "index", i, "biscuits", run.Biscuits)
	}
	opts.OnComplete = func(i int, res *pipeline.Result) {
		sink.write(i, res)
		if res.Run.AnnounceEnd != "" {
			printSuccess("%s", res.Run.AnnounceEnd)
		}
	}

	batch, err := runner.RunBatch(ctx, p.Runs, opts)
	if spinner != nil {
		if batch != nil && len(batch.Errors) > 0 && !spinner.Cancelled() {
			spinner.StopWithError("Placement failed")
		} else {
			spinner.Stop()
		}
	}
	if batch != nil {
		prog.done(fmt.Sprintf("Placed %d of %d biscuit counts", len(batch.Succeeded()), len(p.Runs)))
	}
	return batch, err
}

// printSummary prints every successful run with its files, then every
// failure with its reason.
func printSummary(batch *pipeline.BatchResult, sink *artifactSink) {
	for i, res := range batch.Results {
		if res == nil {
			continue
		}
		printRunStats(res)
		for _, path := range sink.paths[i] {
			printFile(path)
		}
	}
	for _, e := range batch.Errors {
		printError("%d biscuits: %s", e.Run.Biscuits, errors.UserMessage(e.Err))
	}
}

// artifactSink writes results to disk as they complete. It is not safe for
// concurrent use; batch callbacks are serialized.
type artifactSink struct {
	dir   string
	paths [][]string
	errs  []error
}

func newArtifactSink(dir string, runs int) *artifactSink {
	return &artifactSink{dir: dir, paths: make([][]string, runs)}
}

func (s *artifactSink) write(index int, res *pipeline.Result) {
	paths, err := pipeline.WriteArtifacts(s.dir, res)
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("%d biscuits: %w", res.Run.Biscuits, err))
		return
	}
	s.paths[index] = paths
}

func (s *artifactSink) err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return fmt.Errorf("write output: %w", s.errs[0])
}
