package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nathaniel-may/biscuit-packing/internal/cli"
	"github.com/nathaniel-may/biscuit-packing/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool
	hooks := &observability.Counters{}

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		hooks.Next = observability.NewLogHooks(c.Logger)
		observability.SetRunHooks(hooks)
		observability.SetCacheHooks(hooks)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if n := hooks.RunsStarted.Load(); n > 0 {
			c.Logger.Debug("session",
				"runs", n,
				"failed", hooks.RunsFailed.Load(),
				"cache_hits", hooks.CacheHits.Load(),
				"cache_misses", hooks.CacheMisses.Load())
		}
	}

	return root.ExecuteContext(ctx)
}
