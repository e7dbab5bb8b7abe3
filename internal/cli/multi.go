package cli

import (
	"github.com/spf13/cobra"

	"github.com/nathaniel-may/biscuit-packing/pkg/pipeline"
)

// multiCommand creates the multi command for placing a range of biscuit counts.
func (c *CLI) multiCommand() *cobra.Command {
	var (
		start, end int
		flags      runFlags
	)

	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Place every number of biscuits in a range on a pan",
		Long: `Place every number of biscuits from --start to --end (inclusive) on a pan.

Each biscuit count is solved independently and concurrently, bounded by
--workers. A line is printed as each count finishes, in completion order.
A failing count is reported and does not stop the others.

With --seed, count n uses seed + (n - start) so each count is reproducible
on its own.`,
		Example: `  biscuits multi --start 3 --end 12 -w 9 -l 13
  biscuits multi --start 1 --end 20 -w 10 -l 10 --watch --report runs.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, &flags, func(pan pipeline.Pan, opts pipeline.PlanOptions) (*pipeline.Plan, error) {
				return pipeline.PlanMulti(start, end, pan, opts)
			})
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "smallest number of biscuits")
	cmd.Flags().IntVar(&end, "end", 0, "largest number of biscuits")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	flags.register(cmd)

	return cmd
}
