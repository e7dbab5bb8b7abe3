package cli

import (
	"github.com/spf13/cobra"

	"github.com/nathaniel-may/biscuit-packing/pkg/pipeline"
)

// singleCommand creates the single command for placing one biscuit count.
func (c *CLI) singleCommand() *cobra.Command {
	var (
		biscuits int
		flags    runFlags
	)

	cmd := &cobra.Command{
		Use:   "single",
		Short: "Place a number of biscuits on a pan",
		Long: `Place a number of biscuits on a pan.

The pan dimensions are multiplied by --scale before solving, and the best
placement found within --runs annealing iterations is written to the output
directory as {n}_biscuits_{w}X{l}_pan.{format}.

Runs given a --seed are reproducible and their solutions are cached.`,
		Example: `  biscuits single -n 12 -w 9 -l 13
  biscuits single -n 5 -w 8 -l 8 --seed 42 -f svg,pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, &flags, func(pan pipeline.Pan, opts pipeline.PlanOptions) (*pipeline.Plan, error) {
				return pipeline.PlanSingle(biscuits, pan, opts)
			})
		},
	}

	cmd.Flags().IntVarP(&biscuits, "biscuits", "n", 0, "number of biscuits to place")
	_ = cmd.MarkFlagRequired("biscuits")
	flags.register(cmd)

	return cmd
}
