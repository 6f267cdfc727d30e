package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

var batchPrecision uint

// batchCmd evaluates several expressions in one invocation, aggregating
// per-expression parse/refinement failures with go-multierror instead of
// stopping at the first bad one (SPEC_FULL.md §8).
var batchCmd = &cobra.Command{
	Use:   "batch <expr> [expr...]",
	Short: "Evaluate several expressions, reporting all failures together",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		policy, err := loadPolicy()
		if err != nil {
			return err
		}

		var result *multierror.Error
		for _, expr := range args {
			r, err := ParseExpr(expr)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", expr, err))
				continue
			}
			it := r.Iterator(policy)
			if batchPrecision > 1 {
				if err := it.Advance(batchPrecision - it.Precision()); err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: %w", expr, err))
					continue
				}
			}
			if err := it.Err(); err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", expr, err))
				continue
			}
			iv := it.Interval()
			fmt.Printf("%s = [%v, %v]\n", expr, iv.Lower, iv.Upper)
		}
		return result.ErrorOrNil()
	},
}

func init() {
	batchCmd.Flags().UintVar(&batchPrecision, "precision", 1, "digits of precision to refine each expression to")
	rootCmd.AddCommand(batchCmd)
}
