package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	untilWidth float64
	refineCap  uint
)

var refineCmd = &cobra.Command{
	Use:   "refine <expr>",
	Short: "Repeatedly refine an expression, printing one line per precision step",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		policy, err := loadPolicy()
		if err != nil {
			return err
		}
		if refineCap > 0 {
			policy.MaxPrecision = refineCap
		}
		r, err := ParseExpr(args[0])
		if err != nil {
			return err
		}
		it := r.Iterator(policy)
		for {
			if err := it.Err(); err != nil {
				return err
			}
			iv := it.Interval()
			width := iv.Width().Float64()
			fmt.Printf("p=%d  [%v, %v]  width~%.3g\n", it.Precision(), iv.Lower, iv.Upper, width)
			if width <= untilWidth {
				return nil
			}
			if it.Precision() >= it.MaxPrecision() && it.MaxPrecision() > 0 {
				return nil
			}
			if err := it.Next(); err != nil {
				return err
			}
		}
	},
}

func init() {
	refineCmd.Flags().Float64Var(&untilWidth, "until-width", 1e-20, "stop once the enclosure width drops below this")
	refineCmd.Flags().UintVar(&refineCap, "cap", 0, "override --max-precision for this run only (0 = use --max-precision)")
	rootCmd.AddCommand(refineCmd)
}
