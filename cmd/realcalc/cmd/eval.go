package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalPrecision uint

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate an expression to a fixed precision and print its enclosure",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		policy, err := loadPolicy()
		if err != nil {
			return err
		}
		r, err := ParseExpr(args[0])
		if err != nil {
			return err
		}
		it := r.Iterator(policy)
		if evalPrecision > 1 {
			if err := it.Advance(evalPrecision - it.Precision()); err != nil {
				return err
			}
		}
		if err := it.Err(); err != nil {
			return err
		}
		iv := it.Interval()
		fmt.Printf("[%v, %v]  (~%.10g .. %.10g)\n", iv.Lower, iv.Upper, iv.Lower.Float64(), iv.Upper.Float64())
		return nil
	},
}

func init() {
	evalCmd.Flags().UintVar(&evalPrecision, "precision", 1, "digits of precision to refine to")
	rootCmd.AddCommand(evalCmd)
}
