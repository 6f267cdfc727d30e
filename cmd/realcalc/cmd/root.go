// Package cmd implements the realcalc CLI's cobra command tree
// (SPEC_FULL.md §13), following msto63-mDW's cmd/mdw/cmd layout:
// a root command with persistent flags, and one file per subcommand
// that registers itself in init().
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wildfunctions/realexact/pkg/config"
)

var (
	cfgFile      string
	maxPrecision uint
)

var rootCmd = &cobra.Command{
	Use:   "realcalc",
	Short: "Exact real-number arithmetic by lazy interval refinement",
	Long: `realcalc evaluates arithmetic expressions over exact reals.

A real is not a fixed-precision number but a description of how to
compute ever-tighter enclosing intervals around a true value. realcalc
builds an expression tree from a literal-and-operator string and drives
its precision iterator, printing the resulting [lower, upper] enclosure.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "policy TOML file (default: built-in policy)")
	rootCmd.PersistentFlags().UintVar(&maxPrecision, "max-precision", config.DefaultMaxPrecision, "refinement cap for looping operators (DIV/LOG/TAN/COT/SEC/CSC)")
}

func loadPolicy() (config.Policy, error) {
	if cfgFile == "" {
		return config.Policy{MaxPrecision: maxPrecision}, nil
	}
	return config.Load(cfgFile)
}
