package main

import (
	"github.com/spf13/cobra"
)

// Flags for unitconv breakdown
var (
	Tokens bool // Decompose single tokens instead of full expressions
)

// NewCmdBreakdown returns the [cobra.Command] used for reducing unit
// expressions to their SI factor and dimension signature.
//
// Usage:
//
//	unitconv breakdown [flags] <unit>...
func NewCmdBreakdown() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "breakdown <unit>...",
		Aliases: []string{"b"},
		Short:   "Reduce unit expressions to SI factor and dimension signature",
		Long: `Reduce unit expressions to their total SI factor and canonical dimension
signature. With --tokens, each argument is decomposed as a single token into
its factor, SI base string, and power instead.`,
		Example: `  unitconv breakdown "erg s-1 cm-2 A-1"
  unitconv breakdown --tokens g2 hg3 mW`,
		GroupID: "commands",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runBreakdown,
	}

	cmd.Flags().SortFlags = false
	addConfigFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&Tokens, "tokens", "t", false, "Decompose single tokens")

	cmd.MarkFlagFilename("config", "yaml", "yml")

	return cmd
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	conv, err := loadConverter()
	if err != nil {
		return err
	}

	for _, unit := range args {
		if Tokens {
			factor, basis, power, err := conv.Components(unit)
			if err != nil {
				return err
			}
			cmd.Printf("%s\t%s\t%s\t%d\n", unit, formatResult(factor), basis, power)
			continue
		}
		factor, sig, err := conv.Breakdown(unit)
		if err != nil {
			return err
		}
		cmd.Printf("%s\t%s\t%s\n", unit, formatResult(factor), sig)
	}
	return nil
}
