// Package cli implements the ival command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the ival root command with all its subcommands.
func NewRootCommand() *cobra.Command {

	root := &cobra.Command{
		Use:   "ival",
		Short: "Closed-interval arithmetic",
		Long: `ival evaluates interval operations and verifies their enclosure
property against a high-precision reference.

Intervals are given as two numbers L U with L <= U. Numbers accept "inf",
"-inf" and scientific notation. Negative numbers must follow "--", as in

  ival eval add -- -1 2 3 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	root.AddCommand(
		newEvalCommand(),
		newCheckCommand(),
		newOpsCommand(),
	)

	return root
}

// Execute runs the root command on the arguments of the process and returns
// the exit status.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		return 1
	}
	return 0
}
