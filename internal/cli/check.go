package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tuneinsight/interval/ival"
	"github.com/tuneinsight/interval/verify"
)

func newCheckCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "check OP L U [L U | S]",
		Short: "Verify the enclosure property of a named operation",
		Long: `Evaluate the operation OP and test that the exact results at sampled
points of the operands lie in the computed interval.

Operands are given as for "ival eval", without --left. The exit status is
1 if a violation is found.`,
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {

			params, err := parametersFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			checker, err := verify.NewChecker(params)
			if err != nil {
				return err
			}

			r, err := check(checker, args[0], args[1:])
			if err != nil {
				return err
			}

			if random, _ := cmd.Flags().GetBool("random-key"); random {
				fmt.Fprintf(cmd.OutOrStdout(), "key:        %s\n", params.Key())
			}

			printReport(cmd.OutOrStdout(), r)

			if !r.Ok() {
				return fmt.Errorf("%s: %d violations out of %d samples", r.Op, r.Violations, r.Samples)
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("ok"))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("params", "", "verification parameters as a JSON string, overridden by the other flags")
	flags.Int("samples", verify.DefaultSamples, "number of random points per operand")
	flags.String("key", verify.DefaultKey, "key of the sampling PRNG")
	flags.Uint("prec", verify.DefaultPrec, "precision in bits of the reference values")
	flags.Float64("tolerance", verify.DefaultTolerance, "relative tolerance of the enclosure test")
	flags.Bool("random-key", false, "draw a fresh key for the sampling PRNG and print it")

	return cmd
}

// parametersFromFlags reads the --params literal and applies the flags set
// explicitly on top of it.
func parametersFromFlags(flags *pflag.FlagSet) (params verify.Parameters, err error) {

	var pl verify.ParametersLiteral

	if s, _ := flags.GetString("params"); s != "" {
		if err = json.Unmarshal([]byte(s), &pl); err != nil {
			return params, fmt.Errorf("cannot parse --params: %w", err)
		}
	}

	if flags.Changed("samples") {
		pl.Samples, _ = flags.GetInt("samples")
	}

	if flags.Changed("key") {
		pl.Key, _ = flags.GetString("key")
	}

	if random, _ := flags.GetBool("random-key"); random {
		if pl.Key, err = verify.RandomKey(); err != nil {
			return
		}
	}

	if flags.Changed("prec") {
		pl.Prec, _ = flags.GetUint("prec")
	}

	if flags.Changed("tolerance") {
		pl.Tolerance, _ = flags.GetFloat64("tolerance")
	}

	return verify.NewParametersFromLiteral(pl)
}

func check(c *verify.Checker, name string, args []string) (r verify.Report, err error) {

	switch len(args) {
	case 2:
		var is []ival.Interval
		if is, err = parseIntervals(args); err != nil {
			return
		}
		return c.CheckUnary(name, is[0])

	case 3:
		var is []ival.Interval
		if is, err = parseIntervals(args[:2]); err != nil {
			return
		}

		var s float64
		if s, err = parseFloat(args[2]); err != nil {
			return r, fmt.Errorf("cannot parse operands: %w", err)
		}

		return c.CheckScalar(name, is[0], s)

	default:
		var is []ival.Interval
		if is, err = parseIntervals(args); err != nil {
			return
		}
		return c.CheckBinary(name, is[0], is[1])
	}
}

func printReport(w io.Writer, r verify.Report) {
	fmt.Fprintf(w, "op:         %s\n", r.Op)
	fmt.Fprintf(w, "result:     %s\n", formatInterval(r.Result))
	fmt.Fprintf(w, "samples:    %d\n", r.Samples)
	fmt.Fprintf(w, "skipped:    %d\n", r.Skipped)
	if r.Violations > 0 {
		fmt.Fprintf(w, "violations: %s\n", color.RedString("%d", r.Violations))
	} else {
		fmt.Fprintf(w, "violations: %d\n", r.Violations)
	}
	fmt.Fprintf(w, "max-excess: %.3g\n", r.MaxExcess)
	fmt.Fprintf(w, "slack:      %.3g\n", r.Slack)
}
