package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/interval/ival"
)

func newEvalCommand() *cobra.Command {

	var left bool

	cmd := &cobra.Command{
		Use:   "eval OP L U [L U | S]",
		Short: "Evaluate a named operation",
		Long: `Evaluate the operation OP, named after its array ufunc, and print its result.

The category of OP follows from the number of operands:
  L U        unary, measure and test operations
  L U S      interval-scalar operations (scalar-interval with --left: S L U)
  L U L U    binary operations and predicates

Run "ival ops" for the list of operations.`,
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eval(cmd.OutOrStdout(), args[0], args[1:], left)
		},
	}

	cmd.Flags().BoolVar(&left, "left", false, "take the scalar as the left operand: OP S L U")

	return cmd
}

func eval(w io.Writer, name string, args []string, left bool) (err error) {

	var is []ival.Interval

	switch len(args) {
	case 2:

		if is, err = parseIntervals(args); err != nil {
			return err
		}

		if op, ok := ival.LookupUnary(name); ok {
			fmt.Fprintln(w, formatInterval(op(is[0])))
		} else if op, ok := ival.LookupMeasure(name); ok {
			fmt.Fprintln(w, formatFloat(op(is[0])))
		} else if op, ok := ival.LookupTest(name); ok {
			fmt.Fprintln(w, formatBool(op(is[0])))
		} else {
			return fmt.Errorf("cannot eval: unknown unary, measure or test operation %q", name)
		}

	case 3:

		var s float64

		if left {
			if s, err = parseFloat(args[0]); err != nil {
				return fmt.Errorf("cannot parse operands: %w", err)
			}
			if is, err = parseIntervals(args[1:]); err != nil {
				return err
			}

			op, ok := ival.LookupScalarLeft(name)
			if !ok {
				return fmt.Errorf("cannot eval: unknown scalar-interval operation %q", name)
			}
			fmt.Fprintln(w, formatInterval(op(s, is[0])))

		} else {
			if is, err = parseIntervals(args[:2]); err != nil {
				return err
			}
			if s, err = parseFloat(args[2]); err != nil {
				return fmt.Errorf("cannot parse operands: %w", err)
			}

			op, ok := ival.LookupScalar(name)
			if !ok {
				return fmt.Errorf("cannot eval: unknown interval-scalar operation %q", name)
			}
			fmt.Fprintln(w, formatInterval(op(is[0], s)))
		}

	case 4:

		if is, err = parseIntervals(args); err != nil {
			return err
		}

		if op, ok := ival.LookupBinary(name); ok {
			fmt.Fprintln(w, formatInterval(op(is[0], is[1])))
		} else if op, ok := ival.LookupPredicate(name); ok {
			fmt.Fprintln(w, formatBool(op(is[0], is[1])))
		} else {
			return fmt.Errorf("cannot eval: unknown binary operation or predicate %q", name)
		}
	}

	return nil
}
