package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/interval/ival"
)

func newOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations by category",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := ival.OperationNames()
			for _, category := range ival.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", color.BlueString(category), strings.Join(names[category], " "))
			}
		},
	}
}
