// Command ival evaluates and verifies closed-interval operations.
package main

import (
	"os"

	"github.com/tuneinsight/interval/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
