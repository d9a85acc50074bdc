// Command harvestcx is the CLI entry point for building filtered context
// dumps of a codebase.
package main

import (
	"os"

	"github.com/harvestcx/harvestcx/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
