// Command vis renders CSV columns as house-styled plots.
package main

import (
	"os"

	"vis-go/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
