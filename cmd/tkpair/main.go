// cmd/tkpair/main.go
package main

import (
	"fmt"
	"os"

	"github.com/arc-language/tkpair/internal/cli"
	"github.com/arc-language/tkpair/internal/printer"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", printer.Error("Error:"), err)
		os.Exit(1)
	}
}
