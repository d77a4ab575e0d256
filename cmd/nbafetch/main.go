// main is the entry point for the nbafetch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/defactosf/nbafetch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
