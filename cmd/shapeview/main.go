// Command shapeview renders images through shapeview style documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/shapeview/cmd/shapeview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
