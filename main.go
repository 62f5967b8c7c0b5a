// Command thechief-quest serves the TheChief.quest site.
package main

import (
	"fmt"
	"os"

	"github.com/Londondannyboy/thechief-quest/internal/bootstrap"
)

func main() {
	if err := bootstrap.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
