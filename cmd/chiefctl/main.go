// Command chiefctl operates the TheChief.quest site.
package main

import (
	"os"

	"github.com/Londondannyboy/thechief-quest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
