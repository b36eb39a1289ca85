// Command figura measures and compares geometric shapes.
package main

import (
	"os"

	"github.com/chazu/figura/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
