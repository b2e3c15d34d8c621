// Contentkit - turn generated text into platform-ready content
package main

import (
	"os"

	"github.com/randalmurphal/contentkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
