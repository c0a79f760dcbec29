// strlist - split, filter and deduplicate lists of strings.
//
// Build with:
//
//	go build -ldflags "-X github.com/rescale/strlist/internal/version.Version=vX.Y.Z" .
package main

import (
	"os"

	"github.com/rescale/strlist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
