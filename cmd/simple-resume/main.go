// simple-resume resolves document colour schemes from named, generated,
// remote, or directly supplied palettes.
package main

import (
	"os"

	"github.com/athola/simple-resume/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
