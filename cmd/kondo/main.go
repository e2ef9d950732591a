package main

import (
	"os"

	"github.com/bnema/kondo-sampler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
