// Monet - a perceptual colour theme generator
//
// Monet derives complete light and dark UI colour themes from a single
// source colour, or from an image, using a perceptually accurate colour
// space.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/monet/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
