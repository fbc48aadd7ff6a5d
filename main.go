// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk
//
// Glint - pixel-pendant programmer, tracer, and emulator.

package main

import (
	"os"

	"github.com/glintwerk/pendant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
