// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package emulator

// Canned animations: column data in 5-column frames. Messages select them
// with the animation escape ('~A' is index 0) and usually pair them with
// the +5 scroll increment so the window steps frame by frame.
var animations = [][]byte{
	// 0: beating heart
	{
		0x0C, 0x1E, 0x3C, 0x1E, 0x0C,
		0x00, 0x0C, 0x18, 0x0C, 0x00,
		0x0C, 0x1E, 0x3C, 0x1E, 0x0C,
		0x1E, 0x3F, 0x7E, 0x3F, 0x1E,
	},
	// 1: bouncing ball
	{
		0x00, 0x00, 0x03, 0x00, 0x00,
		0x00, 0x00, 0x0C, 0x00, 0x00,
		0x00, 0x00, 0x30, 0x00, 0x00,
		0x00, 0x00, 0x60, 0x00, 0x00,
		0x00, 0x00, 0x30, 0x00, 0x00,
		0x00, 0x00, 0x0C, 0x00, 0x00,
	},
	// 2: expanding ring
	{
		0x00, 0x00, 0x08, 0x00, 0x00,
		0x00, 0x08, 0x14, 0x08, 0x00,
		0x08, 0x14, 0x22, 0x14, 0x08,
		0x1C, 0x22, 0x41, 0x22, 0x1C,
	},
}

// AnimationCount is the number of canned animations the display carries.
var AnimationCount = len(animations)
