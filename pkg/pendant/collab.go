// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

// Package pendant implements the control core of the Glint pixel pendant:
// the periodic scheduler, button debouncer, scroll engine, serial protocol
// state machine, message player, and power-state controller. Hardware is
// reached only through the collaborator interfaces in this file; the
// pkg/emulator package provides software implementations of all of them.
package pendant

import "github.com/glintwerk/pendant/pkg/hlink"

// Display is the pixel-matrix collaborator. Implementations must be safe
// for concurrent use: the core draws from both its run loop and the serial
// receive path.
type Display interface {
	// Clear blanks the display memory and resets the visible window.
	Clear()

	// PrintChar renders one character glyph at the write cursor.
	PrintChar(c byte)

	// PrintByte renders one raw column of pixel data at the write cursor.
	PrintByte(b byte)

	// PlayAnimation inserts the canned animation with the given index.
	// Out-of-range indices are ignored.
	PlayAnimation(index int)

	// Animations returns the number of canned animations available.
	Animations() int

	// SetScrolling configures the scroll step increment, direction, and
	// the pause between scrolling repetitions (in scroll steps).
	SetScrolling(increment int, dir hlink.Direction, repetitionDelay uint8)

	// Scroll advances the visible window by one configured step.
	Scroll()

	// Refresh drives one multiplexed column; called once per frame tick.
	Refresh()
}

// Store is the persistent message store collaborator. Addresses past the
// end wrap around, matching EEPROM address behavior; the core trusts store
// content written through its own programming state machine and does not
// bounds-check playback.
type Store interface {
	ReadByte(addr int) byte
	WriteByte(addr int, b byte)
	Size() int
}

// ButtonLine is the raw button input, sampled once per tick period.
type ButtonLine interface {
	// Pressed reports whether the line is at its active level.
	Pressed() bool
}

// WakeSource is the external wake mechanism armed while the device is
// halted. On hardware this is a pin-change interrupt on the button line;
// the emulator fires it from the same button.
type WakeSource interface {
	// Arm enables the wake signal and returns the channel it fires on.
	Arm() <-chan struct{}

	// Disarm disables the wake signal.
	Disarm()
}
