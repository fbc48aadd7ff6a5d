// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

// Package hlink provides a reference Go implementation of the Glint pendant
// link protocol and message-store wire format.
//
// The link is a raw byte stream with no framing layer: a two-byte handshake
// selects a device mode, and a small set of reserved introducer bytes ('^',
// '~', '$', 0xFF) change how subsequent bytes are interpreted until the
// escape completes. This package provides the host-side encoder, store-image
// parsing and formatting, snapshot persistence, and a byte-stream tracer.
package hlink

// Handshake and control bytes
const (
	Auth1       = 'H' // first handshake byte
	AuthProgram = 'L' // second handshake byte: EEPROM programming mode
	AuthDisplay = 'D' // second handshake byte: live display mode
	Abort       = 27  // <ESC>, forces a reset from any protocol state
)

// Escape introducers (store body and programming stream)
const (
	SpecialChar = '^'  // shifts the following byte by SpecialShift
	Animation   = '~'  // selects a canned animation by letter
	HexCode     = '$'  // programming mode only: one byte as hex digits
	DirectMode  = 0xFF // raw pixel data until the next DirectMode byte
)

// SpecialShift is added to the byte following a SpecialChar introducer,
// mapping '^A' (65) onto the extended glyph range starting at 128.
const SpecialShift = 63

// AnimationBase is subtracted from the byte following an Animation
// introducer to obtain an animation index ('A' selects animation 0).
const AnimationBase = 'A'

// Feedback glyphs shown by the device itself
const (
	GlyphLogo  = 129 // shown after a link reset
	GlyphSad   = 130 // shown when entering sleep
	GlyphHappy = 131 // shown on wake-up
)

// Mode byte bit fields
const (
	ModeDirectionBit = 0x80 // set = bidirectional scrolling
	ModeDelayMask    = 0x70 // bits 6..4: repetition delay index
	ModeDelayShift   = 4
	ModeStepBit      = 0x08 // set = scroll increment +5 (animations)
	ModeSpeedMask    = 0x07 // bits 2..0: scroll speed index (1..7)
)

// SpeedTable translates a mode byte speed index (1 = slowest, 7 = fastest)
// into the scroll step period in tick-timer units. Index 0 is unused by
// valid mode bytes and maps to the power-up default.
var SpeedTable = [8]uint8{8, 48, 32, 24, 16, 10, 6, 2}

// DelayTable translates a mode byte delay index (0 = shortest, 7 = longest)
// into the pause between scrolling repetitions, in scroll steps.
var DelayTable = [8]uint8{0, 2, 5, 10, 15, 25, 40, 60}

// DefaultScrollPeriod is the scroll step period before any mode byte has
// been applied.
const DefaultScrollPeriod = 8

// StoreSize is the capacity of the pendant's message store in bytes.
const StoreSize = 256
