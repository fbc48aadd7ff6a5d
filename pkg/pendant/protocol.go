// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import "github.com/glintwerk/pendant/pkg/hlink"

// Protocol states. Order matters: every state from protoNormal up echoes
// received bytes onto the display for visual confirmation while
// programming.
type protoState uint8

const (
	protoIdle protoState = iota
	protoAuth
	protoReset
	protoSetMode
	protoEcho
	protoNormal
	protoSpecial
	protoHex
)

func (s protoState) String() string {
	switch s {
	case protoIdle:
		return "idle"
	case protoAuth:
		return "authenticating"
	case protoReset:
		return "reset pending"
	case protoSetMode:
		return "setting display mode"
	case protoEcho:
		return "live character echo"
	case protoNormal:
		return "programming"
	case protoSpecial:
		return "programming (special char)"
	case protoHex:
		return "programming (hex code)"
	default:
		return "unknown"
	}
}

// Receive consumes one byte from the serial link and advances the protocol
// state machine. Safe to call from a transport goroutine concurrently with
// Run. Framing errors must be dropped by the transport before this point
// (see NoteFramingError); every byte reaching Receive is treated as valid.
func (d *Device) Receive(b byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stats.BytesReceived++

	// The abort byte overrides every state; the reset actions run in this
	// same invocation via the protoReset case below.
	if b == hlink.Abort {
		d.proto = protoReset
	}
	if d.proto >= protoNormal {
		d.disp.Clear()
		d.disp.PrintChar(b)
	}

	switch d.proto {
	case protoIdle:
		if b == hlink.Auth1 {
			d.proto = protoAuth
		}

	case protoAuth:
		switch b {
		case hlink.AuthProgram:
			d.proto = protoNormal
		case hlink.AuthDisplay:
			d.proto = protoSetMode
		default:
			d.proto = protoIdle
		}

	case protoReset:
		d.msgCursor = 0
		d.writeCursor = 0
		d.disp.Clear()
		d.disp.PrintChar(hlink.GlyphLogo)
		d.stats.Resets++
		d.proto = protoIdle

	case protoSetMode:
		d.disp.Clear()
		d.applyMode(hlink.DecodeMode(b))
		d.proto = protoEcho

	case protoEcho:
		if b == '\r' || b == '\n' {
			d.disp.Clear()
		} else {
			d.disp.PrintChar(b)
			d.disp.PrintByte(0)
		}

	case protoNormal:
		d.programByte(b)

	case protoSpecial:
		d.writeStore(b + hlink.SpecialShift)
		d.proto = protoNormal

	case protoHex:
		if v := hexValue(b); v >= 0 {
			d.hexVal = d.hexVal<<4 + uint8(v)
		} else {
			// Any non-hex byte flushes the accumulator and is then
			// reprocessed as a fresh programming byte, introducers
			// and terminators included.
			d.writeStore(d.hexVal)
			d.proto = protoNormal
			d.programByte(b)
		}
	}
}

// programByte applies the programmingNormal rules to one byte.
func (d *Device) programByte(b byte) {
	switch {
	case b == hlink.SpecialChar:
		d.proto = protoSpecial
	case b == hlink.HexCode:
		d.hexVal = 0
		d.proto = protoHex
	case b == '\r' || b == '\n':
		d.writeStore(0)
		d.stats.MessagesTerminated++
	case b < ' ':
		// non-printing, ignored
	default:
		d.writeStore(b)
	}
}

// writeStore writes one byte at the programming cursor and advances it.
func (d *Device) writeStore(b byte) {
	d.store.WriteByte(d.writeCursor, b)
	d.writeCursor++
	d.stats.BytesProgrammed++
}

// NoteFramingError records a byte the transport dropped for a framing or
// parity fault. The state machine never sees such bytes.
func (d *Device) NoteFramingError() {
	d.mu.Lock()
	d.stats.FramingErrors++
	d.mu.Unlock()
}

// hexValue maps '0'..'9' and 'A'..'F' to 0..15, or -1 for anything else.
func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}
