// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import "fmt"

// Tracer states, mirroring the device's protocol state machine
const (
	traceIdle = iota
	traceAuth
	traceDisplayMode
	traceDisplayChar
	traceNormal
	traceSpecial
	traceHex
)

// Tracer annotates a link byte stream by mirroring the pendant's serial
// protocol state machine, without touching any store. It is a debugging
// aid: feed it the same bytes the device sees and it names what each byte
// does, including the write offset the programming cursor would be at.
type Tracer struct {
	state  int
	hexVal uint8
	offset int
}

// NewTracer creates a tracer in the idle state with the programming cursor
// at the store start.
func NewTracer() *Tracer {
	return &Tracer{}
}

// Reset returns the tracer to the idle state and the cursor to the start.
func (t *Tracer) Reset() {
	t.state = traceIdle
	t.hexVal = 0
	t.offset = 0
}

// Trace processes one link byte and returns a description of its effect.
func (t *Tracer) Trace(b byte) string {
	if b == Abort {
		t.Reset()
		return "abort: reset cursors to store start, clear display, show logo"
	}

	switch t.state {
	case traceIdle:
		if b == Auth1 {
			t.state = traceAuth
			return "handshake 1/2"
		}
		return "ignored (not authenticated)"

	case traceAuth:
		switch b {
		case AuthProgram:
			t.state = traceNormal
			return "handshake 2/2: enter programming mode"
		case AuthDisplay:
			t.state = traceDisplayMode
			return "handshake 2/2: enter live display mode"
		default:
			t.state = traceIdle
			return "handshake aborted"
		}

	case traceDisplayMode:
		t.state = traceDisplayChar
		return fmt.Sprintf("set display mode 0x%02X (%s)", b, DecodeMode(b))

	case traceDisplayChar:
		if b == '\r' || b == '\n' {
			return "clear display"
		}
		return fmt.Sprintf("echo %s", printableName(b))

	case traceNormal:
		switch {
		case b == SpecialChar:
			t.state = traceSpecial
			return "special-character escape"
		case b == HexCode:
			t.hexVal = 0
			t.state = traceHex
			return "hex escape"
		case b == '\r' || b == '\n':
			return t.write(0, "terminator")
		case b < ' ':
			return "ignored (non-printing)"
		default:
			return t.write(b, "")
		}

	case traceSpecial:
		t.state = traceNormal
		return t.write(b+SpecialShift, "shifted")

	case traceHex:
		v := hexValue(b)
		if v >= 0 {
			t.hexVal = t.hexVal<<4 + uint8(v)
			return fmt.Sprintf("hex digit (accumulator 0x%02X)", t.hexVal)
		}
		// Terminating byte flushes the accumulator and is then
		// reprocessed as a fresh programming byte.
		t.state = traceNormal
		desc := t.write(t.hexVal, "hex")
		return desc + "; then " + t.Trace(b)

	default:
		t.Reset()
		return "tracer reset (invalid state)"
	}
}

func (t *Tracer) write(v byte, kind string) string {
	off := t.offset
	t.offset++
	if kind != "" {
		kind = " " + kind
	}
	return fmt.Sprintf("write%s %s at offset %d", kind, printableName(v), off)
}

func printableName(b byte) string {
	if b >= ' ' && b < 127 {
		return fmt.Sprintf("0x%02X %q", b, b)
	}
	return fmt.Sprintf("0x%02X", b)
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
