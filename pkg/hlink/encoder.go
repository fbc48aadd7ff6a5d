// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import "fmt"

const hexDigits = "0123456789ABCDEF"

// hexTerminator ends a hex digit run in the programming stream. It is a
// non-printing byte, so the device ignores it after flushing the
// accumulator, whether or not the firmware reprocesses the terminating
// byte.
const hexTerminator = 0x01

// ProgramStream builds the exact byte sequence a host sends to program the
// given messages into the pendant's store: the programming handshake, each
// message as a hex-coded mode byte plus its escaped body plus a CR
// terminator, and a final CR for the end-of-store marker.
//
// The stream assumes the programming cursor sits at the store start; send
// the Abort byte first (or use WithReset) when that is not known.
func ProgramStream(msgs []Message) ([]byte, error) {
	out := []byte{Auth1, AuthProgram}
	for i, m := range msgs {
		mode := m.Mode.Encode()
		if mode == 0 {
			return nil, fmt.Errorf("message %d: mode byte encodes to 0", i)
		}
		out = appendHexByte(out, mode)
		for _, c := range m.Body {
			out = appendProgramByte(out, c)
		}
		out = append(out, '\r')
	}
	out = append(out, '\r')
	return out, nil
}

// WithReset prefixes a link stream with the Abort byte, forcing both store
// cursors back to the start before the stream is interpreted.
func WithReset(stream []byte) []byte {
	return append([]byte{Abort}, stream...)
}

// DisplayStream builds the byte sequence for live display mode: handshake,
// one mode byte, then the text rendered character by character. A trailing
// CR clears the display again.
func DisplayStream(mode Mode, text string) []byte {
	out := []byte{Auth1, AuthDisplay, mode.Encode()}
	return append(out, text...)
}

// appendProgramByte encodes one store byte for the programming state
// machine. Printable bytes pass through, extended glyphs use the
// special-character escape, and everything else (including the introducers
// themselves) goes through a hex run.
func appendProgramByte(out []byte, c byte) []byte {
	switch {
	case c == SpecialChar || c == HexCode:
		return appendHexByte(out, c)
	case c >= 128 && c-SpecialShift >= ' ' && c-SpecialShift < 127:
		return append(out, SpecialChar, c-SpecialShift)
	case c >= ' ' && c < 127:
		return append(out, c)
	default:
		return appendHexByte(out, c)
	}
}

func appendHexByte(out []byte, c byte) []byte {
	return append(out, HexCode, hexDigits[c>>4], hexDigits[c&0x0F], hexTerminator)
}
