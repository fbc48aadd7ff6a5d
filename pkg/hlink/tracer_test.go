// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import (
	"strings"
	"testing"
)

func TestTracer_Handshake(t *testing.T) {
	tr := NewTracer()
	if got := tr.Trace('H'); got != "handshake 1/2" {
		t.Errorf("Trace('H') = %q", got)
	}
	if got := tr.Trace('L'); !strings.Contains(got, "programming mode") {
		t.Errorf("Trace('L') = %q", got)
	}
}

func TestTracer_IgnoresUnauthenticated(t *testing.T) {
	tr := NewTracer()
	if got := tr.Trace('A'); got != "ignored (not authenticated)" {
		t.Errorf("Trace('A') = %q", got)
	}
	tr.Trace('H')
	if got := tr.Trace('x'); got != "handshake aborted" {
		t.Errorf("Trace('x') = %q", got)
	}
}

func TestTracer_ProgrammingWrites(t *testing.T) {
	tr := NewTracer()
	tr.Trace('H')
	tr.Trace('L')

	if got := tr.Trace('A'); !strings.Contains(got, "offset 0") {
		t.Errorf("first write = %q, want offset 0", got)
	}
	if got := tr.Trace('B'); !strings.Contains(got, "offset 1") {
		t.Errorf("second write = %q, want offset 1", got)
	}
	if got := tr.Trace('\r'); !strings.Contains(got, "terminator") || !strings.Contains(got, "offset 2") {
		t.Errorf("terminator = %q", got)
	}
}

func TestTracer_HexReprocess(t *testing.T) {
	tr := NewTracer()
	tr.Trace('H')
	tr.Trace('L')
	tr.Trace('$')
	tr.Trace('4')
	tr.Trace('1')

	// The terminating byte both flushes the accumulator and acts as a
	// fresh programming byte; the trace shows both effects.
	got := tr.Trace('X')
	if !strings.Contains(got, "0x41") || !strings.Contains(got, "; then ") || !strings.Contains(got, `"X"`) {
		t.Errorf("hex flush trace = %q", got)
	}
}

func TestTracer_Abort(t *testing.T) {
	tr := NewTracer()
	tr.Trace('H')
	tr.Trace('L')
	tr.Trace('A')

	if got := tr.Trace(Abort); !strings.Contains(got, "abort") {
		t.Errorf("abort trace = %q", got)
	}
	// cursor is back at the start
	if got := tr.Trace('H'); got != "handshake 1/2" {
		t.Errorf("post-abort trace = %q", got)
	}
	tr.Trace('L')
	if got := tr.Trace('A'); !strings.Contains(got, "offset 0") {
		t.Errorf("post-abort write = %q, want offset 0", got)
	}
}

func TestTracer_DisplayMode(t *testing.T) {
	tr := NewTracer()
	tr.Trace('H')
	tr.Trace('D')

	if got := tr.Trace(0x05); !strings.Contains(got, "set display mode 0x05") {
		t.Errorf("mode trace = %q", got)
	}
	if got := tr.Trace('A'); !strings.Contains(got, "echo") {
		t.Errorf("echo trace = %q", got)
	}
	if got := tr.Trace('\r'); got != "clear display" {
		t.Errorf("CR trace = %q", got)
	}
}
