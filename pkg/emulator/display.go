// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package emulator

import (
	"sync"

	"github.com/glintwerk/pendant/pkg/hlink"
)

// Matrix geometry
const (
	Rows = 7
	Cols = 5
)

// Matrix emulates the 5x7 dot-matrix display: a virtual column buffer
// (display memory) written at a cursor, a five-column visible window, and
// the scrolling machinery that moves the window across the buffer. All
// methods are safe for concurrent use.
type Matrix struct {
	mu sync.Mutex

	mem    []byte // column buffer, bit 0 = top row
	window int    // first visible column

	increment int
	direction hlink.Direction
	repDelay  uint8 // pause between repetitions, in scroll steps
	delay     uint8 // remaining pause steps
	backward  bool  // bidirectional: currently on the return leg

	scanCol int // multiplexed column driven by Refresh
	frames  uint64
}

// NewMatrix creates a cleared display with forward single-step scrolling.
func NewMatrix() *Matrix {
	return &Matrix{increment: 1}
}

func (m *Matrix) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mem = m.mem[:0]
	m.window = 0
	m.delay = 0
	m.backward = false
}

func (m *Matrix) PrintChar(c byte) {
	g := glyph(c)
	m.mu.Lock()
	m.mem = append(m.mem, g[:]...)
	m.mu.Unlock()
}

func (m *Matrix) PrintByte(b byte) {
	m.mu.Lock()
	m.mem = append(m.mem, b&0x7F)
	m.mu.Unlock()
}

func (m *Matrix) PlayAnimation(index int) {
	if index < 0 || index >= len(animations) {
		return
	}
	m.mu.Lock()
	m.mem = append(m.mem, animations[index]...)
	m.mu.Unlock()
}

func (m *Matrix) Animations() int {
	return len(animations)
}

func (m *Matrix) SetScrolling(increment int, dir hlink.Direction, repetitionDelay uint8) {
	if increment <= 0 {
		increment = 1
	}
	m.mu.Lock()
	m.increment = increment
	m.direction = dir
	m.repDelay = repetitionDelay
	m.mu.Unlock()
}

// Scroll advances the visible window by one step. At the end of the buffer
// the window wraps to the start (forward) or reverses (bidirectional),
// pausing for the configured repetition delay first.
func (m *Matrix) Scroll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.mem) <= Cols {
		return
	}
	if m.delay > 0 {
		m.delay--
		return
	}

	last := len(m.mem) - Cols
	if m.direction == hlink.Forward {
		m.window += m.increment
		if m.window > last {
			m.window = 0
			m.delay = m.repDelay
		}
		return
	}

	if m.backward {
		m.window -= m.increment
		if m.window <= 0 {
			m.window = 0
			m.backward = false
			m.delay = m.repDelay
		}
	} else {
		m.window += m.increment
		if m.window >= last {
			m.window = last
			m.backward = true
			m.delay = m.repDelay
		}
	}
}

// Refresh drives the next multiplexed column, emulating the per-frame
// column scan of the real drive circuit.
func (m *Matrix) Refresh() {
	m.mu.Lock()
	m.scanCol = (m.scanCol + 1) % Cols
	m.frames++
	m.mu.Unlock()
}

// Frames returns the number of refresh cycles driven so far.
func (m *Matrix) Frames() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Visible returns the five columns currently inside the window, zero-padded
// past the end of display memory.
func (m *Matrix) Visible() [Cols]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out [Cols]byte
	for i := 0; i < Cols; i++ {
		if m.window+i < len(m.mem) {
			out[i] = m.mem[m.window+i]
		}
	}
	return out
}

// Columns returns a copy of the whole display memory.
func (m *Matrix) Columns() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.mem))
	copy(out, m.mem)
	return out
}

// Window returns the first visible column index.
func (m *Matrix) Window() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.window
}
