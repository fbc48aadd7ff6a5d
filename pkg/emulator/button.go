// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package emulator

import "sync"

// Button emulates the pendant's push button. It is both the raw input line
// the debouncer samples and the wake source the power controller arms: on
// hardware both are the same pin.
type Button struct {
	mu      sync.Mutex
	pressed bool
	armed   bool
	wake    chan struct{}
}

// NewButton creates a released button.
func NewButton() *Button {
	return &Button{}
}

// Press drives the line to its active level. If the wake source is armed
// the wake signal fires.
func (b *Button) Press() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pressed = true
	if b.armed {
		select {
		case b.wake <- struct{}{}:
		default:
		}
	}
}

// Release returns the line to its inactive level.
func (b *Button) Release() {
	b.mu.Lock()
	b.pressed = false
	b.mu.Unlock()
}

// Pressed reports the current line level.
func (b *Button) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pressed
}

// Arm enables the wake signal and returns its channel.
func (b *Button) Arm() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wake = make(chan struct{}, 1)
	b.armed = true
	return b.wake
}

// Disarm disables the wake signal.
func (b *Button) Disarm() {
	b.mu.Lock()
	b.armed = false
	b.mu.Unlock()
}
