// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import "sync"

// ButtonEvent is a debounced button classification delivered to the main
// loop. An event stays pending until acknowledged; a new physical press
// replaces an unacknowledged event.
type ButtonEvent uint8

// Button events
const (
	ButtonNone ButtonEvent = iota
	ButtonShortPress
	ButtonLongPress
)

func (e ButtonEvent) String() string {
	switch e {
	case ButtonShortPress:
		return "short press"
	case ButtonLongPress:
		return "long press"
	default:
		return "none"
	}
}

type buttonState uint8

const (
	buttonIdle buttonState = iota
	buttonPressed
	buttonLongPressed
)

// Debouncer samples a single digital input once per tick period and
// classifies it into press/release/long-press events. Sampling only once
// per tick provides the debounce: a press must persist across a full tick
// period to register. Long-press detection is a down-counter so that a
// narrow counter never needs wraparound arithmetic.
//
// Sample runs in the tick context and the main loop calls Poll/Ack; the
// mutex makes each published classification atomic from the loop's view.
type Debouncer struct {
	line           ButtonLine
	longPressTicks uint8

	mu        sync.Mutex
	state     buttonState
	countdown uint8
	event     ButtonEvent
	acked     bool
}

// NewDebouncer creates a debouncer over the given input line.
// longPressTicks is the number of tick periods a press must be sustained
// before it classifies as a long press.
func NewDebouncer(line ButtonLine, longPressTicks uint8) *Debouncer {
	return &Debouncer{line: line, longPressTicks: longPressTicks, acked: true}
}

// Sample reads the input line once and advances the state machine.
// Called once per tick-timer firing.
func (d *Debouncer) Sample() {
	pressed := d.line.Pressed()

	d.mu.Lock()
	defer d.mu.Unlock()

	if !pressed {
		if d.state == buttonPressed {
			// Release after a plain press: deliver a short-press
			// event. Release after a long press is silent; the
			// long press was already delivered.
			d.event = ButtonShortPress
			d.acked = false
		}
		d.state = buttonIdle
		return
	}

	switch d.state {
	case buttonIdle:
		// New press replaces whatever was pending.
		d.state = buttonPressed
		d.countdown = d.longPressTicks
		d.event = ButtonNone
		d.acked = true
	case buttonPressed:
		if d.countdown == 0 {
			d.state = buttonLongPressed
			d.event = ButtonLongPress
			d.acked = false
		} else {
			d.countdown--
		}
	case buttonLongPressed:
		// Held past the long press; nothing more fires until release.
	}
}

// Poll returns the pending event, or ButtonNone if there is none or it has
// already been acknowledged. Poll does not consume the event.
func (d *Debouncer) Poll() ButtonEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.acked {
		return ButtonNone
	}
	return d.event
}

// Ack marks the pending event as handled so Poll stops reporting it.
func (d *Debouncer) Ack() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.acked = true
}
