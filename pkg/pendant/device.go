// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import (
	"context"
	"sync"
	"time"

	"github.com/glintwerk/pendant/pkg/hlink"
)

// Config holds the timebase periods and the few fixed delays of the
// control core.
type Config struct {
	FramePeriod    time.Duration // display refresh
	TickPeriod     time.Duration // scroll stepping + button sampling
	LongPressTicks uint8         // tick periods before a press is a long press
	SleepDelay     time.Duration // display-off hold before halting
	WakeDelay      time.Duration // confirmation glyph hold
}

// DefaultConfig returns the timing the pendant hardware runs at: a 2 ms
// frame tick for column multiplexing and a 30 ms system tick.
func DefaultConfig() Config {
	return Config{
		FramePeriod:    2 * time.Millisecond,
		TickPeriod:     30 * time.Millisecond,
		LongPressTicks: 66, // ~2 s
		SleepDelay:     time.Second,
		WakeDelay:      500 * time.Millisecond,
	}
}

// Device is one pendant: the single-threaded control loop plus the
// serial protocol state machine that runs asynchronously to it. Shared
// state crossing that boundary (cursors, protocol state, scroll pacing,
// statistics) lives behind one mutex so either side always observes
// fully-formed values.
type Device struct {
	cfg    Config
	disp   Display
	store  Store
	wake   WakeSource
	button *Debouncer

	mu          sync.Mutex
	proto       protoState
	hexVal      uint8
	msgCursor   int // where playback resumes
	writeCursor int // where the next programmed byte lands
	mode        hlink.Mode
	scroll      scrollEngine
	stats       Statistics
}

// New creates a device over its collaborators. The scroll engine starts at
// the power-up default period; everything else starts zeroed.
func New(cfg Config, disp Display, store Store, line ButtonLine, wake WakeSource) *Device {
	d := &Device{
		cfg:    cfg,
		disp:   disp,
		store:  store,
		wake:   wake,
		button: NewDebouncer(line, cfg.LongPressTicks),
	}
	d.scroll.setPeriod(hlink.DefaultScrollPeriod)
	d.stats.StartTime = time.Now()
	return d
}

// Run drives the device until the context ends. It owns the two timebase
// signals: the frame ticker refreshes the display and the tick ticker
// drives button sampling and scroll stepping, after which button events
// are polled. Power-up runs the halted-entry/exit sequence once as a
// startup splash, so the device shows nothing until the first wake signal.
func (d *Device) Run(ctx context.Context) error {
	if !d.sleep(ctx) {
		return ctx.Err()
	}
	d.button.Ack()

	frame := time.NewTicker(d.cfg.FramePeriod)
	defer frame.Stop()
	tick := time.NewTicker(d.cfg.TickPeriod)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-frame.C:
			d.disp.Refresh()

		case <-tick.C:
			d.mu.Lock()
			d.scroll.tick(d.disp)
			d.mu.Unlock()
			d.button.Sample()

			switch d.button.Poll() {
			case ButtonShortPress:
				d.mu.Lock()
				d.msgCursor = d.playMessage(d.msgCursor)
				d.stats.MessagesPlayed++
				d.stats.ShortPresses++
				d.mu.Unlock()
				d.button.Ack()

			case ButtonLongPress:
				d.mu.Lock()
				d.stats.LongPresses++
				d.mu.Unlock()
				d.disp.Clear()
				d.disp.PrintChar(hlink.GlyphSad)
				if !d.hold(ctx, d.cfg.WakeDelay) {
					return ctx.Err()
				}
				if !d.sleep(ctx) {
					return ctx.Err()
				}
				d.button.Ack()
			}
		}
	}
}

// applyMode installs a freshly decoded display mode: scroll direction,
// increment, and repetition delay go to the display, the translated speed
// retunes the scroll engine. Called with the device mutex held.
func (d *Device) applyMode(m hlink.Mode) {
	d.disp.SetScrolling(m.Increment(), m.Direction(), m.RepetitionDelay())
	d.scroll.setPeriod(m.ScrollPeriod())
	d.mode = m
	d.stats.ModeSets++
}

// Status is a consistent snapshot of the device's externally useful state.
type Status struct {
	Mode              hlink.Mode
	MessageCursor     int
	ProgrammingCursor int
	Protocol          string
	Stats             Statistics
}

// Status returns a snapshot of mode, cursors, protocol state, and
// statistics.
func (d *Device) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{
		Mode:              d.mode,
		MessageCursor:     d.msgCursor,
		ProgrammingCursor: d.writeCursor,
		Protocol:          d.proto.String(),
		Stats:             d.stats,
	}
}

// Stats returns a copy of the activity counters.
func (d *Device) Stats() Statistics {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}
