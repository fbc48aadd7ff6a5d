// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import (
	"context"
	"time"

	"github.com/glintwerk/pendant/pkg/hlink"
)

// sleep enters the halted power state: clear the display, hold briefly so
// the blanking is visible, arm the wake source, and suspend until it fires
// or the context ends. On wake it shows the confirmation glyph and resumes
// playback from the store start. Returns false when the context ended.
func (d *Device) sleep(ctx context.Context) bool {
	d.disp.Clear()
	if !d.hold(ctx, d.cfg.SleepDelay) {
		return false
	}

	wake := d.wake.Arm()
	select {
	case <-wake:
	case <-ctx.Done():
		d.wake.Disarm()
		return false
	}
	d.wake.Disarm()

	d.disp.PrintChar(hlink.GlyphHappy)
	if !d.hold(ctx, d.cfg.WakeDelay) {
		return false
	}

	d.mu.Lock()
	d.msgCursor = d.playMessage(0)
	d.stats.MessagesPlayed++
	d.mu.Unlock()
	return true
}

// hold pauses the control loop for the given duration. Returns false when
// the context ended first.
func (d *Device) hold(ctx context.Context, dur time.Duration) bool {
	if dur <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
