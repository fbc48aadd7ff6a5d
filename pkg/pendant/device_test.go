// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// firingWake wakes immediately whenever armed.
type firingWake struct{ ch chan struct{} }

func newFiringWake() firingWake {
	ch := make(chan struct{})
	close(ch)
	return firingWake{ch: ch}
}

func (w firingWake) Arm() <-chan struct{} { return w.ch }
func (w firingWake) Disarm()              {}

// atomicLine is a ButtonLine safe to drive from the test goroutine while
// the control loop samples it.
type atomicLine struct{ pressed atomic.Bool }

func (l *atomicLine) Pressed() bool { return l.pressed.Load() }

func fastConfig(longPressTicks uint8) Config {
	return Config{
		FramePeriod:    time.Millisecond,
		TickPeriod:     time.Millisecond,
		LongPressTicks: longPressTicks,
		SleepDelay:     0,
		WakeDelay:      0,
	}
}

func startDevice(t *testing.T, cfg Config, store Store) (*Device, *recDisplay, *atomicLine, func() *recDisplay) {
	t.Helper()
	disp := newRecDisplay()
	line := &atomicLine{}
	dev := New(cfg, disp, store, line, newFiringWake())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- dev.Run(ctx) }()

	// stop cancels the loop and hands the display back once the loop has
	// exited and can no longer touch it.
	stop := func() *recDisplay {
		cancel()
		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Run returned %v, want context.Canceled", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("control loop did not stop")
		}
		return disp
	}
	t.Cleanup(func() { cancel() })
	return dev, disp, line, stop
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestDeviceRun_WakeSplashPlaysFirstMessage(t *testing.T) {
	dev, _, _, stop := startDevice(t, fastConfig(200), storeWith([]byte{0x05, 'H', 'I', 0, 0}))

	waitFor(t, "first message", func() bool { return dev.Stats().MessagesPlayed >= 1 })

	st := dev.Status()
	if st.MessageCursor != 0 {
		t.Errorf("message cursor = %d, want 0 (single message wraps)", st.MessageCursor)
	}

	disp := stop()
	var sawWakeGlyph bool
	for _, op := range disp.ops {
		if op == "char 131" {
			sawWakeGlyph = true
			break
		}
	}
	if !sawWakeGlyph {
		t.Errorf("wake-up glyph never shown; ops = %v", disp.ops)
	}
}

func TestDeviceRun_ShortPressAdvancesPlayback(t *testing.T) {
	dev, _, line, stop := startDevice(t, fastConfig(200), storeWith([]byte{
		0x05, 'A', 0,
		0x05, 'B', 0,
		0,
	}))
	defer stop()

	waitFor(t, "startup splash", func() bool { return dev.Stats().MessagesPlayed >= 1 })
	if st := dev.Status(); st.MessageCursor != 3 {
		t.Fatalf("cursor after splash = %d, want 3", st.MessageCursor)
	}

	line.pressed.Store(true)
	time.Sleep(20 * time.Millisecond)
	line.pressed.Store(false)

	waitFor(t, "short press playback", func() bool { return dev.Stats().ShortPresses >= 1 })
	waitFor(t, "second message", func() bool { return dev.Stats().MessagesPlayed >= 2 })
	if st := dev.Status(); st.MessageCursor != 0 {
		t.Errorf("cursor after second message = %d, want 0 (wrapped)", st.MessageCursor)
	}
}

func TestDeviceRun_LongPressSleepsAndWakes(t *testing.T) {
	dev, _, line, stop := startDevice(t, fastConfig(5), storeWith([]byte{0x05, 'A', 0, 0}))

	waitFor(t, "startup splash", func() bool { return dev.Stats().MessagesPlayed >= 1 })

	line.pressed.Store(true)
	waitFor(t, "long press", func() bool { return dev.Stats().LongPresses >= 1 })
	// the wake source fires immediately, so the loop resumes playback
	waitFor(t, "wake after sleep", func() bool { return dev.Stats().MessagesPlayed >= 2 })
	line.pressed.Store(false)

	disp := stop()
	var sawSleepGlyph bool
	for _, op := range disp.ops {
		if op == "char 130" {
			sawSleepGlyph = true
			break
		}
	}
	if !sawSleepGlyph {
		t.Errorf("sleep glyph never shown; ops = %v", disp.ops)
	}
}
