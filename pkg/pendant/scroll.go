// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

// scrollEngine paces the display's scroll steps. On each tick-timer firing
// it counts down the current scroll period; on expiry it re-arms and asks
// the display for one scroll step. Accessed only with the device mutex
// held: the run loop ticks it and the serial path retunes it on mode
// changes.
type scrollEngine struct {
	period    uint8 // tick periods per scroll step
	countdown uint8
}

// setPeriod applies a new scroll step period without resetting the
// mid-scroll position; a message restart clears position through the full
// display clear that precedes it.
func (s *scrollEngine) setPeriod(p uint8) {
	s.period = p
}

func (s *scrollEngine) tick(disp Display) {
	if s.countdown > 0 {
		s.countdown--
		return
	}
	s.countdown = s.period
	disp.Scroll()
}
