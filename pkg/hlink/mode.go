// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import "fmt"

// Direction selects how the visible window moves across the message.
type Direction int

// Scroll directions
const (
	Forward Direction = iota
	Bidirectional
)

func (d Direction) String() string {
	if d == Bidirectional {
		return "bidirectional"
	}
	return "forward"
}

// Mode is the unpacked form of a message mode byte. It keeps the four raw
// bit fields; translation through the lookup tables happens in the
// accessor methods so that Encode can recover the original bit pattern.
type Mode struct {
	Bidirectional bool
	DelayIndex    uint8 // 0..7
	Step5         bool  // scroll increment +5 instead of +1
	SpeedIndex    uint8 // 1..7, 0 is invalid on the wire
}

// DecodeMode unpacks a mode byte into its four fields.
func DecodeMode(b byte) Mode {
	return Mode{
		Bidirectional: b&ModeDirectionBit != 0,
		DelayIndex:    (b & ModeDelayMask) >> ModeDelayShift,
		Step5:         b&ModeStepBit != 0,
		SpeedIndex:    b & ModeSpeedMask,
	}
}

// Encode packs the mode back into its wire representation.
func (m Mode) Encode() byte {
	b := (m.DelayIndex << ModeDelayShift) & ModeDelayMask
	b |= m.SpeedIndex & ModeSpeedMask
	if m.Bidirectional {
		b |= ModeDirectionBit
	}
	if m.Step5 {
		b |= ModeStepBit
	}
	return b
}

// Direction returns the scroll direction field as a Direction value.
func (m Mode) Direction() Direction {
	if m.Bidirectional {
		return Bidirectional
	}
	return Forward
}

// Increment returns the scroll step increment, +1 for text or +5 for
// column-aligned animation frames.
func (m Mode) Increment() int {
	if m.Step5 {
		return 5
	}
	return 1
}

// ScrollPeriod returns the scroll step period in tick-timer units,
// translated through SpeedTable.
func (m Mode) ScrollPeriod() uint8 {
	return SpeedTable[m.SpeedIndex&0x07]
}

// RepetitionDelay returns the pause between scrolling repetitions in
// scroll steps, translated through DelayTable.
func (m Mode) RepetitionDelay() uint8 {
	return DelayTable[m.DelayIndex&0x07]
}

func (m Mode) String() string {
	return fmt.Sprintf("%s speed=%d delay=%d step=+%d",
		m.Direction(), m.SpeedIndex, m.DelayIndex, m.Increment())
}
