// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import "time"

// Statistics tracks link and control-loop activity counters. The device
// updates them under its mutex; Device.Stats returns a copy.
type Statistics struct {
	StartTime time.Time

	// Serial link
	BytesReceived      uint64
	FramingErrors      uint64 // dropped by the transport before the state machine
	BytesProgrammed    uint64
	MessagesTerminated uint64 // terminator bytes written in programming mode
	Resets             uint64
	ModeSets           uint64

	// Control loop
	MessagesPlayed uint64
	ShortPresses   uint64
	LongPresses    uint64
}
