// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import "github.com/glintwerk/pendant/pkg/hlink"

// playMessage renders the message starting at addr and returns the address
// playback should resume from: the following message's start, or the store
// start when the following mode byte is the end-of-store marker.
//
// Called with the device mutex held. The decoder trusts store content
// produced by the programming state machine; a missing terminator is a
// programming-side invariant violation, not a runtime-checked condition.
func (d *Device) playMessage(addr int) int {
	d.applyMode(hlink.DecodeMode(d.store.ReadByte(addr)))
	addr++
	d.disp.Clear()

	ch := d.store.ReadByte(addr)
	addr++
	for ch != 0 {
		switch ch {
		case hlink.Animation:
			ch = d.store.ReadByte(addr)
			addr++
			if ch == hlink.Animation {
				d.disp.PrintChar(ch)
			} else {
				idx := int(ch) - hlink.AnimationBase
				if idx >= 0 && idx < d.disp.Animations() {
					d.disp.PlayAnimation(idx)
				}
			}

		case hlink.DirectMode:
			ch = d.store.ReadByte(addr)
			addr++
			for ch != hlink.DirectMode {
				d.disp.PrintByte(ch)
				ch = d.store.ReadByte(addr)
				addr++
			}

		default:
			if ch == hlink.SpecialChar {
				ch = d.store.ReadByte(addr)
				addr++
				if ch != hlink.SpecialChar {
					ch += hlink.SpecialShift
				}
			}
			d.disp.PrintChar(ch)
		}

		ch = d.store.ReadByte(addr)
		addr++
		if ch != 0 {
			// narrow space between glyphs, none after the last
			d.disp.PrintByte(0)
		}
	}

	if d.store.ReadByte(addr) != 0 {
		return addr
	}
	return 0
}
