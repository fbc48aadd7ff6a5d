// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import (
	"fmt"
	"strings"
)

// FormatStore formats a parsed store image into a human-readable listing.
func FormatStore(data []byte) (string, error) {
	msgs, err := ParseStore(data)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	used := 1 // end-of-store marker
	for _, m := range msgs {
		used += len(m.Body) + 2
	}
	sb.WriteString(fmt.Sprintf("%d message(s), %d byte(s) used\n", len(msgs), used))
	for i, m := range msgs {
		sb.WriteString(FormatMessage(i, m))
	}
	return sb.String(), nil
}

// FormatMessage formats one message as an index, its decoded mode fields,
// and the body with escape sequences expanded into readable placeholders.
func FormatMessage(index int, m Message) string {
	return fmt.Sprintf("[%d] mode=0x%02X (%s)\n    %s\n",
		index, m.Mode.Encode(), m.Mode, FormatBody(m.Body))
}

// FormatBody expands a message body the way the player interprets it:
// doubled introducers become literals, special characters show their glyph
// code, animations and raw runs become placeholders.
func FormatBody(body []byte) string {
	var sb strings.Builder
	i := 0
	for i < len(body) {
		c := body[i]
		i++
		switch c {
		case Animation:
			if i < len(body) && body[i] == Animation {
				sb.WriteByte(Animation)
				i++
			} else if i < len(body) {
				sb.WriteString(fmt.Sprintf("<anim %d>", int(body[i])-AnimationBase))
				i++
			} else {
				sb.WriteString("<anim ?>")
			}
		case DirectMode:
			n := 0
			for i < len(body) && body[i] != DirectMode {
				n++
				i++
			}
			if i < len(body) {
				i++ // closing marker
			}
			sb.WriteString(fmt.Sprintf("<raw %d col(s)>", n))
		case SpecialChar:
			if i < len(body) && body[i] == SpecialChar {
				sb.WriteByte(SpecialChar)
				i++
			} else if i < len(body) {
				sb.WriteString(fmt.Sprintf("<glyph %d>", int(body[i])+SpecialShift))
				i++
			} else {
				sb.WriteString("<glyph ?>")
			}
		default:
			if c >= ' ' && c < 127 {
				sb.WriteByte(c)
			} else {
				sb.WriteString(fmt.Sprintf("<0x%02X>", c))
			}
		}
	}
	return sb.String()
}
