// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import "fmt"

// Message is the host-side view of one stored message: a mode byte and a
// raw body. The body keeps escape sequences unexpanded so that EncodeStore
// reproduces the exact wire bytes.
type Message struct {
	Mode Mode
	Body []byte
}

// ParseStore walks a store image and returns the messages it contains.
// The image is a sequence of [mode byte, body..., 0] records terminated by
// a mode byte of 0 where a message start is expected. A missing body
// terminator is an error; the device itself trusts its store (only the
// programming state machine writes it), but host-side images can come from
// anywhere.
func ParseStore(data []byte) ([]Message, error) {
	var msgs []Message
	i := 0
	for i < len(data) {
		mode := data[i]
		if mode == 0 {
			return msgs, nil
		}
		i++
		start := i
		for {
			if i >= len(data) {
				return nil, fmt.Errorf("message %d at offset %d has no terminator", len(msgs), start-1)
			}
			if data[i] == 0 {
				break
			}
			i++
		}
		body := make([]byte, i-start)
		copy(body, data[start:i])
		msgs = append(msgs, Message{Mode: DecodeMode(mode), Body: body})
		i++
	}
	return nil, fmt.Errorf("store image has no end-of-store marker")
}

// EncodeStore builds a store image from messages, including the trailing
// end-of-store marker. Returns an error if the image would not fit in
// maxSize bytes (pass 0 for no limit) or if a message encodes an invalid
// mode byte of 0.
func EncodeStore(msgs []Message, maxSize int) ([]byte, error) {
	var out []byte
	for i, m := range msgs {
		b := m.Mode.Encode()
		if b == 0 {
			return nil, fmt.Errorf("message %d: mode byte encodes to 0 (end-of-store marker)", i)
		}
		out = append(out, b)
		out = append(out, m.Body...)
		out = append(out, 0)
	}
	out = append(out, 0)
	if maxSize > 0 && len(out) > maxSize {
		return nil, fmt.Errorf("store image is %d bytes, exceeds %d", len(out), maxSize)
	}
	return out, nil
}

// EncodeText converts text into message body bytes. The escape introducers
// '^' and '~' are doubled so they come out literal, and bytes in the
// extended glyph range are emitted as a special-character escape where the
// shifted byte is printable.
func EncodeText(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == SpecialChar:
			out = append(out, SpecialChar, SpecialChar)
		case c == Animation:
			out = append(out, Animation, Animation)
		case c == SpecialChar+SpecialShift:
			// The escape for this glyph would be a doubled caret, which
			// plays back as a literal '^'. The raw byte is not an
			// introducer, so it can go in as-is.
			out = append(out, c)
		case c >= 128 && c-SpecialShift >= ' ' && c-SpecialShift < 127:
			out = append(out, SpecialChar, c-SpecialShift)
		default:
			out = append(out, c)
		}
	}
	return out
}

// AppendAnimation appends an animation selector for the given index to a
// message body.
func AppendAnimation(body []byte, index int) []byte {
	return append(body, Animation, byte(AnimationBase+index))
}

// AppendRaw appends a direct-mode pixel run to a message body. Raw bytes
// equal to the DirectMode marker cannot be represented and are skipped.
func AppendRaw(body []byte, columns []byte) []byte {
	body = append(body, DirectMode)
	for _, c := range columns {
		if c == DirectMode {
			continue
		}
		body = append(body, c)
	}
	return append(body, DirectMode)
}
