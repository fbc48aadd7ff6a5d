// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/glintwerk/pendant/pkg/hlink"
)

func TestPlayMessage_Text(t *testing.T) {
	d, disp := newTestDevice(storeWith([]byte{0x05, 'H', 'I', 0, 0}))

	next := d.playMessage(0)

	want := []string{
		"scrolling inc=1 dir=forward delay=0",
		"clear",
		"char 72",
		"byte 0",
		"char 73",
	}
	if !reflect.DeepEqual(disp.ops, want) {
		t.Errorf("display ops = %v, want %v", disp.ops, want)
	}
	if next != 0 {
		t.Errorf("next address = %d, want 0 (wrap to store start)", next)
	}
}

func TestPlayMessage_AdvancesToNextMessage(t *testing.T) {
	d, _ := newTestDevice(storeWith([]byte{
		0x05, 'A', 0,
		0x86, 'B', 0,
		0,
	}))

	if next := d.playMessage(0); next != 3 {
		t.Fatalf("next after first message = %d, want 3", next)
	}
	if next := d.playMessage(3); next != 0 {
		t.Errorf("next after last message = %d, want 0", next)
	}
}

func TestPlayMessage_ModeApplied(t *testing.T) {
	// 0x8C = bidirectional, step +5, speed index 4, delay index 0
	d, disp := newTestDevice(storeWith([]byte{0x8C, 'A', 0, 0}))

	d.playMessage(0)

	if disp.ops[0] != "scrolling inc=5 dir=bidirectional delay=0" {
		t.Errorf("scrolling op = %q", disp.ops[0])
	}
	if d.scroll.period != 16 {
		t.Errorf("scroll period = %d, want 16 (speed index 4)", d.scroll.period)
	}
}

func TestPlayMessage_Escapes(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want []string
	}{
		{
			name: "doubled animation introducer prints a literal tilde",
			body: []byte{'~', '~'},
			want: []string{"char 126"},
		},
		{
			name: "doubled special introducer prints a literal caret",
			body: []byte{'^', '^'},
			want: []string{"char 94"},
		},
		{
			name: "special escape shifts into the extended glyph range",
			body: []byte{'^', 'A'},
			want: []string{"char 128"},
		},
		{
			name: "animation selector plays by index",
			body: []byte{'~', 'B'},
			want: []string{"anim 1"},
		},
		{
			name: "out of range animation is skipped",
			body: []byte{'~', 'Z', 'X'},
			want: []string{"byte 0", "char 88"},
		},
		{
			name: "direct mode passes raw columns through",
			body: []byte{0xFF, 0x10, 0x20, 0xFF},
			want: []string{"byte 16", "byte 32"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := append([]byte{0x05}, tt.body...)
			content = append(content, 0, 0)
			d, disp := newTestDevice(storeWith(content))

			d.playMessage(0)

			got := disp.ops[2:] // after the scrolling and clear ops
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("display ops = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayMessage_EncodedTextRoundTrips(t *testing.T) {
	// Every byte EncodeText can represent must come back out of the
	// player as itself, the glyph whose escape collides with the
	// doubled-caret literal (157) included. 0xFF is the direct-mode
	// marker and has no text representation.
	for c := 0x20; c <= 0xFE; c++ {
		body := hlink.EncodeText(string([]byte{byte(c)}))

		content := append([]byte{0x05}, body...)
		content = append(content, 0, 0)
		d, disp := newTestDevice(storeWith(content))
		d.playMessage(0)

		var chars []byte
		for _, op := range disp.ops[2:] {
			var v int
			if n, _ := fmt.Sscanf(op, "char %d", &v); n == 1 {
				chars = append(chars, byte(v))
			}
		}
		if len(chars) != 1 || chars[0] != byte(c) {
			t.Errorf("byte 0x%02X: played back as % X (body % X)", c, chars, body)
		}
	}
}

func TestPlayMessage_NarrowSpaceBetweenGlyphsOnly(t *testing.T) {
	d, disp := newTestDevice(storeWith([]byte{0x05, 'A', 'B', 'C', 0, 0}))

	d.playMessage(0)

	want := []string{"char 65", "byte 0", "char 66", "byte 0", "char 67"}
	if !reflect.DeepEqual(disp.ops[2:], want) {
		t.Errorf("display ops = %v, want %v", disp.ops[2:], want)
	}
}

func TestPlayMessage_EmptyBody(t *testing.T) {
	d, disp := newTestDevice(storeWith([]byte{0x05, 0, 0}))

	next := d.playMessage(0)

	if len(disp.ops) != 2 || disp.ops[1] != "clear" {
		t.Errorf("display ops = %v, want scrolling + clear only", disp.ops)
	}
	if next != 0 {
		t.Errorf("next address = %d, want 0", next)
	}
}
