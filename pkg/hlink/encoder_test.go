// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import (
	"bytes"
	"testing"
)

func TestProgramStream(t *testing.T) {
	msgs := []Message{{Mode: DecodeMode(0x05), Body: []byte("HI")}}
	got, err := ProgramStream(msgs)
	if err != nil {
		t.Fatalf("ProgramStream: %v", err)
	}
	want := []byte{
		'H', 'L', // handshake
		'$', '0', '5', hexTerminator, // mode byte
		'H', 'I',
		'\r', // message terminator
		'\r', // end-of-store marker
	}
	if !bytes.Equal(got, want) {
		t.Errorf("stream = % X\nwant % X", got, want)
	}
}

func TestProgramStream_Escaping(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want []byte
	}{
		{
			name: "introducers go through hex runs",
			body: []byte{'^', '$'},
			want: []byte{'$', '5', 'E', hexTerminator, '$', '2', '4', hexTerminator},
		},
		{
			name: "extended glyph uses the special escape",
			body: []byte{0x80},
			want: []byte{'^', 'A'},
		},
		{
			name: "raw column bytes go through hex runs",
			body: []byte{0xFF, 0x7F, 0xFF},
			want: []byte{
				'$', 'F', 'F', hexTerminator,
				'$', '7', 'F', hexTerminator,
				'$', 'F', 'F', hexTerminator,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := ProgramStream([]Message{{Mode: DecodeMode(0x05), Body: tt.body}})
			if err != nil {
				t.Fatalf("ProgramStream: %v", err)
			}
			// strip handshake, mode byte, and the two CRs
			got := stream[6 : len(stream)-2]
			if !bytes.Equal(got, tt.want) {
				t.Errorf("body encoding = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestProgramStream_RejectsZeroMode(t *testing.T) {
	if _, err := ProgramStream([]Message{{Mode: Mode{}, Body: []byte("A")}}); err == nil {
		t.Error("expected error for zero mode byte, got nil")
	}
}

func TestWithReset(t *testing.T) {
	got := WithReset([]byte{'H', 'L'})
	want := []byte{Abort, 'H', 'L'}
	if !bytes.Equal(got, want) {
		t.Errorf("WithReset = % X, want % X", got, want)
	}
}

func TestDisplayStream(t *testing.T) {
	got := DisplayStream(DecodeMode(0x05), "HI")
	want := []byte{'H', 'D', 0x05, 'H', 'I'}
	if !bytes.Equal(got, want) {
		t.Errorf("DisplayStream = % X, want % X", got, want)
	}
}
