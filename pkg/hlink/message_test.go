// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package hlink

import (
	"bytes"
	"testing"
)

func TestParseStore(t *testing.T) {
	data := []byte{
		0x05, 'H', 'I', 0,
		0x8C, '~', 'A', 0,
		0,
		'x', 'x', // junk past the end marker is ignored
	}
	msgs, err := ParseStore(data)
	if err != nil {
		t.Fatalf("ParseStore: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Mode.Encode() != 0x05 || !bytes.Equal(msgs[0].Body, []byte("HI")) {
		t.Errorf("message 0 = %+v", msgs[0])
	}
	if msgs[1].Mode.Encode() != 0x8C || !bytes.Equal(msgs[1].Body, []byte("~A")) {
		t.Errorf("message 1 = %+v", msgs[1])
	}
}

func TestParseStore_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"missing body terminator", []byte{0x05, 'H', 'I'}},
		{"missing end-of-store marker", []byte{0x05, 'H', 0}},
		{"empty image", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStore(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEncodeStore_RoundTrip(t *testing.T) {
	msgs := []Message{
		{Mode: DecodeMode(0x05), Body: []byte("HELLO")},
		{Mode: DecodeMode(0x8C), Body: AppendAnimation(nil, 2)},
	}
	img, err := EncodeStore(msgs, StoreSize)
	if err != nil {
		t.Fatalf("EncodeStore: %v", err)
	}
	back, err := ParseStore(img)
	if err != nil {
		t.Fatalf("ParseStore: %v", err)
	}
	if len(back) != len(msgs) {
		t.Fatalf("got %d messages back, want %d", len(back), len(msgs))
	}
	for i := range msgs {
		if back[i].Mode != msgs[i].Mode || !bytes.Equal(back[i].Body, msgs[i].Body) {
			t.Errorf("message %d = %+v, want %+v", i, back[i], msgs[i])
		}
	}
}

func TestEncodeStore_Errors(t *testing.T) {
	if _, err := EncodeStore([]Message{{Mode: Mode{}, Body: []byte("A")}}, 0); err == nil {
		t.Error("zero mode byte: expected error, got nil")
	}
	big := []Message{{Mode: DecodeMode(0x05), Body: make([]byte, StoreSize)}}
	if _, err := EncodeStore(big, StoreSize); err == nil {
		t.Error("oversized image: expected error, got nil")
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"HELLO", []byte("HELLO")},
		{"A^B", []byte("A^^B")},
		{"A~B", []byte("A~~B")},
		{"\x80", []byte{'^', 'A'}}, // extended glyph 128
		{"\x9d", []byte{0x9D}},     // shifted form would be '^^', a literal caret
		{"", nil},
	}
	for _, tt := range tests {
		got := EncodeText(tt.in)
		if !bytes.Equal(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
			t.Errorf("EncodeText(%q) = % X, want % X", tt.in, got, tt.want)
		}
	}
}

func TestAppendRaw(t *testing.T) {
	got := AppendRaw(nil, []byte{0x10, 0xFF, 0x20})
	want := []byte{DirectMode, 0x10, 0x20, DirectMode}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendRaw = % X, want % X", got, want)
	}
}
