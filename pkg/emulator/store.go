// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

// Package emulator provides software implementations of the pendant's
// hardware collaborators: the message store, the dot-matrix display with
// its 5x7 font and canned animations, and the button/wake line.
package emulator

import (
	"fmt"
	"sync"
)

// Store is an in-memory message store. Addresses wrap modulo the store
// size, matching EEPROM address behavior on the real part.
type Store struct {
	mu   sync.Mutex
	data []byte
}

// NewStore creates a zero-filled store of the given size in bytes.
func NewStore(size int) *Store {
	if size <= 0 {
		size = 1
	}
	return &Store{data: make([]byte, size)}
}

func (s *Store) ReadByte(addr int) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[s.wrap(addr)]
}

func (s *Store) WriteByte(addr int, b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.wrap(addr)] = b
}

func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Snapshot returns a copy of the store contents.
func (s *Store) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// Load replaces the store contents, zero-filling past the image end.
func (s *Store) Load(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(data) > len(s.data) {
		return fmt.Errorf("image is %d bytes, store holds %d", len(data), len(s.data))
	}
	copy(s.data, data)
	for i := len(data); i < len(s.data); i++ {
		s.data[i] = 0
	}
	return nil
}

func (s *Store) wrap(addr int) int {
	addr %= len(s.data)
	if addr < 0 {
		addr += len(s.data)
	}
	return addr
}
