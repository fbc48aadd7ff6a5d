// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Mira Voss, Glintwerk

package pendant

import (
	"fmt"

	"github.com/glintwerk/pendant/pkg/hlink"
)

// recDisplay records drawing operations for assertions.
type recDisplay struct {
	ops        []string
	animations int
}

func newRecDisplay() *recDisplay {
	return &recDisplay{animations: 3}
}

func (r *recDisplay) Clear()        { r.ops = append(r.ops, "clear") }
func (r *recDisplay) PrintChar(c byte) {
	r.ops = append(r.ops, fmt.Sprintf("char %d", c))
}
func (r *recDisplay) PrintByte(b byte) {
	r.ops = append(r.ops, fmt.Sprintf("byte %d", b))
}
func (r *recDisplay) PlayAnimation(index int) {
	r.ops = append(r.ops, fmt.Sprintf("anim %d", index))
}
func (r *recDisplay) Animations() int { return r.animations }
func (r *recDisplay) SetScrolling(increment int, dir hlink.Direction, repetitionDelay uint8) {
	r.ops = append(r.ops, fmt.Sprintf("scrolling inc=%d dir=%s delay=%d", increment, dir, repetitionDelay))
}
func (r *recDisplay) Scroll()  { r.ops = append(r.ops, "scroll") }
func (r *recDisplay) Refresh() {}

// tail returns the last n recorded operations.
func (r *recDisplay) tail(n int) []string {
	if n > len(r.ops) {
		n = len(r.ops)
	}
	return r.ops[len(r.ops)-n:]
}

// fakeStore is a byte-slice store with wrapping addresses.
type fakeStore struct {
	data []byte
}

func newFakeStore(size int) *fakeStore {
	return &fakeStore{data: make([]byte, size)}
}

func storeWith(content []byte) *fakeStore {
	s := newFakeStore(64)
	copy(s.data, content)
	return s
}

func (s *fakeStore) ReadByte(addr int) byte     { return s.data[addr%len(s.data)] }
func (s *fakeStore) WriteByte(addr int, b byte) { s.data[addr%len(s.data)] = b }
func (s *fakeStore) Size() int                  { return len(s.data) }

// fakeLine is a ButtonLine driven directly by tests.
type fakeLine struct {
	pressed bool
}

func (l *fakeLine) Pressed() bool { return l.pressed }

// newTestDevice builds a device over recording fakes, without running its
// control loop.
func newTestDevice(store Store) (*Device, *recDisplay) {
	disp := newRecDisplay()
	line := &fakeLine{}
	d := New(DefaultConfig(), disp, store, line, nopWake{})
	return d, disp
}

type nopWake struct{}

func (nopWake) Arm() <-chan struct{} { return make(chan struct{}) }
func (nopWake) Disarm()              {}

// feed runs a byte sequence through the protocol state machine.
func feed(d *Device, bytes ...byte) {
	for _, b := range bytes {
		d.Receive(b)
	}
}
