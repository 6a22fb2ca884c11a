// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import "sync"

// FakeTransport is an in-memory Transport for tests. Sent frames are
// recorded in Sent; frames queued in RecvQueue are handed out one per
// Receive call. Once RecvQueue is exhausted, Receive returns an empty
// slice, exactly like a real timeout.
type FakeTransport struct {
	mu         sync.Mutex
	open       bool
	closeCount int

	Sent      [][]byte
	RecvQueue [][]byte
}

// NewFakeTransport returns an open FakeTransport.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{open: true}
}

// Send implements Transport.
func (f *FakeTransport) Send(data []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.open {
		return 0, ErrClosed
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.Sent = append(f.Sent, cp)
	return len(data), nil
}

// Receive implements Transport.
func (f *FakeTransport) Receive(n int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.open {
		return nil, ErrClosed
	}
	if len(f.RecvQueue) == 0 {
		return nil, nil
	}
	next := f.RecvQueue[0]
	f.RecvQueue = f.RecvQueue[1:]
	if len(next) > n {
		next = next[:n]
	}
	return next, nil
}

// IsOpen implements Transport.
func (f *FakeTransport) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Close implements Transport.
func (f *FakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.closeCount++
	return nil
}

// CloseCount returns the number of times Close has been called, to
// verify idempotent-close behavior in tests.
func (f *FakeTransport) CloseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeCount
}

// Queue appends frames to RecvQueue for a subsequent Receive to return.
func (f *FakeTransport) Queue(frames ...[]byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RecvQueue = append(f.RecvQueue, frames...)
}
