// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

// Transport is the abstraction the session and tuner packages use to
// talk to a device. A Transport exchanges fixed-length buffers; it does
// not know anything about the Mustang wire protocol.
type Transport interface {
	// Send performs one outbound transfer and returns the number of
	// bytes the stack accepted, which may be less than len(data).
	Send(data []byte) (int, error)

	// Receive performs one inbound transfer and returns at most n
	// bytes. A timeout is not an error: it returns an empty slice and a
	// nil error.
	Receive(n int) ([]byte, error)

	// IsOpen reports whether the transport currently holds an open
	// device handle.
	IsOpen() bool

	// Close is idempotent: calling it on an already-closed Transport is
	// a no-op that returns nil.
	Close() error
}

// Opener is implemented by a Transport that can open a real device by
// trying a candidate list of USB product ids in order against a fixed
// vendor id. USBTransport implements this; FakeTransport does not need
// to, since tests construct it already open.
type Opener interface {
	Transport
	Open(pids []uint16) error
}
