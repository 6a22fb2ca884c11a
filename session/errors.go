// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"errors"
	"fmt"
)

// Kind tags an Error with one of the three error categories the
// protocol's error-handling design calls for.
type Kind int

const (
	// KindTransport means the device is absent, could not be claimed,
	// or a transfer failed for a reason other than timeout.
	KindTransport Kind = iota
	// KindProtocolMisuse means the caller asked for something the
	// protocol does not allow, such as saving a non-modulation effect
	// into an effect bank.
	KindProtocolMisuse
	// KindNotConnected means a Session method was called before a
	// successful Start.
	KindNotConnected
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocolMisuse:
		return "protocol misuse"
	case KindNotConnected:
		return "not connected"
	default:
		return "unknown"
	}
}

// Error is the single tagged error variant surfaced at the Session's
// public boundary.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("session: %s: %s", e.Op, e.Kind)
}

// Unwrap allows errors.Is and errors.As to see through to the
// underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

func misuseErr(op string, err error) error {
	return &Error{Kind: KindProtocolMisuse, Op: op, Err: err}
}

func notConnectedErr(op string) error {
	return &Error{Kind: KindNotConnected, Op: op, Err: ErrNotConnected}
}

// ErrNotConnected is wrapped by every KindNotConnected Error.
var ErrNotConnected = errors.New("session: not connected")

// ErrShortPresetStream is wrapped by a KindTransport Error returned from
// Start when the device's load-command reply stream ended before
// delivering the 7 frames that follow the preset-name catalog. The
// source this protocol was recovered from indexes max_to_receive+7
// frames without checking the stream was actually that long; this
// session refuses to read out of bounds and reports the shortfall
// instead.
var ErrShortPresetStream = errors.New("session: device returned fewer frames than expected while loading the preset catalog")
