// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package session implements the stateful device session: the init
handshake, preset bank I/O, effect and amplifier configuration, and
tuner on/off. It owns a transport.Transport exclusively for its
lifetime and drives it with bytes built and parsed by the protocol
package.

A Session is constructed with NewSession and a set of Option functions,
following the same functional-options shape used throughout this
module's configuration surfaces. Every control operation is
synchronous and follows the write-then-acknowledge invariant: the
session always performs one receive immediately after a send, even if
the reply is discarded, so the device's acknowledgement never lingers
to contaminate the next operation.
*/
package session
