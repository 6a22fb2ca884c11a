// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package transport provides the USB interrupt transport that carries the
Mustang wire protocol, and a Transport interface that the session and
tuner packages depend on instead of a concrete USB implementation.

USBTransport is built on github.com/google/gousb. Opening tries a fixed
vendor id against a candidate list of product ids, in order; the first
PID that yields a device wins. The kernel driver on interface 0 is
detached (gousb's auto-detach), the interface is claimed, and every exit
path - including a failed claim - releases whatever was acquired.
*/
package transport
