// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import "errors"

// ErrNoDevice is returned by Open when no device matching the vendor id
// and any candidate product id could be found.
var ErrNoDevice = errors.New("transport: no matching USB device found")

// ErrClosed is returned by Send and Receive when called on a Transport
// that is not open.
var ErrClosed = errors.New("transport: not open")
