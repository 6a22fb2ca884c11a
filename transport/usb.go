// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/gousb"
)

// transferTimeout is the interrupt transfer timeout mandated by the
// protocol for both directions.
const transferTimeout = 500 * time.Millisecond

// USBTransport is a Transport backed by a real USB interrupt endpoint
// pair, opened through gousb.
type USBTransport struct {
	log *log.Logger

	mu   sync.Mutex
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint
	in   *gousb.InEndpoint
}

// NewUSBTransport returns a closed USBTransport. Logger may be nil, in
// which case a logger writing to stderr is used.
func NewUSBTransport(logger *log.Logger) *USBTransport {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &USBTransport{log: logger}
}

// Open tries, in order, every pid in pids against the fixed Fender
// vendor id. The first pid that yields a device wins. If the kernel
// already bound a driver to interface 0, it is detached; interface 0 is
// then claimed. Any failure after a partial acquisition releases
// whatever was acquired before returning.
func (t *USBTransport) Open(pids []uint16) (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dev != nil {
		return errors.New("transport: already open")
	}
	if len(pids) == 0 {
		pids = DefaultPIDs
	}

	ctx := gousb.NewContext()
	defer func() {
		if err != nil {
			ctx.Close()
		}
	}()

	var dev *gousb.Device
	for _, pid := range pids {
		d, openErr := ctx.OpenDeviceWithVIDPID(gousb.ID(FenderVID), gousb.ID(pid))
		if openErr != nil {
			t.log.Debug("open attempt failed", "pid", pid, "err", openErr)
			continue
		}
		if d != nil {
			dev = d
			t.log.Info("opened device", "vid", FenderVID, "pid", pid)
			break
		}
	}
	if dev == nil {
		return fmt.Errorf("transport: open: %w", ErrNoDevice)
	}
	defer func() {
		if err != nil {
			dev.Close()
		}
	}()

	dev.SetAutoDetach(true)

	cfg, err := dev.Config(usbConfigNum)
	if err != nil {
		return fmt.Errorf("transport: set config: %w", err)
	}
	defer func() {
		if err != nil {
			cfg.Close()
		}
	}()

	intf, err := cfg.Interface(interfaceNum, alternateNum)
	if err != nil {
		return fmt.Errorf("transport: claim interface: %w", err)
	}
	defer func() {
		if err != nil {
			intf.Close()
		}
	}()

	out, err := intf.OutEndpoint(outEndpoint)
	if err != nil {
		return fmt.Errorf("transport: open out endpoint: %w", err)
	}
	in, err := intf.InEndpoint(inEndpoint)
	if err != nil {
		return fmt.Errorf("transport: open in endpoint: %w", err)
	}

	t.ctx, t.dev, t.cfg, t.intf, t.out, t.in = ctx, dev, cfg, intf, out, in
	return nil
}

// Send implements Transport.
func (t *USBTransport) Send(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.out == nil {
		return 0, ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), transferTimeout)
	defer cancel()

	n, err := t.out.WriteContext(ctx, data)
	if err != nil {
		return n, fmt.Errorf("transport: send: %w", err)
	}
	return n, nil
}

// Receive implements Transport. A transfer that times out is not an
// error: it returns an empty slice.
func (t *USBTransport) Receive(n int) ([]byte, error) {
	t.mu.Lock()
	in := t.in
	t.mu.Unlock()

	if in == nil {
		return nil, ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), transferTimeout)
	defer cancel()

	buf := make([]byte, n)
	got, err := in.ReadContext(ctx, buf)
	if err != nil {
		if isTimeout(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("transport: receive: %w", err)
	}
	return buf[:got], nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// IsOpen implements Transport.
func (t *USBTransport) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dev != nil
}

// Close implements Transport. It is idempotent: release interface,
// close handle, de-init the library, in that order, and is a no-op if
// already closed.
func (t *USBTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dev == nil {
		return nil
	}

	var errs []error
	if t.intf != nil {
		t.intf.Close()
	}
	if t.cfg != nil {
		if err := t.cfg.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := t.dev.Close(); err != nil {
		errs = append(errs, err)
	}
	if t.ctx != nil {
		if err := t.ctx.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	t.ctx, t.dev, t.cfg, t.intf, t.out, t.in = nil, nil, nil, nil, nil, nil

	if len(errs) != 0 {
		return fmt.Errorf("transport: close: %v", errs)
	}
	return nil
}
