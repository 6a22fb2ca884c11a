// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tuner

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mustangctl/mustang/protocol"
	"github.com/mustangctl/mustang/transport"
)

// noteNames is the ordinal-to-name table for the tuner's 13 note
// indices. Index 12 is the sentinel: no pitch detected closely enough
// to call, rendered as "?".
var noteNames = [...]string{
	"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "?",
}

// sentinelNote is the clamp target for any note index the device sends
// above the last real note.
const sentinelNote = 12

// arrowThreshold is the absolute cents-offset distance beyond which the
// feed renders a direction arrow.
const arrowThreshold = 3

// Event is one rendered tuner update.
type Event struct {
	Note     int
	Distance int
	Rendered string
}

func render(note, distance int) string {
	name := "?"
	if note >= 0 && note < len(noteNames) {
		name = noteNames[note]
	}

	left, right := "  ", "  "
	if note != sentinelNote {
		if distance > arrowThreshold {
			left = ">> "
		}
		if distance < -arrowThreshold {
			right = " <<"
		}
	}
	return left + name + right
}

// Option configures a Feed.
type Option func(*Feed)

// WithLogger configures the Feed to log through logger instead of the
// default stderr logger.
func WithLogger(logger *log.Logger) Option {
	return func(f *Feed) {
		f.log = logger
	}
}

// WithBufferDepth sets the Events channel buffer depth. The default is
// 1: callers that fall behind miss intermediate updates rather than
// stalling the feed.
func WithBufferDepth(depth uint) Option {
	return func(f *Feed) {
		f.events = make(chan Event, depth)
	}
}

// Feed is the tuner streaming loop. It owns no transport lifetime of
// its own: the caller opens tuner mode on the Session first, then
// starts a Feed against the same transport.Transport, and stops the
// Feed before turning tuner mode back off.
type Feed struct {
	t    transport.Transport
	log  *log.Logger

	events chan Event
	stop   atomic.Bool
	done   chan struct{}
}

// NewFeed returns a Feed that will read tuner frames from t.
func NewFeed(t transport.Transport, opts ...Option) *Feed {
	f := &Feed{
		t:      t,
		log:    log.New(os.Stderr),
		events: make(chan Event, 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Events returns the channel the feed publishes rendered updates on.
// Publication never blocks: a slow consumer misses updates rather than
// stalling the read loop.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Start launches the feed's read loop on its own goroutine. It returns
// immediately.
func (f *Feed) Start() {
	f.stop.Store(false)
	f.done = make(chan struct{})
	go f.run()
}

// Stop sets the feed's cooperative stop flag and blocks until the read
// loop has observed it, drained any remaining queued tuner packets, and
// exited. Worst-case latency is one receive timeout plus the loop's 5ms
// yield.
func (f *Feed) Stop() {
	f.stop.Store(true)
	if f.done != nil {
		<-f.done
	}
}

func (f *Feed) run() {
	defer close(f.done)

	for !f.stop.Load() {
		buf, err := f.t.Receive(protocol.PacketSize)
		if err != nil {
			f.log.Error("tuner receive failed", "err", err)
			return
		}
		if len(buf) < 2 {
			time.Sleep(5 * time.Millisecond)
			continue
		}

		note := int(int8(buf[0]))
		if note == -1 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if note > sentinelNote {
			note = sentinelNote
		}
		distance := int(int8(buf[1]))

		ev := Event{Note: note, Distance: distance, Rendered: render(note, distance)}
		select {
		case f.events <- ev:
		default:
		}

		time.Sleep(5 * time.Millisecond)
	}

	f.drain()
}

// drain reads and discards any tuner packets left in flight after the
// loop observes the stop flag, so they do not contaminate the next
// control operation issued on the same transport.
func (f *Feed) drain() {
	for {
		buf, err := f.t.Receive(protocol.PacketSize)
		if err != nil || len(buf) == 0 {
			return
		}
	}
}
