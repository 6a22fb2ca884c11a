// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package tuner implements the tuner streaming feed: a cooperative loop
that reads pitch-detection frames from the same transport a Session
uses for control traffic, decodes them into rendered note strings, and
publishes them on a channel for a UI to consume.

The feed never blocks a slow consumer: publication is a non-blocking
channel send, so a slow UI consumer drops intermediate updates rather
than stalling the read loop.
*/
package tuner
