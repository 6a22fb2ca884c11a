// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package cmd contains the command-line applications built on top of the
protocol, transport, session, and tuner packages.
*/
package cmd
