// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package mustang is the top-level package of the mustang module.

It has no exported symbols of its own. See the protocol package for the
wire format, id tables, and packet serializer; the transport package for
the USB interrupt transport; the session package for a stateful, high-level
device session; the tuner package for the streaming pitch-detection feed;
the config package for the optional device-profile file; and
cmd/mustangctl for a command-line front end built on all of the above.
*/
package mustang
