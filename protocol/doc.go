// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package protocol implements the Fender Mustang wire protocol: the fixed
64-byte packet layout, the static amp/cabinet/effect id tables, and the
serializer/decoder pair that is the single source of truth for every
"unknown" byte combination the amplifier firmware expects.

Everything in this package is pure: encoding and decoding never touch a
transport. The session package drives a Transport with the bytes this
package produces and feeds received bytes back into it for decoding.
*/
package protocol
