// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "errors"

// ErrInvalidLength is returned when a buffer handed to Decode is not
// exactly PacketSize bytes.
var ErrInvalidLength = errors.New("protocol: invalid packet length")

// ErrInvalidSaveEffect is returned by SerializeSaveEffectName and
// SerializeSaveEffectPacket when an effect bank is rejected because one
// of the effects to save is not a modulation/delay/reverb effect (id
// less than EffectSineChorus).
var ErrInvalidSaveEffect = errors.New("protocol: effect is not valid for a save-effects bank")

// ErrEmptyEffectList is returned when a save-effects operation is given
// zero effects; the source operates on effects[0] unconditionally.
var ErrEmptyEffectList = errors.New("protocol: effect list must not be empty")
