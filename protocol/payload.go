// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

// EmptyPayload is the all-zero payload used by handshake, apply, and
// load/select-bank commands.
type EmptyPayload struct{}

// Encode implements Payload.
func (EmptyPayload) Encode() [PayloadSize]byte {
	return [PayloadSize]byte{}
}

// nameMaxLen is the maximum length of an ASCII preset or effect-bank
// name; it is truncated, never rejected.
const nameMaxLen = 24

// NamePayload carries a null-terminated ASCII name starting at payload
// offset 0.
type NamePayload struct {
	Name string
}

// Encode implements Payload.
func (p NamePayload) Encode() [PayloadSize]byte {
	var buf [PayloadSize]byte
	name := p.Name
	if len(name) > nameMaxLen {
		name = name[:nameMaxLen]
	}
	copy(buf[0:nameMaxLen], name)
	return buf
}

// DecodeNamePayload recovers the ASCII name from a raw payload, stopping
// at the first NUL byte or nameMaxLen, whichever comes first.
func DecodeNamePayload(buf [PayloadSize]byte) string {
	end := nameMaxLen
	for i := 0; i < nameMaxLen; i++ {
		if buf[i] == 0 {
			end = i
			break
		}
	}
	return string(buf[:end])
}

// AmpPayload is the wire layout of an amplifier settings packet. Field
// offsets within the payload are an implementation choice of this
// package; only the named fields and their clamped ranges are part of
// the protocol contract (see SerializeAmpSettings).
type AmpPayload struct {
	Gain         uint8
	Volume       uint8
	Treble       uint8
	Middle       uint8
	Bass         uint8
	Presence     uint8
	Bias         uint8
	NoiseGate    uint8
	Cabinet      uint8
	Sag          uint8
	Brightness   uint8
	Gain2        uint8
	MasterVolume uint8
	Threshold    uint8
	Depth        uint8
	USBGain      uint8
	Model        uint8
	Unknown      [3]byte
	AmpSpecific  [5]byte
}

const (
	ampOffGain       = 0
	ampOffVolume     = 1
	ampOffTreble     = 2
	ampOffMiddle     = 3
	ampOffBass       = 4
	ampOffPresence   = 5
	ampOffBias       = 6
	ampOffNoiseGate  = 7
	ampOffCabinet    = 8
	ampOffSag        = 9
	ampOffBright     = 10
	ampOffGain2      = 11
	ampOffMasterVol  = 12
	ampOffThreshold  = 13
	ampOffDepth      = 14
	ampOffUSBGain    = 15
	ampOffModel      = 16
	ampOffUnknown0   = 17
	ampOffAmpSpecif0 = 20
)

// Encode implements Payload.
func (p AmpPayload) Encode() [PayloadSize]byte {
	var buf [PayloadSize]byte
	buf[ampOffGain] = p.Gain
	buf[ampOffVolume] = p.Volume
	buf[ampOffTreble] = p.Treble
	buf[ampOffMiddle] = p.Middle
	buf[ampOffBass] = p.Bass
	buf[ampOffPresence] = p.Presence
	buf[ampOffBias] = p.Bias
	buf[ampOffNoiseGate] = p.NoiseGate
	buf[ampOffCabinet] = p.Cabinet
	buf[ampOffSag] = p.Sag
	buf[ampOffBright] = p.Brightness
	buf[ampOffGain2] = p.Gain2
	buf[ampOffMasterVol] = p.MasterVolume
	buf[ampOffThreshold] = p.Threshold
	buf[ampOffDepth] = p.Depth
	buf[ampOffUSBGain] = p.USBGain
	buf[ampOffModel] = p.Model
	copy(buf[ampOffUnknown0:ampOffUnknown0+3], p.Unknown[:])
	copy(buf[ampOffAmpSpecif0:ampOffAmpSpecif0+5], p.AmpSpecific[:])
	return buf
}

// DecodeAmpPayload reverses AmpPayload.Encode.
func DecodeAmpPayload(buf [PayloadSize]byte) AmpPayload {
	p := AmpPayload{
		Gain:         buf[ampOffGain],
		Volume:       buf[ampOffVolume],
		Treble:       buf[ampOffTreble],
		Middle:       buf[ampOffMiddle],
		Bass:         buf[ampOffBass],
		Presence:     buf[ampOffPresence],
		Bias:         buf[ampOffBias],
		NoiseGate:    buf[ampOffNoiseGate],
		Cabinet:      buf[ampOffCabinet],
		Sag:          buf[ampOffSag],
		Brightness:   buf[ampOffBright],
		Gain2:        buf[ampOffGain2],
		MasterVolume: buf[ampOffMasterVol],
		Threshold:    buf[ampOffThreshold],
		Depth:        buf[ampOffDepth],
		USBGain:      buf[ampOffUSBGain],
		Model:        buf[ampOffModel],
	}
	copy(p.Unknown[:], buf[ampOffUnknown0:ampOffUnknown0+3])
	copy(p.AmpSpecific[:], buf[ampOffAmpSpecif0:ampOffAmpSpecif0+5])
	return p
}

// EffectPayload is the wire layout of a single effect-slot settings
// packet.
type EffectPayload struct {
	Slot    uint8
	Model   uint8
	Knob1   uint8
	Knob2   uint8
	Knob3   uint8
	Knob4   uint8
	Knob5   uint8
	Knob6   uint8
	Unknown [3]byte
}

const (
	fxOffSlot    = 0
	fxOffModel   = 1
	fxOffKnob1   = 2
	fxOffKnob6   = 7
	fxOffUnknown = 8
)

// Encode implements Payload.
func (p EffectPayload) Encode() [PayloadSize]byte {
	var buf [PayloadSize]byte
	buf[fxOffSlot] = p.Slot
	buf[fxOffModel] = p.Model
	buf[fxOffKnob1+0] = p.Knob1
	buf[fxOffKnob1+1] = p.Knob2
	buf[fxOffKnob1+2] = p.Knob3
	buf[fxOffKnob1+3] = p.Knob4
	buf[fxOffKnob1+4] = p.Knob5
	buf[fxOffKnob6] = p.Knob6
	copy(buf[fxOffUnknown:fxOffUnknown+3], p.Unknown[:])
	return buf
}

// DecodeEffectPayload reverses EffectPayload.Encode.
func DecodeEffectPayload(buf [PayloadSize]byte) EffectPayload {
	p := EffectPayload{
		Slot:  buf[fxOffSlot],
		Model: buf[fxOffModel],
		Knob1: buf[fxOffKnob1+0],
		Knob2: buf[fxOffKnob1+1],
		Knob3: buf[fxOffKnob1+2],
		Knob4: buf[fxOffKnob1+3],
		Knob5: buf[fxOffKnob1+4],
		Knob6: buf[fxOffKnob6],
	}
	copy(p.Unknown[:], buf[fxOffUnknown:fxOffUnknown+3])
	return p
}
