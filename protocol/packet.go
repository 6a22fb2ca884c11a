// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "fmt"

// PacketSize is the fixed length of every packet exchanged with the
// amplifier, on the wire and in every buffer passed to a Transport.
const PacketSize = 64

// HeaderSize is the length, in bytes, of the packet header that precedes
// the payload.
const HeaderSize = 16

// PayloadSize is the length, in bytes, of the payload that follows the
// header. HeaderSize + PayloadSize == PacketSize.
const PayloadSize = PacketSize - HeaderSize

// Raw is a fixed-size, on-the-wire packet buffer. A Transport only ever
// reads or writes buffers of exactly this length.
type Raw [PacketSize]byte

// Stage is the Header.Stage field.
type Stage uint8

const (
	StageInit0   Stage = 0
	StageInit1   Stage = 1
	StageReady   Stage = 3
	StageUnknown Stage = 0xff
)

func (s Stage) String() string {
	switch s {
	case StageInit0:
		return "init0"
	case StageInit1:
		return "init1"
	case StageReady:
		return "ready"
	case StageUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Stage(0x%02x)", uint8(s))
	}
}

// Type is the Header.Type field.
type Type uint8

const (
	TypeOperation Type = 0x01
	TypeData      Type = 0x03
	TypeInit0     Type = 0x00
	TypeInit1     Type = 0x02
	TypeLoad      Type = 0xc3
)

func (t Type) String() string {
	switch t {
	case TypeOperation:
		return "operation"
	case TypeData:
		return "data"
	case TypeInit0:
		return "init0"
	case TypeInit1:
		return "init1"
	case TypeLoad:
		return "load"
	default:
		return fmt.Sprintf("Type(0x%02x)", uint8(t))
	}
}

// DSP identifies the DSP block or pseudo-operation a packet targets.
type DSP uint8

const (
	DSPNone             DSP = 0x00
	DSPAmp              DSP = 0x05
	DSPUsbGain          DSP = 0x0d
	DSPEffect0          DSP = 0x06
	DSPEffect1          DSP = 0x07
	DSPEffect2          DSP = 0x08
	DSPEffect3          DSP = 0x09
	DSPOpSave           DSP = 0x03
	DSPOpSelectMemBank  DSP = 0x01
	DSPOpSaveEffectName DSP = 0x04
)

func (d DSP) String() string {
	switch d {
	case DSPNone:
		return "none"
	case DSPAmp:
		return "amp"
	case DSPUsbGain:
		return "usbGain"
	case DSPEffect0:
		return "effect0"
	case DSPEffect1:
		return "effect1"
	case DSPEffect2:
		return "effect2"
	case DSPEffect3:
		return "effect3"
	case DSPOpSave:
		return "opSave"
	case DSPOpSelectMemBank:
		return "opSelectMemBank"
	case DSPOpSaveEffectName:
		return "opSaveEffectName"
	default:
		return fmt.Sprintf("DSP(0x%02x)", uint8(d))
	}
}

// Header is the fixed 16-byte prefix of every packet. Field offsets are
// canonical and part of the wire contract:
//
//	stage=0, type=1, DSP=2, unknown0=3, slot=4, unknown1=6, unknown2=7
//
// All other header bytes are always zero.
type Header struct {
	Stage   Stage
	Type    Type
	DSP     DSP
	Slot    uint8
	Unknown [3]byte // unknown0, unknown1, unknown2
}

// Encode writes h into the first HeaderSize bytes of raw.
func (h Header) Encode(raw *Raw) {
	raw[0] = byte(h.Stage)
	raw[1] = byte(h.Type)
	raw[2] = byte(h.DSP)
	raw[3] = h.Unknown[0]
	raw[4] = h.Slot
	raw[5] = 0
	raw[6] = h.Unknown[1]
	raw[7] = h.Unknown[2]
	for i := 8; i < HeaderSize; i++ {
		raw[i] = 0
	}
}

// DecodeHeader reads a Header from the first HeaderSize bytes of raw.
func DecodeHeader(raw *Raw) Header {
	return Header{
		Stage:   Stage(raw[0]),
		Type:    Type(raw[1]),
		DSP:     DSP(raw[2]),
		Slot:    raw[4],
		Unknown: [3]byte{raw[3], raw[6], raw[7]},
	}
}

// Payload is implemented by every payload variant. Encode writes the
// payload's 48-byte on-wire footprint.
type Payload interface {
	Encode() [PayloadSize]byte
}

// Encode assembles a Raw packet from a Header and a Payload.
func Encode(h Header, p Payload) Raw {
	var raw Raw
	h.Encode(&raw)
	payload := p.Encode()
	copy(raw[HeaderSize:], payload[:])
	return raw
}

// Decode validates that buf is exactly PacketSize bytes and returns the
// decoded Header along with the raw payload bytes.
func Decode(buf []byte) (Header, [PayloadSize]byte, error) {
	var payload [PayloadSize]byte
	if len(buf) != PacketSize {
		return Header{}, payload, fmt.Errorf("protocol: decode packet: %w: got %d bytes, want %d", ErrInvalidLength, len(buf), PacketSize)
	}
	var raw Raw
	copy(raw[:], buf)
	copy(payload[:], raw[HeaderSize:])
	return DecodeHeader(&raw), payload, nil
}
