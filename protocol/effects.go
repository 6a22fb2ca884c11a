// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "fmt"

// Effect is a closed variant of every effect model the protocol knows
// about, plus EffectEmpty for "no effect in this slot" (also what an
// unrecognized wire id decodes to) and the zero value EffectUnknown.
type Effect int

const (
	EffectUnknown Effect = iota
	EffectEmpty

	// Stompboxes (DSP block effect0).
	EffectOverdrive
	EffectWah
	EffectTouchWah
	EffectFuzz
	EffectFuzzTouchWah
	EffectSimpleComp
	EffectCompressor
	EffectRangeBoost
	EffectGreenBox
	EffectOrangeBox
	EffectBlackBox
	EffectBigFuzz

	// Modulation (DSP block effect1).
	EffectSineChorus
	EffectTriangleChorus
	EffectSineFlanger
	EffectTriangleFlanger
	EffectVibratone
	EffectVintageTremolo
	EffectSineTremolo
	EffectRingModulator
	EffectStepFilter
	EffectPhaser
	EffectPitchShifter

	// Delay (DSP block effect2).
	EffectMonoDelay
	EffectMonoEchoFilter
	EffectStereoEchoFilter
	EffectMultitapDelay
	EffectPingPongDelay
	EffectDuckingDelay
	EffectReverseDelay
	EffectTapeDelay
	EffectStereoTapeDelay

	// Reverb (DSP block effect3).
	EffectSmallHallReverb
	EffectLargeHallReverb
	EffectSmallRoomReverb
	EffectLargeRoomReverb
	EffectSmallPlateReverb
	EffectLargePlateReverb
	EffectAmbientReverb
	EffectArenaReverb
	EffectFender63SpringReverb
	EffectFender65SpringReverb
)

// Family is the DSP grouping an Effect belongs to.
type Family int

const (
	FamilyNone Family = iota
	FamilyStomp
	FamilyModulation
	FamilyDelay
	FamilyReverb
)

type effectEntry struct {
	id     uint16
	family Family
}

var effectTable = map[Effect]effectEntry{
	EffectOverdrive:    {0x3c, FamilyStomp},
	EffectWah:          {0x49, FamilyStomp},
	EffectTouchWah:     {0x4a, FamilyStomp},
	EffectFuzz:         {0x1a, FamilyStomp},
	EffectFuzzTouchWah: {0x1c, FamilyStomp},
	EffectSimpleComp:   {0x88, FamilyStomp},
	EffectCompressor:   {0x07, FamilyStomp},
	EffectRangeBoost:   {0x0103, FamilyStomp},
	EffectGreenBox:     {0xba, FamilyStomp},
	EffectOrangeBox:    {0x0110, FamilyStomp},
	EffectBlackBox:     {0x0111, FamilyStomp},
	EffectBigFuzz:      {0x010f, FamilyStomp},

	EffectSineChorus:     {0x12, FamilyModulation},
	EffectTriangleChorus: {0x13, FamilyModulation},
	EffectSineFlanger:    {0x18, FamilyModulation},
	EffectTriangleFlanger: {0x19, FamilyModulation},
	EffectVibratone:      {0x2d, FamilyModulation},
	EffectVintageTremolo: {0x40, FamilyModulation},
	EffectSineTremolo:    {0x41, FamilyModulation},
	EffectRingModulator:  {0x22, FamilyModulation},
	EffectStepFilter:     {0x29, FamilyModulation},
	EffectPhaser:         {0x4f, FamilyModulation},
	EffectPitchShifter:   {0x1f, FamilyModulation},

	EffectMonoDelay:        {0x16, FamilyDelay},
	EffectMonoEchoFilter:   {0x43, FamilyDelay},
	EffectStereoEchoFilter: {0x48, FamilyDelay},
	EffectMultitapDelay:    {0x44, FamilyDelay},
	EffectPingPongDelay:    {0x45, FamilyDelay},
	EffectDuckingDelay:     {0x15, FamilyDelay},
	EffectReverseDelay:     {0x46, FamilyDelay},
	EffectTapeDelay:        {0x2b, FamilyDelay},
	EffectStereoTapeDelay:  {0x2a, FamilyDelay},

	EffectSmallHallReverb:      {0x24, FamilyReverb},
	EffectLargeHallReverb:      {0x3a, FamilyReverb},
	EffectSmallRoomReverb:      {0x26, FamilyReverb},
	EffectLargeRoomReverb:      {0x3b, FamilyReverb},
	EffectSmallPlateReverb:     {0x4e, FamilyReverb},
	EffectLargePlateReverb:     {0x4b, FamilyReverb},
	EffectAmbientReverb:        {0x4c, FamilyReverb},
	EffectArenaReverb:          {0x4d, FamilyReverb},
	EffectFender63SpringReverb: {0x21, FamilyReverb},
	EffectFender65SpringReverb: {0x0b, FamilyReverb},
}

var effectByID map[uint16]Effect

func init() {
	effectByID = make(map[uint16]Effect, len(effectTable))
	for effect, entry := range effectTable {
		effectByID[entry.id] = effect
	}
}

// LookupEffectByID maps a wire model id to an Effect, returning
// EffectEmpty for any id not in the table (the firmware uses id 0 for an
// empty slot, which is also not in the table).
func LookupEffectByID(id uint16) Effect {
	if effect, ok := effectByID[id]; ok {
		return effect
	}
	return EffectEmpty
}

// EffectWireID returns the wire model id for effect, or 0 if effect is
// EffectEmpty, EffectUnknown, or otherwise not in the table.
func EffectWireID(effect Effect) uint16 {
	return effectTable[effect].id
}

// FamilyOf returns the DSP family of effect, or FamilyNone if effect is
// EffectEmpty, EffectUnknown, or not in the table.
func FamilyOf(effect Effect) Family {
	return effectTable[effect].family
}

// DSPOf returns the DSP block a SerializeEffectSettings packet for
// effect targets.
func DSPOf(effect Effect) DSP {
	switch FamilyOf(effect) {
	case FamilyStomp:
		return DSPEffect0
	case FamilyModulation:
		return DSPEffect1
	case FamilyDelay:
		return DSPEffect2
	case FamilyReverb:
		return DSPEffect3
	default:
		return DSPNone
	}
}

// FxKnob returns the protocol byte (0x01 or 0x02) identifying effect's
// family in apply/save commands: 0x01 for modulation, delay, and reverb
// effects, 0x02 for stompboxes (and for EffectEmpty).
func FxKnob(effect Effect) uint8 {
	switch FamilyOf(effect) {
	case FamilyModulation, FamilyDelay, FamilyReverb:
		return 0x01
	default:
		return 0x02
	}
}

// SaveableInBank reports whether effect may appear in a saved effect
// bank: only modulation, delay, and reverb effects qualify.
func SaveableInBank(effect Effect) bool {
	switch FamilyOf(effect) {
	case FamilyModulation, FamilyDelay, FamilyReverb:
		return true
	default:
		return false
	}
}

// HasExtraKnob reports whether effect writes Knob6 to the wire. Only the
// four delay effects with an extra echo/tape parameter use it.
func HasExtraKnob(effect Effect) bool {
	switch effect {
	case EffectMonoEchoFilter, EffectStereoEchoFilter, EffectTapeDelay, EffectStereoTapeDelay:
		return true
	default:
		return false
	}
}

func (f Family) String() string {
	switch f {
	case FamilyStomp:
		return "stomp"
	case FamilyModulation:
		return "modulation"
	case FamilyDelay:
		return "delay"
	case FamilyReverb:
		return "reverb"
	default:
		return "none"
	}
}

var effectNames = map[Effect]string{
	EffectEmpty:                "(empty)",
	EffectOverdrive:            "Overdrive",
	EffectWah:                  "Wah",
	EffectTouchWah:             "Touch Wah",
	EffectFuzz:                 "Fuzz",
	EffectFuzzTouchWah:         "Fuzz Touch Wah",
	EffectSimpleComp:           "Simple Compressor",
	EffectCompressor:           "Compressor",
	EffectRangeBoost:           "Range Boost",
	EffectGreenBox:             "Green Box",
	EffectOrangeBox:            "Orange Box",
	EffectBlackBox:             "Black Box",
	EffectBigFuzz:              "Big Fuzz",
	EffectSineChorus:           "Sine Chorus",
	EffectTriangleChorus:       "Triangle Chorus",
	EffectSineFlanger:          "Sine Flanger",
	EffectTriangleFlanger:      "Triangle Flanger",
	EffectVibratone:            "Vibratone",
	EffectVintageTremolo:       "Vintage Tremolo",
	EffectSineTremolo:          "Sine Tremolo",
	EffectRingModulator:        "Ring Modulator",
	EffectStepFilter:           "Step Filter",
	EffectPhaser:               "Phaser",
	EffectPitchShifter:         "Pitch Shifter",
	EffectMonoDelay:            "Mono Delay",
	EffectMonoEchoFilter:       "Mono Echo Filter",
	EffectStereoEchoFilter:     "Stereo Echo Filter",
	EffectMultitapDelay:        "Multitap Delay",
	EffectPingPongDelay:        "Ping Pong Delay",
	EffectDuckingDelay:         "Ducking Delay",
	EffectReverseDelay:         "Reverse Delay",
	EffectTapeDelay:            "Tape Delay",
	EffectStereoTapeDelay:      "Stereo Tape Delay",
	EffectSmallHallReverb:      "Small Hall Reverb",
	EffectLargeHallReverb:      "Large Hall Reverb",
	EffectSmallRoomReverb:      "Small Room Reverb",
	EffectLargeRoomReverb:      "Large Room Reverb",
	EffectSmallPlateReverb:     "Small Plate Reverb",
	EffectLargePlateReverb:     "Large Plate Reverb",
	EffectAmbientReverb:        "Ambient Reverb",
	EffectArenaReverb:          "Arena Reverb",
	EffectFender63SpringReverb: "Fender 63 Spring Reverb",
	EffectFender65SpringReverb: "Fender 65 Spring Reverb",
}

// String returns the vendor-facing effect name, or "unknown(N)", N being
// the enum value, for EffectUnknown and any value without a name.
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(e))
}
