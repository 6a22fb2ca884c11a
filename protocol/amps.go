// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "fmt"

// Amp is a closed variant of every amplifier model the protocol knows
// about, plus a sentinel for an unrecognized wire id.
type Amp int

const (
	AmpUnknown Amp = iota

	// V1 hardware.
	AmpFender57Deluxe
	AmpFender59Bassman
	AmpFender57Champ
	AmpFender65DeluxeReverb
	AmpFender65Princeton
	AmpFender65TwinReverb
	AmpFenderSuperSonic
	AmpBritish60s
	AmpBritish70s
	AmpBritish80s
	AmpAmerican90s
	AmpMetal2000

	// V2 hardware.
	AmpStudioPreamp
	AmpFender57Twin
	AmpSixtiesThrift
	AmpBrittishWatts
	AmpBrittishColour
)

// ampEntry is one row of the amp id table: the wire model id and the
// five amp-specific bytes the firmware expects alongside it, plus an
// optional header unknown-triple override.
type ampEntry struct {
	id             uint8
	specific       [5]byte
	headerOverride *[3]byte
}

var fender65DeluxeReverbHeaderOverride = [3]byte{0x00, 0x00, 0x01}

var ampTable = map[Amp]ampEntry{
	AmpFender57Deluxe:       {id: 0x67, specific: [5]byte{0x01, 0x01, 0x01, 0x01, 0x53}},
	AmpFender59Bassman:      {id: 0x64, specific: [5]byte{0x02, 0x02, 0x02, 0x02, 0x67}},
	AmpFender57Champ:        {id: 0x7c, specific: [5]byte{0x0c, 0x0c, 0x0c, 0x0c, 0x00}},
	AmpFender65DeluxeReverb: {id: 0x53, specific: [5]byte{0x03, 0x03, 0x03, 0x03, 0x6a}, headerOverride: &fender65DeluxeReverbHeaderOverride},
	AmpFender65Princeton:    {id: 0x6a, specific: [5]byte{0x04, 0x04, 0x04, 0x04, 0x61}},
	AmpFender65TwinReverb:   {id: 0x75, specific: [5]byte{0x05, 0x05, 0x05, 0x05, 0x72}},
	AmpFenderSuperSonic:     {id: 0x72, specific: [5]byte{0x06, 0x06, 0x06, 0x06, 0x79}},
	AmpBritish60s:           {id: 0x61, specific: [5]byte{0x07, 0x07, 0x07, 0x07, 0x5e}},
	AmpBritish70s:           {id: 0x79, specific: [5]byte{0x0b, 0x0b, 0x0b, 0x0b, 0x7c}},
	AmpBritish80s:           {id: 0x5e, specific: [5]byte{0x09, 0x09, 0x09, 0x09, 0x5d}},
	AmpAmerican90s:          {id: 0x5d, specific: [5]byte{0x0a, 0x0a, 0x0a, 0x0a, 0x6d}},
	AmpMetal2000:            {id: 0x6d, specific: [5]byte{0x08, 0x08, 0x08, 0x08, 0x75}},

	AmpStudioPreamp:   {id: 0xf1, specific: [5]byte{0x0d, 0x0d, 0x0d, 0x0d, 0xf6}},
	AmpFender57Twin:   {id: 0xf6, specific: [5]byte{0x0e, 0x0e, 0x0e, 0x0e, 0xf9}},
	AmpSixtiesThrift:  {id: 0xf9, specific: [5]byte{0x0f, 0x0f, 0x0f, 0x0f, 0xfc}},
	AmpBrittishWatts:  {id: 0xff, specific: [5]byte{0x11, 0x11, 0x11, 0x11, 0x00}},
	AmpBrittishColour: {id: 0xfc, specific: [5]byte{0x10, 0x10, 0x10, 0x08, 0xff}},
}

var ampByID map[uint8]Amp

func init() {
	ampByID = make(map[uint8]Amp, len(ampTable))
	for amp, entry := range ampTable {
		ampByID[entry.id] = amp
	}
}

// LookupAmpByID maps a wire model id to an Amp, returning AmpUnknown for
// any id not in the table.
func LookupAmpByID(id uint8) Amp {
	if amp, ok := ampByID[id]; ok {
		return amp
	}
	return AmpUnknown
}

// ampWireData returns the wire model id, five amp-specific bytes, and an
// optional header unknown-triple override for amp. The zero value is
// returned for AmpUnknown or any amp not in the table.
func ampWireData(amp Amp) ampEntry {
	return ampTable[amp]
}

var ampNames = map[Amp]string{
	AmpFender57Deluxe:       "Fender 57 Deluxe",
	AmpFender59Bassman:      "Fender 59 Bassman",
	AmpFender57Champ:        "Fender 57 Champ",
	AmpFender65DeluxeReverb: "Fender 65 Deluxe Reverb",
	AmpFender65Princeton:    "Fender 65 Princeton",
	AmpFender65TwinReverb:   "Fender 65 Twin Reverb",
	AmpFenderSuperSonic:     "Fender Super-Sonic",
	AmpBritish60s:           "British 60s",
	AmpBritish70s:           "British 70s",
	AmpBritish80s:           "British 80s",
	AmpAmerican90s:          "American 90s",
	AmpMetal2000:            "Metal 2000",
	AmpStudioPreamp:         "Studio Preamp",
	AmpFender57Twin:         "Fender 57 Twin",
	AmpSixtiesThrift:        "60s Thrift",
	AmpBrittishWatts:        "British Watts",
	AmpBrittishColour:       "British Colour",
}

// String returns the vendor-facing amp model name, or "unknown(N)", N
// being the enum value, for AmpUnknown and any value without a name.
func (a Amp) String() string {
	if name, ok := ampNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(a))
}
