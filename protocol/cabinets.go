// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "fmt"

// Cabinet is a closed variant of every speaker cabinet model the
// protocol knows about, plus a sentinel for an unrecognized wire id.
type Cabinet int

const (
	CabUnknown Cabinet = iota
	CabOff
	CabFender57Champ
	CabFender59Bassman
	CabFender65DeluxeReverb
	CabFender65TwinReverb
	CabFenderSuperSonic
	CabBritish60s
	CabBritish70s
	CabBritish80s
	CabAmerican90s
	CabMetal2000
	CabV30
)

var cabinetTable = map[Cabinet]uint8{
	CabOff:                  0x00,
	CabFender57Champ:        0x01,
	CabFender59Bassman:      0x02,
	CabFender65DeluxeReverb: 0x03,
	CabFender65TwinReverb:   0x04,
	CabFenderSuperSonic:     0x05,
	CabBritish60s:           0x06,
	CabBritish70s:           0x07,
	CabBritish80s:           0x08,
	CabAmerican90s:          0x09,
	CabMetal2000:            0x0a,
	CabV30:                  0x0b,
}

var cabinetByID map[uint8]Cabinet

func init() {
	cabinetByID = make(map[uint8]Cabinet, len(cabinetTable))
	for cab, id := range cabinetTable {
		cabinetByID[id] = cab
	}
}

// LookupCabinetByID maps a wire cabinet id to a Cabinet, returning
// CabUnknown for any id not in the table.
func LookupCabinetByID(id uint8) Cabinet {
	if cab, ok := cabinetByID[id]; ok {
		return cab
	}
	return CabUnknown
}

// CabinetWireID returns the wire id for cab, or the CabOff id if cab is
// not in the table.
func CabinetWireID(cab Cabinet) uint8 {
	if id, ok := cabinetTable[cab]; ok {
		return id
	}
	return cabinetTable[CabOff]
}

var cabinetNames = map[Cabinet]string{
	CabOff:                  "off",
	CabFender57Champ:        "Fender 57 Champ",
	CabFender59Bassman:      "Fender 59 Bassman",
	CabFender65DeluxeReverb: "Fender 65 Deluxe Reverb",
	CabFender65TwinReverb:   "Fender 65 Twin Reverb",
	CabFenderSuperSonic:     "Fender Super-Sonic",
	CabBritish60s:           "British 60s",
	CabBritish70s:           "British 70s",
	CabBritish80s:           "British 80s",
	CabAmerican90s:          "American 90s",
	CabMetal2000:            "Metal 2000",
	CabV30:                  "V30",
}

// String returns the vendor-facing cabinet name, or "unknown(N)", N
// being the enum value, for CabUnknown and any value without a name.
func (c Cabinet) String() string {
	if name, ok := cabinetNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}
