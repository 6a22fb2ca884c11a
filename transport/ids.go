// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

// FenderVID is the fixed USB vendor id for every Mustang-series
// amplifier.
const FenderVID uint16 = 0x1ed8

// Candidate product ids, tried in this order. The first one that opens
// successfully wins.
const (
	SmallAmpsUSBPID   uint16 = 0x0004
	BigAmpsUSBPID     uint16 = 0x0005
	SmallAmpsV2USBPID uint16 = 0x0007
	BigAmpsV2USBPID   uint16 = 0x0008
	MiniUSBPID        uint16 = 0x0010
	FloorUSBPID       uint16 = 0x0012
)

// DefaultPIDs is the candidate product id list used when a caller does
// not provide its own.
var DefaultPIDs = []uint16{
	SmallAmpsUSBPID,
	BigAmpsUSBPID,
	SmallAmpsV2USBPID,
	BigAmpsV2USBPID,
	MiniUSBPID,
	FloorUSBPID,
}

// Interface 0, endpoints 0x01 (out) and 0x81 (in), per the protocol's
// external interface contract.
const (
	interfaceNum  = 0
	alternateNum  = 0
	outEndpoint   = 0x01
	inEndpoint    = 0x81
	usbConfigNum  = 1
)
