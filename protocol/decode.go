// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

// rawPayload extracts the payload bytes from a Raw packet.
func rawPayload(raw Raw) [PayloadSize]byte {
	var p [PayloadSize]byte
	copy(p[:], raw[HeaderSize:])
	return p
}

// DecodeNameFromData recovers the preset or effect-bank name carried by
// a name packet.
func DecodeNameFromData(raw Raw) string {
	return DecodeNamePayload(rawPayload(raw))
}

// DecodeAmpFromData recovers an AmpSettings from the amp-settings packet
// and its companion USB-gain packet.
func DecodeAmpFromData(ampPacket, usbGainPacket Raw) AmpSettings {
	p := DecodeAmpPayload(rawPayload(ampPacket))
	gain := DecodeAmpPayload(rawPayload(usbGainPacket))

	return AmpSettings{
		Amp:          LookupAmpByID(p.Model),
		Gain:         p.Gain,
		Volume:       p.Volume,
		Treble:       p.Treble,
		Middle:       p.Middle,
		Bass:         p.Bass,
		Presence:     p.Presence,
		Bias:         p.Bias,
		NoiseGate:    p.NoiseGate,
		Cabinet:      LookupCabinetByID(p.Cabinet),
		Sag:          p.Sag,
		Brightness:   p.Brightness,
		Gain2:        p.Gain2,
		MasterVolume: p.MasterVolume,
		Threshold:    p.Threshold,
		Depth:        p.Depth,
		USBGain:      gain.USBGain,
	}
}

// DecodeEffectsFromData recovers the four effect slots from four effect
// packets, indexed by (wire slot mod 4). Position is effectsLoop iff the
// wire slot is greater than 3.
func DecodeEffectsFromData(packets [4]Raw) [4]EffectSettings {
	var effects [4]EffectSettings
	for _, raw := range packets {
		p := DecodeEffectPayload(rawPayload(raw))
		slot := p.Slot % 4

		pos := PositionInput
		if p.Slot > 0x03 {
			pos = PositionEffectsLoop
		}

		effects[slot] = EffectSettings{
			Effect:   LookupEffectByID(uint16(p.Model)),
			FxSlot:   slot,
			Position: pos,
			Knob1:    p.Knob1,
			Knob2:    p.Knob2,
			Knob3:    p.Knob3,
			Knob4:    p.Knob4,
			Knob5:    p.Knob5,
			Knob6:    p.Knob6,
		}
	}
	return effects
}

// PresetListCutoff is the number of received frames a preset-name
// catalog reserves, depending on how many frames the device actually
// sent: 200 when the device sent more than 143 frames, otherwise 48.
func PresetListCutoff(received int) int {
	if received > 143 {
		return 200
	}
	return 48
}

// DecodePresetListFromData recovers the preset-name catalog from the
// leading run of name packets in a load-command reply stream, taking
// every other entry (indices 0, 2, 4, ...) up to the frame-count cutoff.
func DecodePresetListFromData(packets []Raw) []string {
	max := PresetListCutoff(len(packets))
	if max > len(packets) {
		max = len(packets)
	}

	names := make([]string, 0, (max+1)/2)
	for i := 0; i < max; i += 2 {
		names = append(names, DecodeNameFromData(packets[i]))
	}
	return names
}

// DecodeSignalChain assembles a SignalChain from the 7 frames that
// follow a preset catalog or a select-memory-bank drain: a name frame,
// an amp-settings frame, four effect frames, and a trailing USB-gain
// frame.
func DecodeSignalChain(frames [7]Raw) SignalChain {
	name := DecodeNameFromData(frames[0])
	amp := DecodeAmpFromData(frames[1], frames[6])
	effects := DecodeEffectsFromData([4]Raw{frames[2], frames[3], frames[4], frames[5]})
	return SignalChain{Name: name, Amp: amp, Effects: effects}
}
