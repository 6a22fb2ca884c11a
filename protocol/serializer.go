// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "fmt"

func clamp(v, max uint8) uint8 {
	if v > max {
		return max
	}
	return v
}

// SerializeInitCommand returns the two handshake packets sent once per
// session start, in order.
func SerializeInitCommand() [2]Raw {
	p0 := Encode(Header{Stage: StageInit0, Type: TypeInit0, DSP: DSPNone}, EmptyPayload{})
	p1 := Encode(Header{Stage: StageInit1, Type: TypeInit1, DSP: DSPNone}, EmptyPayload{})
	return [2]Raw{p0, p1}
}

// SerializeLoadCommand starts a "dump all presets" stream.
func SerializeLoadCommand() Raw {
	return Encode(Header{Stage: StageUnknown, Type: TypeLoad, DSP: DSPNone}, EmptyPayload{})
}

// SerializeLoadSlotCommand selects a memory bank slot, either to load it
// or as the first step of confirming a save.
func SerializeLoadSlotCommand(slot uint8) Raw {
	h := Header{Stage: StageReady, Type: TypeOperation, DSP: DSPOpSelectMemBank, Slot: slot, Unknown: [3]byte{0x00, 0x01, 0x00}}
	return Encode(h, EmptyPayload{})
}

// SerializeApplyCommand builds a bare "apply pending settings" packet.
func SerializeApplyCommand() Raw {
	return Encode(Header{Stage: StageReady, Type: TypeData, DSP: DSPNone}, EmptyPayload{})
}

// SerializeApplyCommandForEffect builds an apply packet bound to effect,
// whose first unknown byte carries the effect's FX knob.
func SerializeApplyCommandForEffect(effect Effect) Raw {
	h := Header{Stage: StageReady, Type: TypeData, DSP: DSPNone, Unknown: [3]byte{FxKnob(effect), 0x00, 0x00}}
	return Encode(h, EmptyPayload{})
}

// SerializeClearEffectSettings zeroes out whatever effect currently
// occupies the slot that a following apply targets.
func SerializeClearEffectSettings() Raw {
	h := Header{Stage: StageReady, Type: TypeData, DSP: DSPNone, Unknown: [3]byte{0x00, 0x01, 0x01}}
	p := EffectPayload{Unknown: [3]byte{0x00, 0x08, 0x01}}
	return Encode(h, p)
}

// SerializeName builds a preset-name save packet, truncating name to 24
// bytes.
func SerializeName(slot uint8, name string) Raw {
	h := Header{Stage: StageReady, Type: TypeOperation, DSP: DSPOpSave, Slot: slot, Unknown: [3]byte{0x00, 0x01, 0x01}}
	return Encode(h, NamePayload{Name: name})
}

// SerializeAmpSettings builds the amp-settings data packet for value,
// clamping noise_gate, sag, and (when applicable) threshold to the
// ranges the firmware accepts.
func SerializeAmpSettings(value AmpSettings) Raw {
	h := Header{Stage: StageReady, Type: TypeData, DSP: DSPAmp, Unknown: [3]byte{0x00, 0x01, 0x01}}

	p := AmpPayload{
		Volume:       value.Volume,
		Gain:         value.Gain,
		Gain2:        value.Gain2,
		MasterVolume: value.MasterVolume,
		Treble:       value.Treble,
		Middle:       value.Middle,
		Bass:         value.Bass,
		Presence:     value.Presence,
		Bias:         value.Bias,
		NoiseGate:    clamp(value.NoiseGate, 0x05),
		Cabinet:      CabinetWireID(value.Cabinet),
		Sag:          clamp(value.Sag, 0x02),
		Brightness:   value.Brightness,
		Unknown:      [3]byte{0x80, 0x80, 0x01},
	}

	if value.NoiseGate == 0x05 {
		p.Threshold = clamp(value.Threshold, 0x09)
		p.Depth = value.Depth
	} else {
		p.Depth = 0x80
	}

	entry := ampWireData(value.Amp)
	p.Model = entry.id
	p.AmpSpecific = entry.specific
	if entry.headerOverride != nil {
		h.Unknown = *entry.headerOverride
	}

	return Encode(h, p)
}

// SerializeAmpSettingsUsbGain builds the twin packet that carries only
// the amp's USB input gain.
func SerializeAmpSettingsUsbGain(value AmpSettings) Raw {
	h := Header{Stage: StageReady, Type: TypeData, DSP: DSPUsbGain, Unknown: [3]byte{0x00, 0x01, 0x01}}
	p := AmpPayload{USBGain: value.USBGain}
	return Encode(h, p)
}

func effectSlotByte(value EffectSettings) uint8 {
	if value.Position == PositionEffectsLoop {
		return value.FxSlot + 4
	}
	return value.FxSlot
}

// SerializeEffectSettings builds the effect-settings data packet for
// value, choosing the target DSP block from the effect's family and
// applying every per-effect knob clamp and unknown-triple override the
// firmware expects.
func SerializeEffectSettings(value EffectSettings) Raw {
	h := Header{Stage: StageReady, Type: TypeData, DSP: DSPOf(value.Effect), Unknown: [3]byte{0x00, 0x01, 0x01}}

	p := EffectPayload{
		Slot:    effectSlotByte(value),
		Model:   uint8(EffectWireID(value.Effect)),
		Knob1:   value.Knob1,
		Knob2:   value.Knob2,
		Knob3:   value.Knob3,
		Knob4:   value.Knob4,
		Knob5:   value.Knob5,
		Unknown: [3]byte{0x00, 0x08, 0x01},
	}
	if HasExtraKnob(value.Effect) {
		p.Knob6 = value.Knob6
	}

	switch value.Effect {
	case EffectWah, EffectTouchWah:
		p.Unknown = [3]byte{0x01, 0x08, 0x01}
	case EffectSimpleComp:
		p.Knob1 = clamp(value.Knob1, 0x03)
		p.Knob2, p.Knob3, p.Knob4, p.Knob5 = 0, 0, 0, 0
		p.Unknown = [3]byte{0x08, 0x08, 0x01}
	case EffectRangeBoost, EffectGreenBox, EffectOrangeBox, EffectBlackBox, EffectBigFuzz:
		p.Unknown = [3]byte{0x00, 0x08, 0x01}
	case EffectSineChorus, EffectTriangleChorus, EffectSineFlanger, EffectTriangleFlanger,
		EffectVibratone, EffectVintageTremolo, EffectSineTremolo, EffectStepFilter:
		p.Unknown = [3]byte{0x01, 0x01, 0x01}
	case EffectRingModulator:
		p.Knob4 = clamp(value.Knob4, 0x01)
		p.Unknown = [3]byte{0x01, 0x08, 0x01}
	case EffectPhaser:
		p.Knob5 = clamp(value.Knob5, 0x01)
		p.Unknown = [3]byte{0x01, 0x01, 0x01}
	case EffectPitchShifter:
		p.Unknown = [3]byte{0x01, 0x08, 0x01}
	case EffectMultitapDelay:
		p.Knob5 = clamp(value.Knob5, 0x03)
		p.Unknown = [3]byte{0x02, 0x01, 0x01}
	case EffectMonoDelay, EffectMonoEchoFilter, EffectStereoEchoFilter, EffectPingPongDelay,
		EffectDuckingDelay, EffectReverseDelay, EffectTapeDelay, EffectStereoTapeDelay:
		p.Unknown = [3]byte{0x02, 0x01, 0x01}
	}

	return Encode(h, p)
}

// saveEffectsRepeat is the number of leading entries of an effects slice
// that a save-effects operation actually writes to the wire: every
// entry when there are 1 or 2, otherwise just the first.
func saveEffectsRepeat(n int) int {
	if n > 2 {
		return 1
	}
	return n
}

func validateSaveEffects(effects []EffectSettings) (int, error) {
	if len(effects) == 0 {
		return 0, ErrEmptyEffectList
	}
	repeat := saveEffectsRepeat(len(effects))
	for i := 0; i < repeat; i++ {
		if !SaveableInBank(effects[i].Effect) {
			return 0, fmt.Errorf("protocol: save effect at index %d: %w", i, ErrInvalidSaveEffect)
		}
	}
	return repeat, nil
}

// SerializeSaveEffectName builds the name packet that precedes a saved
// effect bank. It rejects effects whose leading entries are not
// modulation, delay, or reverb effects.
func SerializeSaveEffectName(slot uint8, name string, effects []EffectSettings) (Raw, error) {
	if _, err := validateSaveEffects(effects); err != nil {
		return Raw{}, err
	}
	h := Header{
		Stage:   StageReady,
		Type:    TypeOperation,
		DSP:     DSPOpSaveEffectName,
		Slot:    slot,
		Unknown: [3]byte{FxKnob(effects[0].Effect), 0x01, 0x01},
	}
	return Encode(h, NamePayload{Name: name}), nil
}

// SerializeSaveEffectPacket builds one SerializeEffectSettings packet per
// saved slot-effect, with the header slot and unknown triple overridden
// to identify the bank being written.
func SerializeSaveEffectPacket(slot uint8, effects []EffectSettings) ([]Raw, error) {
	repeat, err := validateSaveEffects(effects)
	if err != nil {
		return nil, err
	}
	fxKnob := FxKnob(effects[0].Effect)

	packets := make([]Raw, 0, repeat)
	for i := 0; i < repeat; i++ {
		raw := SerializeEffectSettings(effects[i])
		h := DecodeHeader(&raw)
		h.Slot = slot
		h.Unknown = [3]byte{fxKnob, 0x00, 0x01}
		h.Encode(&raw)
		packets = append(packets, raw)
	}
	return packets, nil
}

// tunerOnUnknown0 and tunerOffUnknown0 are the first header unknown byte
// of a tuner on/off command. The source excerpt this protocol was
// recovered from does not show serializeTunerCommand's body; this byte
// template reuses the apply-command shape (no dedicated tuner payload
// type is evidenced anywhere in the recovered source).
const (
	tunerOnUnknown0  = 0x01
	tunerOffUnknown0 = 0x00
)

// SerializeTunerCommand builds the packet that switches tuner mode on or
// off.
func SerializeTunerCommand(on bool) Raw {
	b := tunerOffUnknown0
	if on {
		b = tunerOnUnknown0
	}
	h := Header{Stage: StageReady, Type: TypeData, DSP: DSPNone, Unknown: [3]byte{byte(b), 0x00, 0x01}}
	return Encode(h, EmptyPayload{})
}
