// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "testing"

func TestSerializeEveryPacketIs64Bytes(t *testing.T) {
	t.Parallel()

	inits := SerializeInitCommand()
	fx, err := SerializeSaveEffectPacket(0, []EffectSettings{{Effect: EffectSineChorus}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	packets := []Raw{
		inits[0], inits[1],
		SerializeLoadCommand(),
		SerializeLoadSlotCommand(1),
		SerializeApplyCommand(),
		SerializeApplyCommandForEffect(EffectOverdrive),
		SerializeClearEffectSettings(),
		SerializeName(0, "Preset"),
		SerializeAmpSettings(AmpSettings{Amp: AmpFender65DeluxeReverb}),
		SerializeAmpSettingsUsbGain(AmpSettings{}),
		SerializeEffectSettings(EffectSettings{Effect: EffectOverdrive}),
		SerializeTunerCommand(true),
		SerializeTunerCommand(false),
		fx[0],
	}

	for i, p := range packets {
		if len(p) != PacketSize {
			t.Errorf("packet %d: length %d, want %d", i, len(p), PacketSize)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	t.Parallel()

	specs := []string{"", "Clean", "A much too long preset name indeed"}
	for _, name := range specs {
		raw := SerializeName(7, name)
		want := name
		if len(want) > nameMaxLen {
			want = want[:nameMaxLen]
		}
		if got := DecodeNameFromData(raw); got != want {
			t.Errorf("SerializeName(%q): decoded %q, want %q", name, got, want)
		}
	}
}

func TestAmpSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	in := AmpSettings{
		Amp: AmpBritish60s, Gain: 5, Volume: 6, Treble: 7, Middle: 8, Bass: 9,
		Presence: 10, Bias: 11, NoiseGate: 2, Cabinet: CabBritish60s, Sag: 1,
		Brightness: 1, Gain2: 3, MasterVolume: 4, USBGain: 12,
	}

	ampRaw := SerializeAmpSettings(in)
	gainRaw := SerializeAmpSettingsUsbGain(in)
	out := DecodeAmpFromData(ampRaw, gainRaw)

	// Depth is not carried when the noise gate is below 5: the serializer
	// forces it to 0x80.
	want := in
	want.Depth = 0x80
	if out != want {
		t.Errorf("amp settings round trip: got %+v, want %+v", out, want)
	}
}

func TestAmpSettingsNoiseGateClamp(t *testing.T) {
	t.Parallel()

	raw := SerializeAmpSettings(AmpSettings{NoiseGate: 200})
	_, payload, err := Decode(raw[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := DecodeAmpPayload(payload).NoiseGate
	if got != 0x05 {
		t.Errorf("noise gate clamp: got %d, want %d", got, 0x05)
	}
}

func TestAmpSettingsThresholdOnlyHonoredAtNoiseGate5(t *testing.T) {
	t.Parallel()

	raw := SerializeAmpSettings(AmpSettings{NoiseGate: 0x05, Threshold: 200})
	_, payload, _ := Decode(raw[:])
	p := DecodeAmpPayload(payload)
	if p.Threshold != 0x09 {
		t.Errorf("threshold clamp: got %d, want %d", p.Threshold, 0x09)
	}
	if p.Depth == 0x80 {
		t.Errorf("depth should carry the value, not be forced to 0x80")
	}

	raw2 := SerializeAmpSettings(AmpSettings{NoiseGate: 0x02, Threshold: 9})
	_, payload2, _ := Decode(raw2[:])
	p2 := DecodeAmpPayload(payload2)
	if p2.Depth != 0x80 {
		t.Errorf("depth: got 0x%02x, want 0x80 when noise_gate != 5", p2.Depth)
	}
}

func TestAmpSettingsSagClamp(t *testing.T) {
	t.Parallel()

	raw := SerializeAmpSettings(AmpSettings{Sag: 200})
	_, payload, _ := Decode(raw[:])
	if got := DecodeAmpPayload(payload).Sag; got != 0x02 {
		t.Errorf("sag clamp: got %d, want %d", got, 0x02)
	}
}

// TestFender65DeluxeReverbOverride is scenario S3: the 65 Deluxe Reverb
// overrides the header unknown triple in addition to its amp-specific
// bytes.
func TestFender65DeluxeReverbOverride(t *testing.T) {
	t.Parallel()

	raw := SerializeAmpSettings(AmpSettings{Amp: AmpFender65DeluxeReverb})
	h, payload, _ := Decode(raw[:])

	if h.Unknown != [3]byte{0x00, 0x00, 0x01} {
		t.Errorf("header unknown override: got %v, want (0x00,0x00,0x01)", h.Unknown)
	}
	p := DecodeAmpPayload(payload)
	if p.Model != 0x53 {
		t.Errorf("model: got 0x%02x, want 0x53", p.Model)
	}
	if p.AmpSpecific != [5]byte{0x03, 0x03, 0x03, 0x03, 0x6a} {
		t.Errorf("amp-specific bytes: got %v, want (0x03,0x03,0x03,0x03,0x6a)", p.AmpSpecific)
	}
}

func TestSlotOffsetByPosition(t *testing.T) {
	t.Parallel()

	input := SerializeEffectSettings(EffectSettings{Effect: EffectOverdrive, FxSlot: 2, Position: PositionInput})
	_, p1, _ := Decode(input[:])
	if got := DecodeEffectPayload(p1).Slot; got != 2 {
		t.Errorf("input slot: got %d, want 2", got)
	}

	loop := SerializeEffectSettings(EffectSettings{Effect: EffectOverdrive, FxSlot: 2, Position: PositionEffectsLoop})
	_, p2, _ := Decode(loop[:])
	if got := DecodeEffectPayload(p2).Slot; got != 6 {
		t.Errorf("effects-loop slot: got %d, want 6", got)
	}
}

func TestEffectKnobClamps(t *testing.T) {
	t.Parallel()

	specs := []struct {
		name   string
		effect Effect
		set    EffectSettings
		check  func(EffectPayload) (got, want uint8)
	}{
		{
			"SimpleComp knob1",
			EffectSimpleComp,
			EffectSettings{Effect: EffectSimpleComp, Knob1: 200},
			func(p EffectPayload) (uint8, uint8) { return p.Knob1, 0x03 },
		},
		{
			"RingModulator knob4",
			EffectRingModulator,
			EffectSettings{Effect: EffectRingModulator, Knob4: 200},
			func(p EffectPayload) (uint8, uint8) { return p.Knob4, 0x01 },
		},
		{
			"MultitapDelay knob5",
			EffectMultitapDelay,
			EffectSettings{Effect: EffectMultitapDelay, Knob5: 200},
			func(p EffectPayload) (uint8, uint8) { return p.Knob5, 0x03 },
		},
		{
			"Phaser knob5",
			EffectPhaser,
			EffectSettings{Effect: EffectPhaser, Knob5: 200},
			func(p EffectPayload) (uint8, uint8) { return p.Knob5, 0x01 },
		},
	}

	for _, spec := range specs {
		raw := SerializeEffectSettings(spec.set)
		_, payload, _ := Decode(raw[:])
		got, want := spec.check(DecodeEffectPayload(payload))
		if got != want {
			t.Errorf("%s: got %d, want %d", spec.name, got, want)
		}
	}
}

func TestExtraKnobOnlyWrittenForExtraKnobEffects(t *testing.T) {
	t.Parallel()

	withExtra := SerializeEffectSettings(EffectSettings{Effect: EffectTapeDelay, Knob6: 9})
	_, p1, _ := Decode(withExtra[:])
	if got := DecodeEffectPayload(p1).Knob6; got != 9 {
		t.Errorf("extra-knob effect: knob6 got %d, want 9", got)
	}

	without := SerializeEffectSettings(EffectSettings{Effect: EffectOverdrive, Knob6: 9})
	_, p2, _ := Decode(without[:])
	if got := DecodeEffectPayload(p2).Knob6; got != 0 {
		t.Errorf("non-extra-knob effect: knob6 got %d, want 0", got)
	}
}

func TestSaveEffectsValidation(t *testing.T) {
	t.Parallel()

	// Rejects a stompbox.
	_, err := SerializeSaveEffectName(0, "Bad", []EffectSettings{{Effect: EffectOverdrive}})
	if err == nil {
		t.Fatal("expected error saving a stompbox into an effect bank")
	}

	// Accepts a single modulation effect.
	if _, err := SerializeSaveEffectName(0, "Ok", []EffectSettings{{Effect: EffectSineChorus}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Accepts two modulation/delay effects.
	if _, err := SerializeSaveEffectName(0, "Ok2", []EffectSettings{
		{Effect: EffectSineChorus}, {Effect: EffectStereoTapeDelay},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestSaveTwoModulationEffects is scenario S5.
func TestSaveTwoModulationEffects(t *testing.T) {
	t.Parallel()

	effects := []EffectSettings{
		{Effect: EffectSineChorus, FxSlot: 0},
		{Effect: EffectStereoTapeDelay, FxSlot: 1},
	}

	nameRaw, err := SerializeSaveEffectName(1, "MyFx", effects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, _, _ := Decode(nameRaw[:])
	if h.DSP != DSPOpSaveEffectName || h.Unknown[0] != 0x01 {
		t.Errorf("save-name header: got DSP=%v unknown0=0x%02x, want DSP=opSaveEffectName unknown0=0x01", h.DSP, h.Unknown[0])
	}

	packets, err := SerializeSaveEffectPacket(1, effects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("packet count: got %d, want 2", len(packets))
	}
	for i, p := range packets {
		ph, _, _ := Decode(p[:])
		if ph.Slot != 1 {
			t.Errorf("packet %d slot: got %d, want 1", i, ph.Slot)
		}
		if ph.Unknown[0] != 0x01 {
			t.Errorf("packet %d unknown0: got 0x%02x, want 0x01", i, ph.Unknown[0])
		}
	}

	applyRaw := SerializeApplyCommandForEffect(effects[0].Effect)
	ah, _, _ := Decode(applyRaw[:])
	if ah.Unknown[0] != 0x01 {
		t.Errorf("apply unknown0: got 0x%02x, want 0x01", ah.Unknown[0])
	}
}

func TestSaveEffectsRejectsOutOfRangeLeadingEffects(t *testing.T) {
	t.Parallel()

	_, err := SerializeSaveEffectPacket(0, []EffectSettings{
		{Effect: EffectOverdrive}, {Effect: EffectSineChorus},
	})
	if err == nil {
		t.Fatal("expected error: leading effect is a stompbox")
	}
}

func TestPresetListCutoff(t *testing.T) {
	t.Parallel()

	specs := []struct {
		received int
		want     int
	}{
		{0, 0},
		{10, 5},
		{48, 24},
		{143, 24},
		{144, 72},
		{200, 100},
		{250, 100},
	}

	for _, spec := range specs {
		packets := make([]Raw, spec.received)
		for i := range packets {
			packets[i] = SerializeName(0, "x")
		}
		names := DecodePresetListFromData(packets)
		if len(names) != spec.want {
			t.Errorf("received=%d: got %d names, want %d", spec.received, len(names), spec.want)
		}
	}
}
