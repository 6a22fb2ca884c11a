// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "testing"

func TestEffectIDTableBijective(t *testing.T) {
	t.Parallel()

	for effect, entry := range effectTable {
		if got := LookupEffectByID(entry.id); got != effect {
			t.Errorf("LookupEffectByID(0x%04x): got %v, want %v", entry.id, got, effect)
		}
	}
}

func TestFxKnobByFamily(t *testing.T) {
	t.Parallel()

	specs := []struct {
		effect Effect
		want   uint8
	}{
		{EffectOverdrive, 0x02},
		{EffectSineChorus, 0x01},
		{EffectMonoDelay, 0x01},
		{EffectSmallHallReverb, 0x01},
	}

	for _, spec := range specs {
		if got := FxKnob(spec.effect); got != spec.want {
			t.Errorf("FxKnob(%v): got 0x%02x, want 0x%02x", spec.effect, got, spec.want)
		}
	}
}

func TestSaveableInBank(t *testing.T) {
	t.Parallel()

	if SaveableInBank(EffectOverdrive) {
		t.Error("stompbox should not be saveable in a bank")
	}
	if !SaveableInBank(EffectStereoTapeDelay) {
		t.Error("delay effect should be saveable in a bank")
	}
}

func TestHasExtraKnobMembership(t *testing.T) {
	t.Parallel()

	yes := []Effect{EffectMonoEchoFilter, EffectStereoEchoFilter, EffectTapeDelay, EffectStereoTapeDelay}
	for _, e := range yes {
		if !HasExtraKnob(e) {
			t.Errorf("HasExtraKnob(%v): got false, want true", e)
		}
	}

	no := []Effect{EffectOverdrive, EffectSineChorus, EffectMonoDelay, EffectSmallHallReverb}
	for _, e := range no {
		if HasExtraKnob(e) {
			t.Errorf("HasExtraKnob(%v): got true, want false", e)
		}
	}
}

func TestEffectStringCoversTable(t *testing.T) {
	t.Parallel()

	for effect := range effectTable {
		if got := effect.String(); got == "" {
			t.Errorf("Effect(%d).String() is empty", int(effect))
		}
	}
	if got := EffectEmpty.String(); got != "(empty)" {
		t.Errorf("EffectEmpty.String(): got %q, want %q", got, "(empty)")
	}
}
