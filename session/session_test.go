// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustangctl/mustang/protocol"
	"github.com/mustangctl/mustang/transport"
)

// ack queues a single generic 64-byte acknowledgement frame.
func ack(ft *transport.FakeTransport) {
	ft.Queue(make([]byte, protocol.PacketSize))
}

func TestOpenRequiresClosedState(t *testing.T) {
	ft := transport.NewFakeTransport()
	s := NewSession(ft)

	require.NoError(t, s.Open(nil))

	err := s.Open(nil)
	var sErr *Error
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, KindProtocolMisuse, sErr.Kind)
}

func TestStartBeforeOpenIsNotConnected(t *testing.T) {
	ft := transport.NewFakeTransport()
	ft.Close() // force IsOpen() == false without a transport.Opener
	s := NewSession(transport.NewFakeTransport())

	_ = ft
	// A freshly-constructed, never-opened session.
	fresh := NewSession(transport.NewFakeTransport())
	_, err := fresh.Start()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConnected))
	_ = s
}

func TestStartHandshakeAndPresetCatalog(t *testing.T) {
	ft := transport.NewFakeTransport()
	s := NewSession(ft)
	require.NoError(t, s.Open(nil))

	// tuner-off ack, two init acks.
	ack(ft)
	ack(ft)
	ack(ft)

	// Load-command reply: a 48-frame catalog (24 presets, every-other
	// decode; only the first two are named), then the 7-frame current
	// preset, then an empty read.
	name := func(n string) []byte {
		raw := protocol.SerializeName(0, n)
		return raw[:]
	}
	ft.Queue(name("Preset A"))
	ft.Queue(make([]byte, protocol.PacketSize))
	ft.Queue(name("Preset B"))
	ft.Queue(make([]byte, protocol.PacketSize))
	for i := 4; i < 48; i++ {
		ft.Queue(make([]byte, protocol.PacketSize))
	}

	ampRaw := protocol.SerializeAmpSettings(protocol.AmpSettings{Amp: protocol.AmpFender57Deluxe})
	usbGainRaw := protocol.SerializeAmpSettingsUsbGain(protocol.AmpSettings{USBGain: 42})
	effRaw := protocol.SerializeEffectSettings(protocol.EffectSettings{Effect: protocol.EffectEmpty})

	ft.Queue(name("Current"))
	ft.Queue(ampRaw[:])
	ft.Queue(effRaw[:])
	ft.Queue(effRaw[:])
	ft.Queue(effRaw[:])
	ft.Queue(effRaw[:])
	ft.Queue(usbGainRaw[:])

	data, err := s.Start()
	require.NoError(t, err)
	require.Len(t, data.Names, 24)
	assert.Equal(t, []string{"Preset A", "Preset B"}, data.Names[:2])
	assert.Equal(t, "Current", data.Current.Name)
}

func TestStartReturnsShortPresetStreamInsteadOfPanicking(t *testing.T) {
	ft := transport.NewFakeTransport()
	s := NewSession(ft)
	require.NoError(t, s.Open(nil))

	ack(ft)
	ack(ft)
	ack(ft)
	// Only two frames total in the load reply: far short of the 48+7
	// minimum, and short even of the default 7-frame trailer.
	ft.Queue(make([]byte, protocol.PacketSize))
	ft.Queue(make([]byte, protocol.PacketSize))

	_, err := s.Start()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortPresetStream))
}

func startedSession(t *testing.T) (*Session, *transport.FakeTransport) {
	t.Helper()
	ft := transport.NewFakeTransport()
	s := NewSession(ft)
	require.NoError(t, s.Open(nil))

	ack(ft)
	ack(ft)
	ack(ft)
	for i := 0; i < 7; i++ {
		ft.Queue(make([]byte, protocol.PacketSize))
	}
	_, err := s.Start()
	require.Error(t, err) // short stream, but session is now running
	assert.True(t, errors.Is(err, ErrShortPresetStream))
	// Forget Start's own writes (tuner-off, two init packets, load) so
	// callers count only the packets of the operation under test.
	ft.Sent = nil
	return s, ft
}

func TestSetEffectClearsThenAppliesNonEmpty(t *testing.T) {
	s, ft := startedSession(t)

	ack(ft) // clear
	ack(ft) // apply
	ack(ft) // settings
	ack(ft) // apply

	err := s.SetEffect(protocol.EffectSettings{Effect: protocol.EffectSineChorus})
	require.NoError(t, err)
	assert.Len(t, ft.Sent, 4)
}

func TestSetEffectEmptyStopsAfterClear(t *testing.T) {
	s, ft := startedSession(t)

	ack(ft) // clear
	ack(ft) // apply

	err := s.SetEffect(protocol.EffectSettings{Effect: protocol.EffectEmpty})
	require.NoError(t, err)
	assert.Len(t, ft.Sent, 2)
}

func TestSetAmplifierSendsFourPackets(t *testing.T) {
	s, ft := startedSession(t)

	ack(ft)
	ack(ft)
	ack(ft)
	ack(ft)

	err := s.SetAmplifier(protocol.AmpSettings{Amp: protocol.AmpBritish70s})
	require.NoError(t, err)
	assert.Len(t, ft.Sent, 4)
}

func TestSetTunerTogglesActiveAndBlocksControlCalls(t *testing.T) {
	s, ft := startedSession(t)

	ack(ft)
	require.NoError(t, s.SetTuner(true))

	_, err := s.LoadMemoryBank(0)
	var sErr *Error
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, KindProtocolMisuse, sErr.Kind)

	ack(ft)
	require.NoError(t, s.SetTuner(false))
}

func TestStopIsIdempotent(t *testing.T) {
	s, ft := startedSession(t)
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
	assert.Equal(t, 1, ft.CloseCount())
}

func TestSaveEffectsRejectsInvalidLeadingEffect(t *testing.T) {
	s, _ := startedSession(t)

	err := s.SaveEffects(0, "Bad", []protocol.EffectSettings{
		{Effect: protocol.EffectSimpleComp},
		{Effect: protocol.EffectSineChorus},
	})
	require.Error(t, err)
	var sErr *Error
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, KindProtocolMisuse, sErr.Kind)
}

func TestSaveEffectsTwoModulationEffectsWritesNamePlusTwoPackets(t *testing.T) {
	s, ft := startedSession(t)

	ack(ft) // name
	ack(ft) // effect 1
	ack(ft) // effect 2
	ack(ft) // apply

	err := s.SaveEffects(1, "MyFx", []protocol.EffectSettings{
		{Effect: protocol.EffectSineChorus},
		{Effect: protocol.EffectStereoTapeDelay},
	})
	require.NoError(t, err)
	assert.Len(t, ft.Sent, 4)
}
