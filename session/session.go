// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/mustangctl/mustang/protocol"
	"github.com/mustangctl/mustang/transport"
)

type state int

const (
	stateClosed state = iota
	stateOpened
	stateRunning
)

// Option configures a Session. Options are applied in the order given
// to NewSession.
type Option func(*Session)

// WithLogger configures the Session to log through logger instead of
// the default stderr logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// Session is a stateful, single-device session. It owns a
// transport.Transport exclusively for its lifetime: closed, then opened
// after Open, then running after Start. Every exported method is safe
// to call from one goroutine at a time; the tuner feed is the only
// concurrent reader of the underlying transport, and only while tuner
// mode is on.
type Session struct {
	log *log.Logger

	mu          sync.Mutex
	t           transport.Transport
	state       state
	tunerActive bool
}

// NewSession returns a new, closed Session that will drive t.
func NewSession(t transport.Transport, opts ...Option) *Session {
	s := &Session{
		t:   t,
		log: log.New(os.Stderr),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transport returns the underlying transport, primarily so a tuner.Feed
// can be constructed against the same connection once tuner mode is on.
func (s *Session) Transport() transport.Transport {
	return s.t
}

// writeAck sends raw and performs exactly one receive to drain the
// device's acknowledgement, per the write-then-acknowledge invariant.
// The acknowledgement bytes are returned; every current caller discards
// them (the load-command and select-bank reply streams are read
// separately, not through writeAck).
func (s *Session) writeAck(op string, raw protocol.Raw) ([]byte, error) {
	if _, err := s.t.Send(raw[:]); err != nil {
		return nil, transportErr(op, err)
	}
	ack, err := s.t.Receive(protocol.PacketSize)
	if err != nil {
		return nil, transportErr(op, err)
	}
	return ack, nil
}

// Open opens the underlying transport against the fixed Fender vendor
// id and the given candidate product ids (transport.DefaultPIDs if
// nil). It fails if no device is found, or if t does not implement
// transport.Opener and is not already open. A transport that does not
// implement transport.Opener but is already open (e.g. a
// transport.FakeTransport, which is constructed open, for tests) is
// accepted as is.
func (s *Session) Open(pids []uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateClosed {
		return &Error{Kind: KindProtocolMisuse, Op: "Open", Err: fmt.Errorf("session already open")}
	}

	opener, ok := s.t.(transport.Opener)
	if ok {
		if err := opener.Open(pids); err != nil {
			return transportErr("Open", err)
		}
	} else if !s.t.IsOpen() {
		return transportErr("Open", fmt.Errorf("transport does not support Open and is not already open"))
	}

	s.state = stateOpened
	return nil
}

// Start runs the init handshake and loads the preset catalog and
// currently-active signal chain. It first forces tuner mode off to
// guarantee a clean state, matching the device firmware's expectation
// that the init handshake only ever runs with the tuner silent.
func (s *Session) Start() (protocol.InitialData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateClosed {
		return protocol.InitialData{}, notConnectedErr("Start")
	}

	if _, err := s.writeAck("Start", protocol.SerializeTunerCommand(false)); err != nil {
		return protocol.InitialData{}, err
	}
	s.tunerActive = false

	inits := protocol.SerializeInitCommand()
	for _, p := range inits {
		if _, err := s.writeAck("Start", p); err != nil {
			return protocol.InitialData{}, err
		}
	}

	load := protocol.SerializeLoadCommand()
	if _, err := s.t.Send(load[:]); err != nil {
		return protocol.InitialData{}, transportErr("Start", err)
	}

	var frames []protocol.Raw
	for {
		buf, err := s.t.Receive(protocol.PacketSize)
		if err != nil {
			return protocol.InitialData{}, transportErr("Start", err)
		}
		if len(buf) == 0 {
			break
		}
		var raw protocol.Raw
		copy(raw[:], buf)
		frames = append(frames, raw)
	}

	names := protocol.DecodePresetListFromData(frames)

	cutoff := protocol.PresetListCutoff(len(frames))
	if cutoff > len(frames) {
		cutoff = len(frames)
	}
	if len(frames) < cutoff+7 {
		s.state = stateRunning
		return protocol.InitialData{Names: names}, transportErr("Start", ErrShortPresetStream)
	}

	var presetFrames [7]protocol.Raw
	copy(presetFrames[:], frames[cutoff:cutoff+7])

	s.state = stateRunning
	return protocol.InitialData{
		Names:   names,
		Current: protocol.DecodeSignalChain(presetFrames),
	}, nil
}

// Stop closes the underlying transport. It is idempotent.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateClosed {
		return nil
	}
	if err := s.t.Close(); err != nil {
		return transportErr("Stop", err)
	}
	s.state = stateClosed
	s.tunerActive = false
	return nil
}

func (s *Session) requireRunning(op string) error {
	if s.state != stateRunning {
		return notConnectedErr(op)
	}
	if s.tunerActive {
		return &Error{Kind: KindProtocolMisuse, Op: op, Err: fmt.Errorf("tuner mode is on; call SetTuner(false) before any other control call")}
	}
	return nil
}

// SetEffect clears whatever effect currently occupies the slot and, if
// effect is not protocol.EffectEmpty, writes and applies the new
// effect's settings.
func (s *Session) SetEffect(effect protocol.EffectSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRunning("SetEffect"); err != nil {
		return err
	}

	if _, err := s.writeAck("SetEffect", protocol.SerializeClearEffectSettings()); err != nil {
		return err
	}
	if _, err := s.writeAck("SetEffect", protocol.SerializeApplyCommand()); err != nil {
		return err
	}

	if effect.Effect == protocol.EffectEmpty {
		return nil
	}

	if _, err := s.writeAck("SetEffect", protocol.SerializeEffectSettings(effect)); err != nil {
		return err
	}
	if _, err := s.writeAck("SetEffect", protocol.SerializeApplyCommand()); err != nil {
		return err
	}
	return nil
}

// SetAmplifier writes and applies amp settings, then writes and applies
// the companion USB-gain packet.
func (s *Session) SetAmplifier(amp protocol.AmpSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRunning("SetAmplifier"); err != nil {
		return err
	}

	if _, err := s.writeAck("SetAmplifier", protocol.SerializeAmpSettings(amp)); err != nil {
		return err
	}
	if _, err := s.writeAck("SetAmplifier", protocol.SerializeApplyCommand()); err != nil {
		return err
	}
	if _, err := s.writeAck("SetAmplifier", protocol.SerializeAmpSettingsUsbGain(amp)); err != nil {
		return err
	}
	if _, err := s.writeAck("SetAmplifier", protocol.SerializeApplyCommand()); err != nil {
		return err
	}
	return nil
}

// drainBank performs the 7-frame load-bank drain shared by SaveOnAmp and
// LoadMemoryBank: send the select-mem-bank command, then read frames
// until an empty read, keeping the first 7.
func (s *Session) drainBank(op string, slot uint8) ([7]protocol.Raw, error) {
	var frames [7]protocol.Raw

	cmd := protocol.SerializeLoadSlotCommand(slot)
	n, err := s.t.Send(cmd[:])
	if err != nil {
		return frames, transportErr(op, err)
	}

	for i := 0; n != 0; i++ {
		buf, err := s.t.Receive(protocol.PacketSize)
		if err != nil {
			return frames, transportErr(op, err)
		}
		n = len(buf)
		if n == 0 {
			break
		}
		if i < 7 {
			copy(frames[i][:], buf)
		}
	}
	return frames, nil
}

// SaveOnAmp writes the preset name into slot, then drains the bank
// reply to confirm the save.
func (s *Session) SaveOnAmp(name string, slot uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRunning("SaveOnAmp"); err != nil {
		return err
	}

	namePacket := protocol.SerializeName(slot, name)
	if _, err := s.writeAck("SaveOnAmp", namePacket); err != nil {
		return err
	}

	_, err := s.drainBank("SaveOnAmp", slot)
	return err
}

// LoadMemoryBank selects slot, drains its 7-frame reply, and decodes it
// into a SignalChain.
func (s *Session) LoadMemoryBank(slot uint8) (protocol.SignalChain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRunning("LoadMemoryBank"); err != nil {
		return protocol.SignalChain{}, err
	}

	frames, err := s.drainBank("LoadMemoryBank", slot)
	if err != nil {
		return protocol.SignalChain{}, err
	}
	return protocol.DecodeSignalChain(frames), nil
}

// SaveEffects writes the save-name packet, one packet per saved effect,
// and a final apply bound to the first effect's family.
func (s *Session) SaveEffects(slot uint8, name string, effects []protocol.EffectSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRunning("SaveEffects"); err != nil {
		return err
	}

	nameRaw, err := protocol.SerializeSaveEffectName(slot, name, effects)
	if err != nil {
		return misuseErr("SaveEffects", err)
	}
	if _, err := s.writeAck("SaveEffects", nameRaw); err != nil {
		return err
	}

	packets, err := protocol.SerializeSaveEffectPacket(slot, effects)
	if err != nil {
		return misuseErr("SaveEffects", err)
	}
	for _, p := range packets {
		if _, err := s.writeAck("SaveEffects", p); err != nil {
			return err
		}
	}

	apply := protocol.SerializeApplyCommandForEffect(effects[0].Effect)
	_, err = s.writeAck("SaveEffects", apply)
	return err
}

// SetTuner writes the tuner on/off command. Turning it on marks the
// session tuner-active, which blocks every other control call until
// SetTuner(false); it is then the caller's responsibility to start and
// stop a tuner.Feed against Session.Transport() while tuner mode is on.
func (s *Session) SetTuner(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return notConnectedErr("SetTuner")
	}

	if _, err := s.writeAck("SetTuner", protocol.SerializeTunerCommand(on)); err != nil {
		return err
	}
	s.tunerActive = on
	return nil
}
