// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/mustangctl/mustang/config"
	"github.com/mustangctl/mustang/protocol"
	"github.com/mustangctl/mustang/session"
	"github.com/mustangctl/mustang/transport"
	"github.com/mustangctl/mustang/tuner"
)

func main() {
	configPath := pflag.String("config", "mustangctl.yaml", "path to a device-profile YAML file")
	verbose := pflag.Bool("verbose", false, "enable debug logging")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(`
Usage: mustangctl [FLAGS] <command> [ARGS]

Commands:
  list               print the preset catalog and the active signal chain
  load SLOT          load memory bank SLOT and print the resulting chain
  amp ID [knobs...]  apply amp model ID (hex wire id) with up to 7 knob values
  fx SLOT ID [knobs] apply effect model ID (hex wire id) to SLOT
  tuner              enter tuner mode and print note updates until Ctrl-C

Flags:
`))
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("no device profile file found, using built-in defaults", "err", err)
		cfg = config.Default()
	}

	t := transport.NewUSBTransport(logger)
	s := session.NewSession(t, session.WithLogger(logger))

	if err := s.Open(cfg.PIDs()); err != nil {
		logger.Fatal("could not open amplifier", "err", err)
	}
	defer s.Stop()

	data, err := s.Start()
	if err != nil {
		logger.Fatal("could not start session", "err", err)
	}

	switch args[0] {
	case "list":
		runList(data)
	case "load":
		runLoad(s, args[1:])
	case "amp":
		runAmp(s, args[1:])
	case "fx":
		runFx(s, args[1:])
	case "tuner":
		runTuner(s, t, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		pflag.Usage()
		os.Exit(2)
	}
}

func printChain(label string, chain protocol.SignalChain) {
	fmt.Printf("%s: %q\n", label, chain.Name)
	fmt.Printf("  amp:     %s, cabinet %s\n", chain.Amp.Amp, chain.Amp.Cabinet)
	for _, eff := range chain.Effects {
		if eff.Effect == protocol.EffectEmpty || eff.Effect == protocol.EffectUnknown {
			continue
		}
		fmt.Printf("  fx[%d]:   %s\n", eff.FxSlot, eff.Effect)
	}
}

func runList(data protocol.InitialData) {
	fmt.Println("Presets:")
	for i, name := range data.Names {
		fmt.Printf("  %3d  %s\n", i, name)
	}
	printChain("Active", data.Current)
}

func runLoad(s *session.Session, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: mustangctl load SLOT")
		os.Exit(2)
	}
	slot, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid slot %q: %v\n", args[0], err)
		os.Exit(2)
	}
	chain, err := s.LoadMemoryBank(uint8(slot))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
		os.Exit(1)
	}
	printChain(fmt.Sprintf("Slot %d", slot), chain)
}

func parseWireID(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
}

func runAmp(s *session.Session, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: mustangctl amp ID [gain volume treble middle bass presence bias]")
		os.Exit(2)
	}
	id, err := parseWireID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amp id %q: %v\n", args[0], err)
		os.Exit(2)
	}
	knobs := parseKnobs(args[1:], 7)

	settings := protocol.AmpSettings{
		Amp: protocol.LookupAmpByID(uint8(id)),
	}
	if len(knobs) > 0 {
		settings.Gain = knobs[0]
	}
	if len(knobs) > 1 {
		settings.Volume = knobs[1]
	}
	if len(knobs) > 2 {
		settings.Treble = knobs[2]
	}
	if len(knobs) > 3 {
		settings.Middle = knobs[3]
	}
	if len(knobs) > 4 {
		settings.Bass = knobs[4]
	}
	if len(knobs) > 5 {
		settings.Presence = knobs[5]
	}
	if len(knobs) > 6 {
		settings.Bias = knobs[6]
	}

	if err := s.SetAmplifier(settings); err != nil {
		fmt.Fprintf(os.Stderr, "amp failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("applied %s\n", settings.Amp)
}

func runFx(s *session.Session, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mustangctl fx SLOT ID [knob1..knob6]")
		os.Exit(2)
	}
	slot, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid slot %q: %v\n", args[0], err)
		os.Exit(2)
	}
	id, err := parseWireID(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid effect id %q: %v\n", args[1], err)
		os.Exit(2)
	}
	knobs := parseKnobs(args[2:], 6)

	settings := protocol.EffectSettings{
		Effect: protocol.LookupEffectByID(uint16(id)),
		FxSlot: uint8(slot),
	}
	vals := [6]*uint8{&settings.Knob1, &settings.Knob2, &settings.Knob3, &settings.Knob4, &settings.Knob5, &settings.Knob6}
	for i, v := range knobs {
		if i >= len(vals) {
			break
		}
		*vals[i] = v
	}

	if err := s.SetEffect(settings); err != nil {
		fmt.Fprintf(os.Stderr, "fx failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("applied %s to slot %d\n", settings.Effect, slot)
}

func parseKnobs(args []string, max int) []uint8 {
	knobs := make([]uint8, 0, max)
	for i, a := range args {
		if i >= max {
			break
		}
		v, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid knob value %q: %v\n", a, err)
			os.Exit(2)
		}
		knobs = append(knobs, uint8(v))
	}
	return knobs
}

func runTuner(s *session.Session, t transport.Transport, logger *log.Logger) {
	if err := s.SetTuner(true); err != nil {
		logger.Fatal("could not enter tuner mode", "err", err)
	}

	feed := tuner.NewFeed(t, tuner.WithLogger(logger))
	feed.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	fmt.Println("tuner mode: press Ctrl-C to exit")
	for {
		select {
		case ev := <-feed.Events():
			fmt.Printf("\r%s", ev.Rendered)
		case <-sig:
			fmt.Println()
			feed.Stop()
			if err := s.SetTuner(false); err != nil {
				logger.Error("failed to leave tuner mode cleanly", "err", err)
			}
			return
		}
	}
}
