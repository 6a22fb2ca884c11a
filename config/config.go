// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package config loads the YAML device-profile file mustangctl uses to
recognize a physical amplifier and pick sane defaults for it. The
protocol's model tables (protocol.Amp, protocol.Cabinet) are fixed by
the wire format; this package is strictly about which USB product ids
to try and what to call the thing once it is found.
*/
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mustangctl/mustang/transport"
)

// DeviceProfile names one member of the Mustang family by its USB
// product id, so a UI can show "Mustang III V2" instead of a bare hex
// PID.
type DeviceProfile struct {
	Name string `yaml:"name"`
	PID  uint16 `yaml:"pid"`
}

// Config is the root of a mustangctl device-profile file.
type Config struct {
	// Profiles lists every recognized product id, searched in the order
	// given when probing a device.
	Profiles []DeviceProfile `yaml:"profiles"`

	// ReceiveTimeoutMillis is read from the file, but nothing in this
	// module applies it: the USB transport always uses its built-in
	// 500ms transfer timeout.
	ReceiveTimeoutMillis int `yaml:"receive_timeout_ms"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// searchLocations is the ordered list of places Load tries when given a
// bare filename instead of a path: the working directory, a conventional
// ./config subdirectory, then the system-wide /etc location.
var searchLocations = []string{
	"mustangctl.yaml",
	"./config/mustangctl.yaml",
	"/etc/mustangctl/mustangctl.yaml",
}

// Default returns the built-in device profile set: one entry per
// product id protocol/transport already knows about, named the way the
// vendor application labels them.
func Default() *Config {
	return &Config{
		Profiles: []DeviceProfile{
			{Name: "Mustang I/II", PID: transport.SmallAmpsUSBPID},
			{Name: "Mustang III/IV/V", PID: transport.BigAmpsUSBPID},
			{Name: "Mustang I/II V2", PID: transport.SmallAmpsV2USBPID},
			{Name: "Mustang III/IV/V V2", PID: transport.BigAmpsV2USBPID},
			{Name: "Mustang Mini", PID: transport.MiniUSBPID},
			{Name: "Mustang Floor", PID: transport.FloorUSBPID},
		},
		LogLevel: "info",
	}
}

// Load reads and parses path. If path does not exist as given, Load
// tries each of searchLocations in turn before giving up.
func Load(path string) (*Config, error) {
	data, err := readFirst(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func readFirst(path string) ([]byte, error) {
	candidates := append([]string{path}, searchLocations...)

	var lastErr error
	for _, candidate := range candidates {
		f, err := os.Open(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", candidate, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no config file found (tried %v): %w", candidates, lastErr)
}

// PIDs returns the product ids from every profile, in order, for
// Session.Open.
func (c *Config) PIDs() []uint16 {
	pids := make([]uint16, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		pids = append(pids, p.PID)
	}
	return pids
}

// Name returns the profile name for pid, or "" if pid is not in the
// profile set.
func (c *Config) Name(pid uint16) string {
	for _, p := range c.Profiles {
		if p.PID == pid {
			return p.Name
		}
	}
	return ""
}
