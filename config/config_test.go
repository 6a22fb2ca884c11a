// Copyright 2024 The go-mustang Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPIDsMatchTransportTable(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.PIDs(), 6)
	assert.Equal(t, "Mustang III/IV/V", cfg.Name(cfg.Profiles[1].PID))
}

func TestLoadParsedValuesReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mustangctl.yaml")
	contents := []byte(`
log_level: debug
profiles:
  - name: Bench Unit
    pid: 0x1234
`)
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, "Bench Unit", cfg.Profiles[0].Name)
}

func TestLoadFailsWhenNoFileIsFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
