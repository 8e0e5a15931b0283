package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scilla/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scilla.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults, cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[Output]
Format = "yaml"
ShowTypes = false

[LSP]
Verbosity = 2
LogFile = "/tmp/scilla-lsp.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.False(t, cfg.Output.ShowTypes)
	assert.True(t, cfg.Output.ShowProcedures, "keys left out keep their default")
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 2, cfg.LSP.Verbosity)
	assert.Equal(t, "/tmp/scilla-lsp.log", cfg.LSP.LogFile)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[Output]\nColour = true\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Colour")
	assert.ErrorIs(t, err, &errors.Error{Kind: errors.KindIO, Code: errors.ErrorConfig})
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "[Output]\nFormat = \"xml\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Defaults
	cfg.Output.Format = "json"

	out, err := cfg.Marshal()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "[Output]"), string(out))

	var decoded Config
	require.NoError(t, Decode(bytes.NewReader(out), &decoded))
	assert.Equal(t, cfg, decoded)
}
