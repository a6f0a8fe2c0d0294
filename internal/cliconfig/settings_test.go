package cliconfig

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingIsNotError(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestLoadFileDecodesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: keep\nwatch: /tmp/app.cfg\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", s.Policy)
	assert.Equal(t, "/tmp/app.cfg", s.Watch)
}

func TestResolveFlagOverridesFile(t *testing.T) {
	base := Settings{Policy: "keep", Watch: "/file/path"}
	over := Settings{Policy: "overwrite"}

	resolved, err := Resolve(base, over)
	require.NoError(t, err)
	assert.Equal(t, "overwrite", resolved.Policy, "non-empty flag value should win over the file value")
	assert.Equal(t, "/file/path", resolved.Watch, "unset flag value should leave the file value untouched")
}

func TestBindFlagsDefaultsToCurrentValue(t *testing.T) {
	s := Settings{Policy: "throw"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs, &s)
	assert.Equal(t, "throw", fs.Lookup("policy").DefValue)

	require.NoError(t, fs.Parse([]string{"-policy", "keep"}))
	assert.Equal(t, "keep", s.Policy)
}
