package confwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	config "github.com/StormBytePP/StormByteConfig"
)

func TestReloadParsesFileIntoConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.cfg")
	require.NoError(t, os.WriteFile(path, []byte("X = 1\n"), 0o644))

	cfg := config.New(config.PolicyOverwrite)
	w, err := New(path, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, w.Reload())
	assert.True(t, cfg.Exists("X"))
}

func TestReloadReportsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.cfg")
	require.NoError(t, os.WriteFile(path, []byte("Invalid = { Unclosed }"), 0o644))

	cfg := config.New(config.PolicyOverwrite)
	w, err := New(path, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Error(t, w.Reload())
}

func TestRunReparsesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.cfg")
	require.NoError(t, os.WriteFile(path, []byte("X = 1\n"), 0o644))

	cfg := config.New(config.PolicyOverwrite)
	w, err := New(path, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, w.Reload())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("X = 1\nY = 2\n"), 0o644))

	require.Eventually(t, func() bool {
		return cfg.Exists("Y")
	}, 2*time.Second, 20*time.Millisecond, "Y should appear after the file is rewritten")

	require.NoError(t, w.Stop())
	cancel()
	<-done
}
