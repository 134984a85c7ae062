package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: \"1\"\ncontainers: {}\n"), 0o644))

	w, err := NewWatcher(cfgPath, schemaPath, func(*Config, error) {})
	require.NoError(t, err)
	require.Equal(t, "1", w.Snapshot().Version)

	// Give the watch goroutine time to register before mutating the directory.
	time.Sleep(100 * time.Millisecond)

	// Replace the file atomically, the way editors and deploy tooling do:
	// write a temp file and rename it over the target. This never emits a
	// Write event for the watched path.
	tmp := filepath.Join(dir, "config.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("version: \"2\"\ncontainers: {}\n"), 0o644))
	require.NoError(t, os.Rename(tmp, cfgPath))

	assert.Eventually(t, func() bool {
		return w.ReloadCount() > 0 && w.Snapshot().Version == "2"
	}, 5*time.Second, 50*time.Millisecond)
}
