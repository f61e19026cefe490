package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Init()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, 200*time.Millisecond, cfg.Poll)
	assert.Empty(t, cfg.CSS)
	assert.Empty(t, cfg.Title)
}

func TestInitReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := "theme: dark\naddr: 127.0.0.1:9999\npoll: 1s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mdview.yaml"), []byte(yaml), 0o644))

	cfg, err := Init()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, time.Second, cfg.Poll)
}

func TestInitEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mdview.yaml"), []byte("theme: dark\n"), 0o644))
	t.Setenv("MDVIEW_THEME", "nord")

	cfg, err := Init()
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.Theme)
}

func TestInitIgnoresMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mdview.yaml"), []byte("{not yaml"), 0o644))

	cfg, err := Init()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)
}
