package mdview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func passthroughRender(src []byte) (string, error) {
	return string(src), nil
}

func TestWatcherInitialRenderPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# one")

	cache := NewRenderCache()
	w := &Watcher{Path: path, Cache: cache, Render: passthroughRender, Interval: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	version, advanced := cache.Wait(waitCtx(t), 0)
	require.True(t, advanced)
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, "# one", cache.Read().HTML)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherMissingFileIsFatal(t *testing.T) {
	w := &Watcher{
		Path:   filepath.Join(t.TempDir(), "absent.md"),
		Cache:  NewRenderCache(),
		Render: passthroughRender,
	}
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherRepublishesOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# one")

	cache := NewRenderCache()
	w := &Watcher{Path: path, Cache: cache, Render: passthroughRender, Interval: 5 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	_, advanced := cache.Wait(waitCtx(t), 0)
	require.True(t, advanced)

	writeFile(t, path, "# two")
	version, advanced := cache.Wait(waitCtx(t), 1)
	require.True(t, advanced)
	assert.Equal(t, uint64(2), version)
	assert.Equal(t, "# two", cache.Read().HTML)
}

func TestWatcherSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# same")

	cache := NewRenderCache()
	w := &Watcher{Path: path, Cache: cache, Render: passthroughRender}
	require.NoError(t, w.pollOnce())
	require.Equal(t, uint64(1), cache.Read().Version)

	// Rewrite identical bytes; mtime moves but the content hash matches.
	writeFile(t, path, "# same")
	require.NoError(t, w.pollOnce())
	assert.Equal(t, uint64(1), cache.Read().Version)
}

func TestWatcherCatchesSameSizeSameMtimeEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# aaaa")

	cache := NewRenderCache()
	w := &Watcher{Path: path, Cache: cache, Render: passthroughRender}
	require.NoError(t, w.pollOnce())
	require.Equal(t, uint64(1), cache.Read().Version)

	info, err := os.Stat(path)
	require.NoError(t, err)

	// Same byte length, and the mtime pinned back to the original: the
	// edit is invisible to file metadata.
	writeFile(t, path, "# bbbb")
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	require.NoError(t, w.pollOnce())
	assert.Equal(t, uint64(2), cache.Read().Version)
	assert.Equal(t, "# bbbb", cache.Read().HTML)
}

func TestWatcherRetriesAfterRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "good")

	cache := NewRenderCache()
	var logged []string
	w := &Watcher{
		Path:  path,
		Cache: cache,
		Render: func(src []byte) (string, error) {
			if string(src) == "bad" {
				return "", fmt.Errorf("render broken")
			}
			return string(src), nil
		},
		Logf: func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		},
	}
	require.NoError(t, w.pollOnce())

	writeFile(t, path, "bad")
	require.Error(t, w.pollOnce())
	assert.Equal(t, uint64(1), cache.Read().Version)

	writeFile(t, path, "recovered")
	require.NoError(t, w.pollOnce())
	assert.Equal(t, uint64(2), cache.Read().Version)
	assert.Equal(t, "recovered", cache.Read().HTML)
	assert.Contains(t, logged, "change detected, published version 2")
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}
