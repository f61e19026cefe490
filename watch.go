package mdview

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"time"
)

// DefaultPollInterval bounds staleness of the watched file without
// busy-spinning.
const DefaultPollInterval = 200 * time.Millisecond

// Watcher observes one input path and republishes the render pipeline's
// output to a RenderCache when the file changes.
type Watcher struct {
	// Path is the watched input file.
	Path string
	// Cache receives every successful render.
	Cache *RenderCache
	// Render turns source bytes into the HTML fragment to publish.
	Render func(src []byte) (string, error)
	// Interval is the poll period; DefaultPollInterval when zero.
	Interval time.Duration
	// Logf, when set, receives watch events.
	Logf func(format string, args ...any)

	sum uint64
}

// Run renders and publishes once, then polls until ctx is done. The
// initial pass reports errors to the caller; after that, failures are
// swallowed and retried on the next tick so an editor mid-save can
// never take the server down.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.pollOnce(); err != nil {
		return fmt.Errorf("watch %s: %w", w.Path, err)
	}
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.pollOnce(); err != nil {
				w.logf("watch: %v (retrying next tick)", err)
			}
		}
	}
}

// pollOnce reads and hashes the file on every tick. File metadata is
// deliberately not trusted as a change signal: an editor can rewrite
// the same number of bytes within the filesystem's mtime granularity.
// The content hash alone decides, so a bare touch does not republish
// and no edit is missed.
func (w *Watcher) pollOnce() error {
	src, err := os.ReadFile(w.Path)
	if err != nil {
		return err
	}
	sum := contentSum(src)
	if sum == w.sum {
		return nil
	}
	html, err := w.Render(src)
	if err != nil {
		return err
	}
	version := w.Cache.Publish(html)
	w.sum = sum
	if version > 1 {
		w.logf("change detected, published version %d", version)
	}
	return nil
}

func contentSum(src []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(src)
	sum := h.Sum64()
	if sum == 0 {
		// zero marks "never rendered"
		sum = 1
	}
	return sum
}

func (w *Watcher) logf(format string, args ...any) {
	if w.Logf != nil {
		w.Logf(format, args...)
	}
}
