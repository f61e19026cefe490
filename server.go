package mdview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultReloadTimeout bounds how long a reload wait may hold its
// connection before the client has to reconnect to re-arm. It keeps
// idle or broken network intermediaries from pinning connections.
const DefaultReloadTimeout = 25 * time.Second

// ReloadServer serves the cached render and a push channel that tells
// connected browsers to reload when the cache version advances. It is
// only constructed in watch mode. Each client connection waits
// independently; closing the HTTP server cancels all open waits
// through the request contexts.
type ReloadServer struct {
	cache   *RenderCache
	title   string
	css     string
	timeout time.Duration
}

// NewReloadServer returns a server over the given cache serving css at
// /style.css.
func NewReloadServer(cache *RenderCache, title, css string) *ReloadServer {
	return &ReloadServer{
		cache:   cache,
		title:   title,
		css:     css,
		timeout: DefaultReloadTimeout,
	}
}

// SetReloadTimeout overrides the bounded wait on the push channel.
func (s *ReloadServer) SetReloadTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// Handler returns the HTTP handler exposing the rendered page, the
// stylesheet and the reload push channel.
func (s *ReloadServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/style.css", s.handleCSS)
	mux.HandleFunc("/reload", s.handleReload)
	return mux
}

func (s *ReloadServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	entry := s.cache.Read()
	page := RenderPage(PageData{
		Title:   s.title,
		Body:    entry.HTML,
		CSSHref: "/style.css",
		Reload:  true,
		Version: entry.Version,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = io.WriteString(w, page)
}

func (s *ReloadServer) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = io.WriteString(w, s.css)
}

// handleReload is the push channel: a server-sent event stream that
// blocks until the cache version advances past the version the client
// reports via ?v=, emits one reload event and closes. The client's
// EventSource reconnects to re-arm.
func (s *ReloadServer) handleReload(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	after := s.cache.Read().Version
	if raw := r.URL.Query().Get("v"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			after = v
		}
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, ": waiting\n\n")
	flusher.Flush()

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	version, advanced := s.cache.Wait(ctx, after)
	if !advanced {
		return
	}
	fmt.Fprintf(w, "id: %d\ndata: reload\n\n", version)
	flusher.Flush()
}
