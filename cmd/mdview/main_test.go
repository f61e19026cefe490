package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/mdview"
)

func TestReadInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.md")
	if err := os.WriteFile(path, []byte("# hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	buf, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput file: %v", err)
	}
	if string(buf) != "# hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# remote"))
	}))
	defer srv.Close()
	buf, err = readInput(srv.URL)
	if err != nil {
		t.Fatalf("readInput http: %v", err)
	}
	if string(buf) != "# remote" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestResolveOutputStdout(t *testing.T) {
	w, closer, err := resolveOutput("-")
	if err != nil {
		t.Fatalf("resolveOutput: %v", err)
	}
	if w != os.Stdout {
		t.Fatalf("expected stdout writer")
	}
	if closer != nil {
		t.Fatalf("stdout must not be closed")
	}
}

func TestResolveOutputCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "doc.html")
	w, closer, err := resolveOutput(path)
	if err != nil {
		t.Fatalf("resolveOutput: %v", err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestResolveCSS(t *testing.T) {
	theme := mdview.DefaultTheme()

	css, err := resolveCSS("", theme)
	if err != nil {
		t.Fatalf("resolveCSS empty: %v", err)
	}
	if css != theme.CSS() {
		t.Fatalf("expected theme stylesheet fallback")
	}

	dir := t.TempDir()
	good := filepath.Join(dir, "good.css")
	if err := os.WriteFile(good, []byte("body { color: red }"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}
	css, err = resolveCSS(good, theme)
	if err != nil {
		t.Fatalf("resolveCSS file: %v", err)
	}
	if !strings.Contains(css, "color: red") {
		t.Fatalf("override stylesheet not loaded: %q", css)
	}

	bad := filepath.Join(dir, "bad.css")
	if err := os.WriteFile(bad, []byte("body { color: "), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}
	if _, err := resolveCSS(bad, theme); err == nil {
		t.Fatalf("expected error for broken stylesheet")
	}
}

func TestNormalizePathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got := normalizePath("~/notes.md")
	if got != filepath.Join(home, "notes.md") {
		t.Fatalf("expected home expansion, got %q", got)
	}
}
