package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/mdview"
	"pkt.systems/mdview/internal/config"
)

const defaultUsageWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdview")
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdview: config: %v\n", err)
		os.Exit(1)
	}

	var (
		watch      bool
		addr       string
		themeName  string
		cssPath    string
		poll       time.Duration
		outPath    string
		title      string
		listThemes bool
	)

	flags := pflag.NewFlagSet("mdview", pflag.ExitOnError)
	flags.BoolVarP(&watch, "watch", "w", false, "Serve the rendered page and reload browsers on change")
	flags.StringVar(&addr, "addr", cfg.Addr, "Listen address in watch mode")
	flags.StringVarP(&themeName, "theme", "t", cfg.Theme, "Theme name")
	flags.StringVar(&cssPath, "css", cfg.CSS, "CSS file overriding the theme stylesheet")
	flags.DurationVar(&poll, "poll", cfg.Poll, "Watch poll interval")
	flags.StringVarP(&outPath, "output", "o", "", "Output file ('-' for stdout)")
	flags.StringVar(&title, "title", cfg.Title, "Page title (defaults to the input name)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		width := terminalWidth(defaultUsageWidth)
		desc := "mdview converts Markdown into HTML. Without --watch it writes a " +
			"single HTML file. With --watch it serves the rendered page on an " +
			"embedded HTTP server and tells connected browsers to reload whenever " +
			"the input file changes."
		fmt.Fprintln(os.Stderr, wordwrap.String(desc, width))
		fmt.Fprintf(os.Stderr, "\nUsage: mdview [flags] INPUT [OUTPUT]\n\nFlags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range mdview.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	args := flags.Args()
	if len(args) < 1 {
		flags.Usage()
		os.Exit(2)
	}
	input := args[0]
	if outPath == "" && len(args) > 1 {
		outPath = args[1]
	}
	if title == "" {
		title = filepath.Base(input)
	}

	theme, ok := mdview.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q; available themes:\n", themeName)
		for _, name := range mdview.AvailableThemes() {
			fmt.Fprintln(os.Stderr, "  "+name)
		}
		os.Exit(2)
	}

	css, err := resolveCSS(cssPath, theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdview: %v\n", err)
		os.Exit(1)
	}

	if watch {
		if err := runWatch(input, addr, title, css, poll); err != nil {
			fmt.Fprintf(os.Stderr, "mdview: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runOnce(input, outPath, title, css); err != nil {
		fmt.Fprintf(os.Stderr, "mdview: %v\n", err)
		os.Exit(1)
	}
}

// runOnce is the single-shot pipeline: read, render, write, exit.
func runOnce(input, output, title, css string) error {
	if output == "" {
		return fmt.Errorf("output path required (positional OUTPUT or -o)")
	}
	src, err := readInput(input)
	if err != nil {
		return err
	}
	writer, closer, err := resolveOutput(output)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	return mdview.Convert(mdview.ConvertRequest{
		Reader: bytes.NewReader(src),
		Writer: writer,
		Title:  title,
		CSS:    css,
	})
}

// runWatch owns the live-reload service: render cache, polling watcher
// and embedded HTTP server. It blocks until interrupted.
func runWatch(input, addr, title, css string, poll time.Duration) error {
	input = normalizePath(input)
	if _, err := os.Stat(input); err != nil {
		return err
	}

	cache := mdview.NewRenderCache()
	watcher := &mdview.Watcher{
		Path:  input,
		Cache: cache,
		Render: func(src []byte) (string, error) {
			doc, err := mdview.Parse(src)
			if err != nil {
				return "", err
			}
			return mdview.RenderHTML(doc), nil
		},
		Interval: poll,
		Logf:     log.Printf,
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: mdview.NewReloadServer(cache, title, css).Handler(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errc := make(chan error, 2)
	go func() { errc <- watcher.Run(ctx) }()
	go func() { errc <- srv.ListenAndServe() }()

	log.Printf("serving %s on %s", input, serveLink(addr))

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}
	cancel()
	// Close rather than Shutdown so open push-channel waits terminate.
	_ = srv.Close()
	return runErr
}

func resolveCSS(cssPath string, theme mdview.Theme) (string, error) {
	if cssPath == "" {
		return theme.CSS(), nil
	}
	data, err := os.ReadFile(normalizePath(cssPath))
	if err != nil {
		return "", err
	}
	if err := mdview.ValidateCSS(string(data)); err != nil {
		return "", fmt.Errorf("%s: %w", cssPath, err)
	}
	return string(data), nil
}

func readInput(raw string) ([]byte, error) {
	if u, err := url.Parse(raw); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return mdview.Fetch(context.Background(), mdview.FetchRequest{URL: raw})
		}
	}
	return os.ReadFile(normalizePath(raw))
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "-" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

// serveLink renders the listen address as a clickable URL when the
// terminal supports OSC 8 hyperlinks.
func serveLink(addr string) string {
	u := "http://" + addr
	if strings.HasPrefix(addr, ":") {
		u = "http://localhost" + addr
	}
	if term.IsTerminal(int(os.Stderr.Fd())) && detectOSC8Support() {
		return "\x1b]8;;" + u + "\x1b\\" + u + "\x1b]8;;\x1b\\"
	}
	return u
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
