package mdview

import (
	"fmt"
	"io"
	"strings"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Title   string
	Theme   Theme
	CSS     string // overrides the theme stylesheet when non-empty
	Options []Option
}

// Convert reads Markdown from the request reader and writes a complete
// HTML page to the writer. Malformed Markdown never fails; only I/O and
// input validation errors are reported.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("convert: read: %w", err)
	}
	doc, err := Parse(src, req.Options...)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	css := req.CSS
	if css == "" {
		theme := req.Theme
		if theme == nil {
			theme = DefaultTheme()
		}
		css = theme.CSS()
	}
	page := RenderPage(PageData{
		Title: req.Title,
		Body:  RenderHTML(doc),
		CSS:   css,
	})
	if _, err := io.WriteString(req.Writer, page); err != nil {
		return fmt.Errorf("convert: write: %w", err)
	}
	return nil
}

// Parse validates the source, strips front matter and segments it into
// a fresh Document.
func Parse(src []byte, opts ...Option) (*Document, error) {
	cfg := newParseConfig(opts)
	if cfg.validate {
		if err := ValidateInput(src); err != nil {
			return nil, err
		}
	}
	lines := splitLines(string(src))
	if cfg.frontMatter {
		lines = stripFrontMatter(lines)
	}
	return Segment(lines), nil
}

func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
