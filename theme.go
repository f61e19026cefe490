package mdview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"

	"pkt.systems/mdview/internal/palette"
)

// Theme provides a named stylesheet for rendered pages.
type Theme interface {
	Name() string
	CSS() string
}

type theme struct {
	name string
	css  string
}

func (t theme) Name() string { return t.name }
func (t theme) CSS() string  { return t.css }

// NewTheme returns a Theme serving the given stylesheet.
func NewTheme(name, css string) Theme {
	return theme{name: name, css: css}
}

func cssFromPalette(p palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, `body {
  max-width: 48rem;
  margin: 2rem auto;
  padding: 0 1rem;
  font-family: system-ui, -apple-system, sans-serif;
  line-height: 1.6;
  background: %s;
  color: %s;
}
`, p.Background, p.Text)
	fmt.Fprintf(&b, `h1, h2, h3, h4, h5, h6 {
  color: %s;
  line-height: 1.25;
}
h1, h2 {
  border-bottom: 1px solid %s;
  padding-bottom: 0.3em;
}
`, p.Heading, p.Border)
	fmt.Fprintf(&b, `a {
  color: %s;
}
`, p.Link)
	fmt.Fprintf(&b, `code {
  font-family: ui-monospace, monospace;
  font-size: 0.9em;
  color: %s;
  background: %s;
  padding: 0.15em 0.3em;
  border-radius: 4px;
}
pre {
  background: %s;
  padding: 1em;
  border-radius: 6px;
  overflow-x: auto;
}
pre code {
  background: none;
  padding: 0;
}
`, p.Code, p.CodeBG, p.CodeBG)
	fmt.Fprintf(&b, `hr {
  border: none;
  border-top: 2px solid %s;
  margin: 1.5em 0;
}
li {
  margin: 0.2em 0;
}
`, p.RuleColor)
	return b.String()
}

func themeFromPalette(name string, p palette.Palette) Theme {
	return theme{name: name, css: cssFromPalette(p)}
}

var builtinThemes = map[string]Theme{
	"default":         themeFromPalette("default", palette.PaletteDefault),
	"dark":            themeFromPalette("dark", palette.PaletteDark),
	"solarized-light": themeFromPalette("solarized-light", palette.PaletteSolarizedLight),
	"solarized-dark":  themeFromPalette("solarized-dark", palette.PaletteSolarizedDark),
	"gruvbox":         themeFromPalette("gruvbox", palette.PaletteGruvbox),
	"nord":            themeFromPalette("nord", palette.PaletteNord),
	"dracula":         themeFromPalette("dracula", palette.PaletteDracula),
	"sepia":           themeFromPalette("sepia", palette.PaletteSepia),
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateCSS parses a stylesheet and reports the first syntax error.
// Override stylesheets are rejected at startup rather than served
// broken.
func ValidateCSS(css string) error {
	if _, err := parser.Parse(css); err != nil {
		return fmt.Errorf("css: %w", err)
	}
	return nil
}
