// Package palette defines the color palettes behind the built-in CSS
// themes.
package palette

// Palette is the set of colors a theme derives its stylesheet from.
type Palette struct {
	Background string
	Text       string
	Heading    string
	Link       string
	Code       string
	CodeBG     string
	Border     string
	RuleColor  string
}

var PaletteDefault = Palette{
	Background: "#ffffff",
	Text:       "#24292f",
	Heading:    "#1f2328",
	Link:       "#0969da",
	Code:       "#1f2328",
	CodeBG:     "#f6f8fa",
	Border:     "#d0d7de",
	RuleColor:  "#d0d7de",
}

var PaletteDark = Palette{
	Background: "#0d1117",
	Text:       "#e6edf3",
	Heading:    "#f0f6fc",
	Link:       "#4493f8",
	Code:       "#e6edf3",
	CodeBG:     "#161b22",
	Border:     "#30363d",
	RuleColor:  "#30363d",
}

var PaletteSolarizedLight = Palette{
	Background: "#fdf6e3",
	Text:       "#657b83",
	Heading:    "#586e75",
	Link:       "#268bd2",
	Code:       "#586e75",
	CodeBG:     "#eee8d5",
	Border:     "#93a1a1",
	RuleColor:  "#93a1a1",
}

var PaletteSolarizedDark = Palette{
	Background: "#002b36",
	Text:       "#839496",
	Heading:    "#93a1a1",
	Link:       "#268bd2",
	Code:       "#93a1a1",
	CodeBG:     "#073642",
	Border:     "#586e75",
	RuleColor:  "#586e75",
}

var PaletteGruvbox = Palette{
	Background: "#282828",
	Text:       "#ebdbb2",
	Heading:    "#fabd2f",
	Link:       "#83a598",
	Code:       "#ebdbb2",
	CodeBG:     "#3c3836",
	Border:     "#504945",
	RuleColor:  "#504945",
}

var PaletteNord = Palette{
	Background: "#2e3440",
	Text:       "#d8dee9",
	Heading:    "#eceff4",
	Link:       "#88c0d0",
	Code:       "#d8dee9",
	CodeBG:     "#3b4252",
	Border:     "#4c566a",
	RuleColor:  "#4c566a",
}

var PaletteDracula = Palette{
	Background: "#282a36",
	Text:       "#f8f8f2",
	Heading:    "#bd93f9",
	Link:       "#8be9fd",
	Code:       "#f8f8f2",
	CodeBG:     "#44475a",
	Border:     "#6272a4",
	RuleColor:  "#6272a4",
}

var PaletteSepia = Palette{
	Background: "#f4ecd8",
	Text:       "#5b4636",
	Heading:    "#433022",
	Link:       "#1e6a8d",
	Code:       "#5b4636",
	CodeBG:     "#eadfc8",
	Border:     "#c3b091",
	RuleColor:  "#c3b091",
}
