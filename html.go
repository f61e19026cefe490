package mdview

import (
	"fmt"
	"html"
	"strings"
)

var urlEscaper = strings.NewReplacer(`"`, "%22", "<", "%3C", ">", "%3E")

// RenderHTML maps a Document to an HTML fragment. Output depends only
// on the document; emission order mirrors block and span order exactly.
// All literal text is escaped for the five reserved characters before
// emission.
func RenderHTML(doc *Document) string {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		renderBlock(&b, blk)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, blk Block) {
	switch blk.Kind {
	case BlockHeading:
		fmt.Fprintf(b, "<h%d>", blk.Level)
		renderInline(b, blk.Content)
		fmt.Fprintf(b, "</h%d>\n", blk.Level)
	case BlockParagraph:
		b.WriteString("<p>")
		renderInline(b, blk.Content)
		b.WriteString("</p>\n")
	case BlockUnorderedList:
		renderList(b, "ul", blk.Items)
	case BlockOrderedList:
		renderList(b, "ol", blk.Items)
	case BlockCode:
		b.WriteString("<pre><code")
		if blk.Lang != "" {
			fmt.Fprintf(b, ` class="language-%s"`, html.EscapeString(blk.Lang))
		}
		b.WriteByte('>')
		for i, line := range blk.Lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(html.EscapeString(line))
		}
		b.WriteString("</code></pre>\n")
	case BlockRule:
		b.WriteString("<hr>\n")
	}
}

func renderList(b *strings.Builder, tag string, items []InlineSequence) {
	b.WriteString("<" + tag + ">\n")
	for _, item := range items {
		b.WriteString("<li>")
		renderInline(b, item)
		b.WriteString("</li>\n")
	}
	b.WriteString("</" + tag + ">\n")
}

func renderInline(b *strings.Builder, seq InlineSequence) {
	for _, span := range seq {
		switch span.Kind {
		case SpanText:
			b.WriteString(html.EscapeString(span.Text))
		case SpanBold:
			b.WriteString("<strong>")
			renderInline(b, span.Children)
			b.WriteString("</strong>")
		case SpanItalic:
			b.WriteString("<em>")
			renderInline(b, span.Children)
			b.WriteString("</em>")
		case SpanCode:
			b.WriteString("<code>")
			b.WriteString(html.EscapeString(span.Text))
			b.WriteString("</code>")
		case SpanLink:
			// URLs are escaped for quote and angle brackets only; they
			// are not otherwise re-interpreted.
			b.WriteString(`<a href="`)
			b.WriteString(urlEscaper.Replace(span.URL))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(span.Text))
			b.WriteString("</a>")
		}
	}
}
