package mdview

// Span is one inline formatting unit within a block's text.
type Span struct {
	Kind     SpanKind
	Text     string         // SpanText and SpanCode literal content, SpanLink label
	URL      string         // SpanLink destination
	Children InlineSequence // SpanBold and SpanItalic nested spans
}

// InlineSequence is an ordered run of spans produced from one line of text.
type InlineSequence []Span

// SpanKind discriminates the Span variants.
type SpanKind uint8

const (
	// SpanText is plain literal text.
	SpanText SpanKind = iota
	// SpanBold is a **strong** span; its children are inline-parsed.
	SpanBold
	// SpanItalic is an *emphasis* span; its children are inline-parsed.
	SpanItalic
	// SpanCode is an inline code span; its content is literal.
	SpanCode
	// SpanLink is a [text](url) span; label and URL are literal.
	SpanLink
)

func textSpan(text string) Span {
	return Span{Kind: SpanText, Text: text}
}

func codeSpan(text string) Span {
	return Span{Kind: SpanCode, Text: text}
}

func linkSpan(text, url string) Span {
	return Span{Kind: SpanLink, Text: text, URL: url}
}
