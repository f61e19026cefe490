package mdview

import "strings"

// ParseInline resolves bold, italic, code and link markup inside one
// line of text. It scans left to right; code spans and links are
// matched first and shield their interior from emphasis delimiters. A
// delimiter with no closing run before end of line is demoted to
// literal text and scanning resumes one character past it. ParseInline
// is a pure function and cannot fail; malformed input degrades to
// literal text.
func ParseInline(text string) InlineSequence {
	var (
		out InlineSequence
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, textSpan(lit.String()))
			lit.Reset()
		}
	}
	i := 0
	for i < len(text) {
		switch text[i] {
		case '`':
			if j := strings.IndexByte(text[i+1:], '`'); j >= 0 {
				flush()
				out = append(out, codeSpan(text[i+1:i+1+j]))
				i += j + 2
				continue
			}
			lit.WriteByte('`')
			i++
		case '[':
			if label, url, size, ok := parseLink(text[i:]); ok {
				flush()
				out = append(out, linkSpan(label, url))
				i += size
				continue
			}
			lit.WriteByte('[')
			i++
		case '*':
			run := delimiterRun(text[i:], '*')
			// Longest run first: *** opens bold-around-italic, ** opens
			// bold, a single * opens italic. A failed attempt demotes
			// one star and retries at the next character. Closers are
			// searched with findCloser so a star inside a code span or
			// link never closes an emphasis run.
			if run >= 3 {
				if j := findCloser(text[i+3:], "***"); j >= 0 {
					flush()
					inner := ParseInline(text[i+3 : i+3+j])
					out = append(out, Span{
						Kind:     SpanBold,
						Children: InlineSequence{{Kind: SpanItalic, Children: inner}},
					})
					i += j + 6
					continue
				}
			}
			if run >= 2 {
				if j := findCloser(text[i+2:], "**"); j >= 0 {
					flush()
					out = append(out, Span{Kind: SpanBold, Children: ParseInline(text[i+2 : i+2+j])})
					i += j + 4
					continue
				}
			}
			if run == 1 {
				if j := findCloser(text[i+1:], "*"); j >= 0 {
					flush()
					out = append(out, Span{Kind: SpanItalic, Children: ParseInline(text[i+1 : i+1+j])})
					i += j + 2
					continue
				}
			}
			lit.WriteByte('*')
			i++
		default:
			lit.WriteByte(text[i])
			i++
		}
	}
	flush()
	return out
}

// parseLink matches the literal pattern [label](url) at the start of s.
// size is the number of bytes consumed. A missing ] or ) fails the
// match and the caller emits the opening bracket as literal text.
func parseLink(s string) (label, url string, size int, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", "", 0, false
	}
	cb := strings.IndexByte(s[1:], ']')
	if cb < 0 {
		return "", "", 0, false
	}
	cb++
	if cb+1 >= len(s) || s[cb+1] != '(' {
		return "", "", 0, false
	}
	cp := strings.IndexByte(s[cb+2:], ')')
	if cp < 0 {
		return "", "", 0, false
	}
	cp += cb + 2
	return s[1:cb], s[cb+2 : cp], cp + 1, true
}

// findCloser returns the index of the next occurrence of delim in s
// that lies outside any inline code span or link, or -1. Characters
// inside a closed backtick pair or a complete [label](url) pattern are
// never delimiters; an unclosed backtick is literal text and does not
// shield anything.
func findCloser(s, delim string) int {
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], delim) {
			return i
		}
		switch s[i] {
		case '`':
			if j := strings.IndexByte(s[i+1:], '`'); j >= 0 {
				i += j + 2
				continue
			}
			i++
		case '[':
			if _, _, size, ok := parseLink(s[i:]); ok {
				i += size
				continue
			}
			i++
		default:
			i++
		}
	}
	return -1
}

func delimiterRun(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}
