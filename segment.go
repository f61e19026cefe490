package mdview

import "strings"

type segState uint8

const (
	stateDefault segState = iota
	stateParagraph
	stateUnordered
	stateOrdered
	stateCode
)

// segmenter partitions source lines into blocks. It is a line-driven
// state machine; any line not matching a structural rule is absorbed as
// paragraph text, so no input can make segmentation fail.
type segmenter struct {
	blocks []Block

	state     segState
	para      []string
	items     []string
	marker    byte // active unordered list marker character
	codeLines []string
	codeLang  string
}

// Segment partitions the full ordered sequence of source lines into a
// Document. Each accumulated block's text is handed to ParseInline once,
// as a whole, when the block closes.
func Segment(lines []string) *Document {
	var s segmenter
	for _, line := range lines {
		s.feedLine(strings.TrimSuffix(line, "\r"))
	}
	s.finish()
	return &Document{Blocks: s.blocks}
}

func (s *segmenter) feedLine(line string) {
	if s.state == stateCode {
		if isFenceClose(line) {
			s.closeBlock()
			return
		}
		s.codeLines = append(s.codeLines, line)
		return
	}
	if lang, ok := fenceOpen(line); ok {
		s.closeBlock()
		s.state = stateCode
		s.codeLang = lang
		return
	}
	if level, content, ok := parseHeading(line); ok {
		s.closeBlock()
		s.blocks = append(s.blocks, Block{Kind: BlockHeading, Level: level, Content: ParseInline(content)})
		return
	}
	// Checked before the list marker rule so a bare --- is never a
	// one-item list.
	if isHorizontalRule(line) {
		s.closeBlock()
		s.blocks = append(s.blocks, Block{Kind: BlockRule})
		return
	}
	if marker, content, ok := unorderedMarker(line); ok {
		if s.state != stateUnordered || s.marker != marker {
			s.closeBlock()
			s.state = stateUnordered
			s.marker = marker
		}
		s.items = append(s.items, content)
		return
	}
	if content, ok := orderedMarker(line); ok {
		if s.state != stateOrdered {
			s.closeBlock()
			s.state = stateOrdered
		}
		s.items = append(s.items, content)
		return
	}
	if strings.TrimSpace(line) == "" {
		s.closeBlock()
		return
	}
	if s.state != stateParagraph {
		s.closeBlock()
		s.state = stateParagraph
	}
	s.para = append(s.para, strings.TrimSpace(line))
}

// closeBlock flushes the open block, if any, and returns to the default
// state.
func (s *segmenter) closeBlock() {
	switch s.state {
	case stateParagraph:
		s.blocks = append(s.blocks, Block{Kind: BlockParagraph, Content: ParseInline(strings.Join(s.para, " "))})
		s.para = nil
	case stateUnordered, stateOrdered:
		items := make([]InlineSequence, len(s.items))
		for i, item := range s.items {
			items[i] = ParseInline(item)
		}
		kind := BlockUnorderedList
		if s.state == stateOrdered {
			kind = BlockOrderedList
		}
		s.blocks = append(s.blocks, Block{Kind: kind, Items: items})
		s.items = nil
	case stateCode:
		s.blocks = append(s.blocks, Block{Kind: BlockCode, Lines: s.codeLines, Lang: s.codeLang})
		s.codeLines = nil
		s.codeLang = ""
	}
	s.state = stateDefault
	s.marker = 0
}

// finish closes whatever block is open at end of input. An unterminated
// code fence auto-closes here; no trailing lines are lost.
func (s *segmenter) finish() {
	s.closeBlock()
}

// parseHeading matches #{1,6} followed by a space. Seven or more hashes
// are not a heading and fall through to paragraph text.
func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(line[level+1:]), true
}

// isHorizontalRule reports whether the line consists solely of three or
// more dashes after trimming trailing whitespace.
func isHorizontalRule(line string) bool {
	trim := strings.TrimRight(line, " \t")
	if len(trim) < 3 {
		return false
	}
	for i := 0; i < len(trim); i++ {
		if trim[i] != '-' {
			return false
		}
	}
	return true
}

func fenceOpen(line string) (string, bool) {
	if !strings.HasPrefix(line, "```") {
		return "", false
	}
	return strings.TrimSpace(line[3:]), true
}

func isFenceClose(line string) bool {
	return strings.TrimRight(line, " \t") == "```"
}

func unorderedMarker(line string) (byte, string, bool) {
	if len(line) < 2 {
		return 0, "", false
	}
	switch line[0] {
	case '-', '+', '*':
		if line[1] == ' ' {
			return line[0], strings.TrimSpace(line[2:]), true
		}
	}
	return 0, "", false
}

func orderedMarker(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' || line[i+1] != ' ' {
		return "", false
	}
	return strings.TrimSpace(line[i+2:]), true
}
