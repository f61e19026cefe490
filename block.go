package mdview

// Block is one structural unit of a document.
type Block struct {
	Kind    BlockKind
	Level   int              // BlockHeading, 1..6
	Content InlineSequence   // BlockHeading and BlockParagraph
	Items   []InlineSequence // BlockUnorderedList and BlockOrderedList, in source order
	Lines   []string         // BlockCode raw lines, never inline-parsed
	Lang    string           // BlockCode language tag, may be empty
}

// BlockKind discriminates the Block variants.
type BlockKind uint8

const (
	// BlockHeading is an ATX heading, level 1..6.
	BlockHeading BlockKind = iota
	// BlockParagraph is a run of plain text lines joined by spaces.
	BlockParagraph
	// BlockUnorderedList is a bulleted list.
	BlockUnorderedList
	// BlockOrderedList is a numbered list.
	BlockOrderedList
	// BlockCode is a fenced code block.
	BlockCode
	// BlockRule is a horizontal rule.
	BlockRule
)

// Document is an ordered sequence of blocks. Render order is source
// order. A Document is built fresh on every render pass and never
// mutated after construction.
type Document struct {
	Blocks []Block
}
