package types

// Kind is the style of a Segment.
type Kind string

const (
	KindText    Kind = "text"
	KindBold    Kind = "bold"
	KindItalic  Kind = "italic"
	KindStrike  Kind = "strike"
	KindCode    Kind = "code"
	KindLink    Kind = "link"
	KindMention Kind = "mention"
)

// Segment is the smallest unit of inline-styled text.
//
// Content never holds an unresolved escape placeholder. It is empty only for
// an explicit blank line (an empty quote line or list item).
type Segment struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
}

// MentionRange marks a span of the message body that references another
// participant. Begin and End are absolute UTF-16 code unit offsets into the
// normalized body, End exclusive.
type MentionRange struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// BlockType identifies the variant of a Block.
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

// String returns the string representation of BlockType.
func (bt BlockType) String() string {
	switch bt {
	case BlockParagraph:
		return "paragraph"
	case BlockCode:
		return "code_block"
	case BlockQuote:
		return "blockquote"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// Block is a structural element of a message above the inline level.
type Block interface {
	GetBlockType() BlockType
}

// Paragraph is a run of plain lines. Lines are joined by "\n" inside text
// segments.
type Paragraph struct {
	Segments []Segment
}

// GetBlockType returns BlockParagraph.
func (p *Paragraph) GetBlockType() BlockType {
	return BlockParagraph
}

// CodeBlock holds the trimmed interior of a ``` fence. It is never styled.
type CodeBlock struct {
	Code string
}

// GetBlockType returns BlockCode.
func (c *CodeBlock) GetBlockType() BlockType {
	return BlockCode
}

// Blockquote holds one segment list per quoted line, marker stripped.
type Blockquote struct {
	Lines [][]Segment
}

// GetBlockType returns BlockQuote.
func (q *Blockquote) GetBlockType() BlockType {
	return BlockQuote
}

// UnorderedList holds one segment list per "-", "+" or "*" item.
type UnorderedList struct {
	Items [][]Segment
}

// GetBlockType returns BlockUnorderedList.
func (l *UnorderedList) GetBlockType() BlockType {
	return BlockUnorderedList
}

// OrderedList holds one segment list per "N." item. Start is the number of
// the first item.
type OrderedList struct {
	Start int
	Items [][]Segment
}

// GetBlockType returns BlockOrderedList.
func (l *OrderedList) GetBlockType() BlockType {
	return BlockOrderedList
}

// RenderTree is the complete output for one message, in source line order.
type RenderTree []Block

// Config controls parsing limits and heuristics.
type Config struct {
	// MaxBodyLength caps the body size in UTF-16 code units. Longer bodies
	// are returned unparsed as a single paragraph. Zero disables the cap.
	MaxBodyLength int
	// MentionFallback enables the "@handle" heuristic when no mention
	// ranges are supplied.
	MentionFallback bool
	// EscapeChars is the set of marker characters a backslash neutralizes.
	EscapeChars string
}

// DefaultEscapeChars are the markers that may be escaped with a backslash.
const DefaultEscapeChars = "*_~`>"

// DefaultMaxBodyLength is the default body cap in UTF-16 code units.
const DefaultMaxBodyLength = 1 << 16

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxBodyLength:   DefaultMaxBodyLength,
		MentionFallback: true,
		EscapeChars:     DefaultEscapeChars,
	}
}

// Entity 表示扁平化文本中的一段样式，偏移量和长度均以 UTF-16 code units 计
type Entity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	URL    string `json:"url,omitempty"`
}

// ToDict 将 Entity 转换为 map
func (e Entity) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"type":   e.Type,
		"offset": e.Offset,
		"length": e.Length,
	}
	if e.URL != "" {
		result["url"] = e.URL
	}
	return result
}
