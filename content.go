package msgstyle

import "github.com/riverfjs/msgstyle-go/internal/types"

// 导出类型别名
type (
	Kind         = types.Kind
	Segment      = types.Segment
	MentionRange = types.MentionRange

	BlockType     = types.BlockType
	Block         = types.Block
	Paragraph     = types.Paragraph
	CodeBlock     = types.CodeBlock
	Blockquote    = types.Blockquote
	UnorderedList = types.UnorderedList
	OrderedList   = types.OrderedList
	RenderTree    = types.RenderTree
)

// Segment kinds.
const (
	KindText    = types.KindText
	KindBold    = types.KindBold
	KindItalic  = types.KindItalic
	KindStrike  = types.KindStrike
	KindCode    = types.KindCode
	KindLink    = types.KindLink
	KindMention = types.KindMention
)

// Block types.
const (
	BlockParagraph     = types.BlockParagraph
	BlockCode          = types.BlockCode
	BlockQuote         = types.BlockQuote
	BlockUnorderedList = types.BlockUnorderedList
	BlockOrderedList   = types.BlockOrderedList
)
