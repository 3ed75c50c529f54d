package msgstyle

import (
	"github.com/riverfjs/msgstyle-go/internal/converter"
	"github.com/riverfjs/msgstyle-go/internal/types"
	"github.com/riverfjs/msgstyle-go/internal/util"
)

// 导出类型别名
type Entity = types.Entity

// Entity types returned by Entities.
const (
	EntityBold          = converter.EntityBold
	EntityItalic        = converter.EntityItalic
	EntityStrikethrough = converter.EntityStrikethrough
	EntityCode          = converter.EntityCode
	EntityPre           = converter.EntityPre
	EntityTextLink      = converter.EntityTextLink
	EntityMention       = converter.EntityMention
	EntityBlockquote    = converter.EntityBlockquote
)

// Entities flattens a render tree into plain text plus styled spans.
//
// Blocks are separated by a blank line, list items are prefixed with "• "
// or "N. ", and entity offsets and lengths are in UTF-16 code units. A
// text_link entity carries its URL.
func Entities(tree RenderTree) (string, []Entity) {
	w := converter.NewEventWalker()
	w.Walk(tree)
	return w.Result()
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Mention ranges are measured in UTF-16 code units, not Go string bytes or
// runes. Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code
// units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// RangeOf converts the byte span [byteStart, byteEnd) of body into a
// MentionRange. Indices are clamped to the body; body must already use LF
// line endings (see NormalizeNewlines).
func RangeOf(body string, byteStart, byteEnd int) MentionRange {
	byteStart = clamp(byteStart, 0, len(body))
	byteEnd = clamp(byteEnd, byteStart, len(body))
	begin := UTF16Len(body[:byteStart])
	return MentionRange{
		Begin: begin,
		End:   begin + UTF16Len(body[byteStart:byteEnd]),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
