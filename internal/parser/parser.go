package parser

import (
	"github.com/riverfjs/msgstyle-go/internal/block"
	"github.com/riverfjs/msgstyle-go/internal/escape"
	"github.com/riverfjs/msgstyle-go/internal/inline"
	"github.com/riverfjs/msgstyle-go/internal/types"
	"github.com/riverfjs/msgstyle-go/internal/util"
)

// Parse 解析消息正文，返回渲染树
//
// 正文先统一换行符（CRLF/CR → LF），然后转义、分块、逐行内联解析。
// mentions 的偏移量以统一换行后的正文为准。
//
// 正文超过 cfg.MaxBodyLength 个 UTF-16 code units 时不做任何解析，整个正文作为一个纯文本段落返回，
// 第二个返回值为 false。
func Parse(body string, mentions []types.MentionRange, cfg *types.Config) (types.RenderTree, bool) {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	body = NormalizeNewlines(body)
	if Oversized(body, cfg) {
		return types.RenderTree{
			&types.Paragraph{Segments: []types.Segment{{Kind: types.KindText, Content: body}}},
		}, false
	}

	// 转义表只属于本次调用
	escaped, table := escape.Escape(body, cfg.EscapeChars)
	tokens := inline.New(table, mentions, cfg.MentionFallback)
	return block.New(tokens, table).Segment(escaped), true
}

// Oversized reports whether body exceeds the configured length cap.
func Oversized(body string, cfg *types.Config) bool {
	return cfg.MaxBodyLength > 0 && util.UTF16Len(body) > cfg.MaxBodyLength
}
