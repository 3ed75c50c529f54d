package msgstyle

import (
	"github.com/riverfjs/msgstyle-go/internal/parser"
)

// Build 将消息正文转换为渲染树
//
// 参数:
//   - body: 消息正文，换行符会统一为 LF
//   - mentions: 绝对 UTF-16 偏移量表示的提及范围，可为 nil
//
// 返回:
//   - RenderTree: 按源文本顺序排列的块节点
//
// mentions 必须针对传入的 body 计算；调用方在计算偏移量之后不能再修改正文。
func Build(body string, mentions []MentionRange) RenderTree {
	return BuildWithOptions(body, WithMentions(mentions...))
}

// BuildWithOptions 与 Build 相同，但通过 Option 配置
func BuildWithOptions(body string, opts ...Option) RenderTree {
	options := applyOptions(opts...)
	tree, styled := parser.Parse(body, options.Mentions, options.Config)
	if !styled {
		Logger.Printf("body of %d UTF-16 code units exceeds limit %d, returned unstyled",
			UTF16Len(NormalizeNewlines(body)), options.Config.MaxBodyLength)
	}
	return tree
}

// NormalizeNewlines rewrites CRLF and CR line endings to LF. Mention
// offsets are measured against the normalized body.
func NormalizeNewlines(body string) string {
	return parser.NormalizeNewlines(body)
}
