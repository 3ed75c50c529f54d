// Package render maps render trees onto presentation primitives.
package render

import (
	"strconv"
	"strings"

	gmutil "github.com/yuin/goldmark/util"

	msgstyle "github.com/riverfjs/msgstyle-go"
)

// HTML renders tree as an HTML fragment. All text is escaped. Links open in
// a new browsing context without referrer or opener.
func HTML(tree msgstyle.RenderTree) string {
	var b strings.Builder
	for _, block := range tree {
		switch n := block.(type) {
		case *msgstyle.Paragraph:
			b.WriteString("<p>")
			writeSegments(&b, n.Segments)
			b.WriteString("</p>\n")
		case *msgstyle.CodeBlock:
			b.WriteString("<pre><code>")
			b.Write(gmutil.EscapeHTML([]byte(n.Code)))
			b.WriteString("</code></pre>\n")
		case *msgstyle.Blockquote:
			b.WriteString("<blockquote>")
			for i, line := range n.Lines {
				if i > 0 {
					b.WriteString("<br>\n")
				}
				writeSegments(&b, line)
			}
			b.WriteString("</blockquote>\n")
		case *msgstyle.UnorderedList:
			b.WriteString("<ul>\n")
			writeItems(&b, n.Items)
			b.WriteString("</ul>\n")
		case *msgstyle.OrderedList:
			if n.Start == 1 {
				b.WriteString("<ol>\n")
			} else {
				b.WriteString(`<ol start="` + strconv.Itoa(n.Start) + `">` + "\n")
			}
			writeItems(&b, n.Items)
			b.WriteString("</ol>\n")
		}
	}
	return b.String()
}

func writeItems(b *strings.Builder, items [][]msgstyle.Segment) {
	for _, item := range items {
		b.WriteString("<li>")
		writeSegments(b, item)
		b.WriteString("</li>\n")
	}
}

var tags = map[msgstyle.Kind][2]string{
	msgstyle.KindBold:    {"<strong>", "</strong>"},
	msgstyle.KindItalic:  {"<em>", "</em>"},
	msgstyle.KindStrike:  {"<s>", "</s>"},
	msgstyle.KindCode:    {"<code>", "</code>"},
	msgstyle.KindMention: {`<span class="mention">`, "</span>"},
}

func writeSegments(b *strings.Builder, segs []msgstyle.Segment) {
	for _, s := range segs {
		content := gmutil.EscapeHTML([]byte(s.Content))
		switch s.Kind {
		case msgstyle.KindText:
			b.WriteString(strings.ReplaceAll(string(content), "\n", "<br>\n"))
		case msgstyle.KindLink:
			b.WriteString(`<a href="`)
			b.Write(gmutil.EscapeHTML(gmutil.URLEscape([]byte(s.Content), false)))
			b.WriteString(`" target="_blank" rel="noopener noreferrer">`)
			b.Write(content)
			b.WriteString("</a>")
		default:
			tag, ok := tags[s.Kind]
			if !ok {
				b.Write(content)
				continue
			}
			b.WriteString(tag[0])
			b.Write(content)
			b.WriteString(tag[1])
		}
	}
}
