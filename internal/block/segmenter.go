// Package block splits a message body into block nodes.
//
// Fenced code blocks are cut out first. The text between them is then
// classified line by line; consecutive lines of the same class form one
// block. Line content is handed to the inline tokenizer together with its
// absolute UTF-16 offset so mention ranges survive prefix stripping.
package block

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riverfjs/msgstyle-go/internal/escape"
	"github.com/riverfjs/msgstyle-go/internal/inline"
	"github.com/riverfjs/msgstyle-go/internal/types"
	"github.com/riverfjs/msgstyle-go/internal/util"
)

var (
	quoteRe     = regexp.MustCompile(`^>+\s?`)
	unorderedRe = regexp.MustCompile(`^[-+*]\s+`)
	orderedRe   = regexp.MustCompile(`^(\d+)\.\s+`)
)

// class is the classification of one line, and the segmenter state while
// lines of that class are buffered.
type class int

const (
	classNone class = iota // paragraph lines
	classQuote
	classUnordered
	classOrdered
)

// Segmenter groups the lines of one escaped body into blocks.
type Segmenter struct {
	tokens  *inline.Tokenizer
	escapes *escape.Table
}

// New creates a Segmenter. escapes must be the table the body was escaped
// with; code blocks are restored with it.
func New(tokens *inline.Tokenizer, escapes *escape.Table) *Segmenter {
	if escapes == nil {
		escapes = &escape.Table{}
	}
	return &Segmenter{tokens: tokens, escapes: escapes}
}

// Segment returns the blocks of body in source order.
func (s *Segmenter) Segment(body string) types.RenderTree {
	b := &builder{seg: s}
	for _, p := range splitFences(body) {
		if p.code != nil {
			b.flush()
			b.tree = append(b.tree, &types.CodeBlock{Code: s.escapes.Raw(*p.code)})
			continue
		}
		b.region(p.region)
	}
	b.flush()
	return b.tree
}

// line is a buffered line with its block prefix stripped.
type line struct {
	text   string
	offset int
}

type builder struct {
	seg   *Segmenter
	tree  types.RenderTree
	state class
	lines []line
	start int
}

func (b *builder) region(r region) {
	lines := strings.Split(r.text, "\n")
	offset := r.offset
	for i, l := range lines {
		skip := l == "" && (i == 0 && r.afterFence || i == len(lines)-1 && i > 0)
		if !skip {
			b.addLine(l, offset)
		}
		offset += util.UTF16Len(l) + 1
	}
	// Blocks never continue across a code fence.
	b.flush()
	b.state = classNone
}

func (b *builder) addLine(l string, offset int) {
	c, prefix, start := classify(l)
	if c != b.state {
		b.flush()
		b.state = c
		b.start = start
	}
	b.lines = append(b.lines, line{
		text:   l[prefix:],
		offset: offset + util.UTF16Len(l[:prefix]),
	})
}

// classify returns the class of l, the byte length of its block prefix and,
// for ordered items, the item number.
func classify(l string) (class, int, int) {
	if m := quoteRe.FindStringIndex(l); m != nil {
		return classQuote, m[1], 0
	}
	if m := unorderedRe.FindStringIndex(l); m != nil {
		return classUnordered, m[1], 0
	}
	if m := orderedRe.FindStringSubmatchIndex(l); m != nil {
		n, err := strconv.Atoi(l[m[2]:m[3]])
		if err == nil {
			return classOrdered, m[1], n
		}
	}
	return classNone, 0, 0
}

func (b *builder) flush() {
	lines := b.lines
	b.lines = nil
	if len(lines) == 0 {
		return
	}

	switch b.state {
	case classQuote:
		b.tree = append(b.tree, &types.Blockquote{Lines: b.items(lines)})
	case classUnordered:
		b.tree = append(b.tree, &types.UnorderedList{Items: b.items(lines)})
	case classOrdered:
		b.tree = append(b.tree, &types.OrderedList{Start: b.start, Items: b.items(lines)})
	default:
		if segs := b.paragraph(lines); segs != nil {
			b.tree = append(b.tree, &types.Paragraph{Segments: segs})
		}
	}
}

// items tokenizes each line on its own. A line with no content is kept as a
// single empty text segment.
func (b *builder) items(lines []line) [][]types.Segment {
	items := make([][]types.Segment, 0, len(lines))
	for _, l := range lines {
		segs := b.seg.tokens.Tokenize(l.text, l.offset)
		if segs == nil {
			segs = []types.Segment{{Kind: types.KindText}}
		}
		items = append(items, segs)
	}
	return items
}

// paragraph joins lines with "\n", dropping leading and trailing blank
// lines. It returns nil when nothing is left.
func (b *builder) paragraph(lines []line) []types.Segment {
	for len(lines) > 0 && isBlank(lines[0].text) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1].text) {
		lines = lines[:len(lines)-1]
	}

	var segs []types.Segment
	for i, l := range lines {
		if i > 0 {
			segs = append(segs, types.Segment{Kind: types.KindText, Content: "\n"})
		}
		segs = append(segs, b.seg.tokens.Tokenize(l.text, l.offset)...)
	}
	return inline.Coalesce(segs)
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, util.IsSpace) == ""
}
