// Package inline turns one line of text into styled segments.
//
// A line is processed in three passes: URLs are split out first, mentions
// are resolved within the non-URL spans, and emphasis markers are matched
// within the non-mention spans. Escape placeholders are restored last.
package inline

import (
	"github.com/riverfjs/msgstyle-go/internal/escape"
	mentionpkg "github.com/riverfjs/msgstyle-go/internal/mention"
	"github.com/riverfjs/msgstyle-go/internal/types"
	"github.com/riverfjs/msgstyle-go/internal/util"
)

// Tokenizer styles lines of one message. It is created per parse call and
// holds only that call's escape table and mention ranges.
type Tokenizer struct {
	escapes  *escape.Table
	mentions []types.MentionRange
	fallback bool
}

// New creates a Tokenizer. When mentions is empty and fallback is true,
// "@handle" mentions are detected heuristically.
func New(escapes *escape.Table, mentions []types.MentionRange, fallback bool) *Tokenizer {
	if escapes == nil {
		escapes = &escape.Table{}
	}
	return &Tokenizer{
		escapes:  escapes,
		mentions: mentions,
		fallback: fallback,
	}
}

// Tokenize styles text, which starts at absolute UTF-16 offset offset in the
// message body. Adjacent text segments are merged and empty segments dropped.
func (t *Tokenizer) Tokenize(text string, offset int) []types.Segment {
	var segs []types.Segment
	for _, span := range splitLinks(text) {
		if span.link {
			segs = append(segs, types.Segment{Kind: types.KindLink, Content: span.text})
			continue
		}
		for _, piece := range t.resolveMentions(span.text, offset+span.offset) {
			if piece.Mention {
				segs = append(segs, types.Segment{Kind: types.KindMention, Content: piece.Text})
				continue
			}
			segs = append(segs, t.style(piece.Text)...)
		}
	}
	for i := range segs {
		segs[i].Content = t.escapes.Restore(segs[i].Content)
	}
	return Coalesce(segs)
}

func (t *Tokenizer) resolveMentions(text string, offset int) []mentionpkg.Piece {
	switch {
	case len(t.mentions) > 0:
		return mentionpkg.Resolve(text, offset, t.mentions)
	case t.fallback:
		return mentionpkg.Detect(text)
	default:
		return []mentionpkg.Piece{{Text: text}}
	}
}

// isBoundary reports whether r may sit next to a styled span. Escaped
// markers count as punctuation.
func (t *Tokenizer) isBoundary(r rune) bool {
	return util.IsBoundary(r) || t.escapes.IsPlaceholder(r)
}

// Coalesce merges adjacent text segments and drops empty ones. It reuses the
// backing array of segs.
func Coalesce(segs []types.Segment) []types.Segment {
	out := segs[:0]
	for _, s := range segs {
		if s.Content == "" {
			continue
		}
		if s.Kind == types.KindText && len(out) > 0 && out[len(out)-1].Kind == types.KindText {
			out[len(out)-1].Content += s.Content
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
