package inline

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/msgstyle-go/internal/types"
	"github.com/riverfjs/msgstyle-go/internal/util"
)

type marker struct {
	delim string
	kind  types.Kind
}

// markers are tried in order at each position; "**" comes before "*" so
// that "**x**" is not read as "*" around "*x*".
var markers = []marker{
	{"**", types.KindBold},
	{"*", types.KindBold},
	{"_", types.KindItalic},
	{"~", types.KindStrike},
	{"`", types.KindCode},
}

func isMarkerByte(c byte) bool {
	return c == '*' || c == '_' || c == '~' || c == '`'
}

// style matches emphasis markers in text.
//
// An opening marker must open the text or follow whitespace or punctuation,
// and must not be followed by whitespace. A closing marker must not follow
// whitespace and must end the text or be followed by whitespace or
// punctuation. Content is never empty, and for single-character markers it
// neither starts nor ends with the marker itself.
func (t *Tokenizer) style(text string) []types.Segment {
	var segs []types.Segment
	last := 0
	for i := 0; i < len(text); {
		if !isMarkerByte(text[i]) || !t.opensAt(text, i) {
			i++
			continue
		}
		matched := false
		for _, m := range markers {
			if !strings.HasPrefix(text[i:], m.delim) {
				continue
			}
			end, ok := t.closeAt(text, i+len(m.delim), m.delim)
			if !ok {
				continue
			}
			if i > last {
				segs = append(segs, types.Segment{Kind: types.KindText, Content: text[last:i]})
			}
			segs = append(segs, types.Segment{Kind: m.kind, Content: text[i+len(m.delim) : end]})
			i = end + len(m.delim)
			last = i
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	if last < len(text) {
		segs = append(segs, types.Segment{Kind: types.KindText, Content: text[last:]})
	}
	return segs
}

// opensAt reports whether a marker at byte i sits at a left boundary.
func (t *Tokenizer) opensAt(text string, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:i])
	return t.isBoundary(prev)
}

// closeAt finds the closing delim for content starting at byte start and
// returns its byte offset.
func (t *Tokenizer) closeAt(text string, start int, delim string) (int, bool) {
	if start >= len(text) {
		return 0, false
	}
	first, _ := utf8.DecodeRuneInString(text[start:])
	if util.IsSpace(first) {
		return 0, false
	}
	if len(delim) == 1 && text[start] == delim[0] {
		return 0, false
	}
	for j := start + 1; j < len(text); j++ {
		k := strings.Index(text[j:], delim)
		if k < 0 {
			return 0, false
		}
		j += k
		prev, _ := utf8.DecodeLastRuneInString(text[:j])
		if util.IsSpace(prev) || len(delim) == 1 && text[j-1] == delim[0] {
			continue
		}
		after := j + len(delim)
		if after < len(text) {
			next, _ := utf8.DecodeRuneInString(text[after:])
			if !t.isBoundary(next) {
				continue
			}
		}
		return j, true
	}
	return 0, false
}
