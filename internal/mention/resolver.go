// Package mention splits text at mention boundaries.
//
// Mentions come either from caller-supplied absolute ranges (UTF-16 offsets
// into the whole message body) or, when none are supplied, from an "@handle"
// heuristic.
package mention

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/msgstyle-go/internal/types"
)

// Piece is a slice of the input, either a mention or plain text still to be
// styled.
type Piece struct {
	Text    string
	Mention bool
}

// Resolve splits text, which starts at absolute UTF-16 offset offset in the
// body, at the boundaries of ranges.
//
// Ranges are processed in order of Begin. Parts falling outside text are
// clipped away; a range overlapping an earlier one is clipped to start where
// the earlier one ended. Ranges left empty after clipping are dropped.
func Resolve(text string, offset int, ranges []types.MentionRange) []Piece {
	if text == "" {
		return nil
	}
	idx := newIndex(text)
	window := idx.len()

	sorted := make([]types.MentionRange, 0, len(ranges))
	for _, r := range ranges {
		if r.End <= offset || r.Begin >= offset+window || r.End <= r.Begin {
			continue
		}
		sorted = append(sorted, r)
	}
	if len(sorted) == 0 {
		return []Piece{{Text: text}}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Begin != sorted[j].Begin {
			return sorted[i].Begin < sorted[j].Begin
		}
		return sorted[i].End < sorted[j].End
	})

	var pieces []Piece
	cursor := 0
	cursorByte := 0
	for _, r := range sorted {
		begin := clamp(r.Begin-offset, 0, window)
		end := clamp(r.End-offset, 0, window)
		if begin < cursor {
			begin = cursor
		}
		if end <= begin {
			continue
		}
		bb := idx.floor(begin)
		eb := idx.ceil(end)
		if bb < cursorByte {
			bb = cursorByte
		}
		if eb <= bb {
			continue
		}
		if bb > cursorByte {
			pieces = append(pieces, Piece{Text: text[cursorByte:bb]})
		}
		pieces = append(pieces, Piece{Text: text[bb:eb], Mention: true})
		cursor = end
		cursorByte = eb
	}
	if cursorByte < len(text) {
		pieces = append(pieces, Piece{Text: text[cursorByte:]})
	}
	return pieces
}

// Detect finds "@handle" mentions in text. A handle is "@" followed by one or
// more grapheme clusters starting with a letter, a number or "_". The "@" must
// open the text or follow whitespace, so "user@example.com" is not a mention.
func Detect(text string) []Piece {
	var pieces []Piece
	last := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:i])
			if !util.IsSpaceRune(prev) {
				continue
			}
		}
		n := handleLen(text[i+1:])
		if n == 0 {
			continue
		}
		if i > last {
			pieces = append(pieces, Piece{Text: text[last:i]})
		}
		end := i + 1 + n
		pieces = append(pieces, Piece{Text: text[i:end], Mention: true})
		last = end
		i = end - 1
	}
	if last < len(text) {
		pieces = append(pieces, Piece{Text: text[last:]})
	}
	return pieces
}

// handleLen returns the byte length of the handle at the start of s.
func handleLen(s string) int {
	n := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			break
		}
		n += len(cluster)
	}
	return n
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
