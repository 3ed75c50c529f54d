// Package escape neutralizes backslash-escaped marker characters.
//
// Every "\X" (X in the escapable set) is replaced with a placeholder made of
// two BMP private-use runes: a sentinel that does not occur in the input,
// followed by an index rune naming the escaped character. Every escape of the
// same character shares one placeholder. The placeholder has the same UTF-16 width as the
// escape it replaces, so absolute offsets computed against the original body
// stay valid on the escaped text.
package escape

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	sentinelFirst rune = 0xE000
	sentinelLast  rune = 0xE0FF
	indexFirst    rune = 0xE100
)

// Table maps placeholders back to the characters they stand for. A Table
// belongs to a single parse call and is never shared.
type Table struct {
	sentinel rune
	literals []byte // distinct escaped characters, by index rune
	count    int
	restore  *strings.Replacer
	raw      *strings.Replacer
}

// Escape replaces every backslash escape of a character in chars with a
// placeholder and returns the escaped text with its Table.
func Escape(text string, chars string) (string, *Table) {
	t := &Table{}
	if chars == "" || !strings.Contains(text, `\`) {
		return text, t
	}
	t.sentinel = pickSentinel(text)
	if t.sentinel == 0 {
		return text, t
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) && strings.IndexByte(chars, text[i+1]) >= 0 {
			b.WriteString(t.placeholder(t.slot(text[i+1])))
			t.count++
			i++
			continue
		}
		b.WriteByte(c)
	}
	if len(t.literals) == 0 {
		t.sentinel = 0
		return text, t
	}

	restore := make([]string, 0, len(t.literals)*2)
	raw := make([]string, 0, len(t.literals)*2)
	for i, lit := range t.literals {
		ph := t.placeholder(i)
		restore = append(restore, ph, string(lit))
		raw = append(raw, ph, `\`+string(lit))
	}
	t.restore = strings.NewReplacer(restore...)
	t.raw = strings.NewReplacer(raw...)
	return b.String(), t
}

// pickSentinel returns the first sentinel candidate absent from text, or 0.
func pickSentinel(text string) rune {
	for r := sentinelFirst; r <= sentinelLast; r++ {
		if !strings.ContainsRune(text, r) {
			return r
		}
	}
	return 0
}

// slot returns the index of lit, adding it on first use. At most 256
// distinct bytes can be escaped, all inside the private-use area.
func (t *Table) slot(lit byte) int {
	if i := bytes.IndexByte(t.literals, lit); i >= 0 {
		return i
	}
	t.literals = append(t.literals, lit)
	return len(t.literals) - 1
}

func (t *Table) placeholder(i int) string {
	var buf [2 * utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], t.sentinel)
	n += utf8.EncodeRune(buf[n:], indexFirst+rune(i))
	return string(buf[:n])
}

// Len returns the number of escapes recorded.
func (t *Table) Len() int {
	return t.count
}

// Restore replaces placeholders with the literal characters they stand for.
func (t *Table) Restore(s string) string {
	if t.restore == nil {
		return s
	}
	return t.restore.Replace(s)
}

// Raw replaces placeholders with their original backslash escapes.
func (t *Table) Raw(s string) string {
	if t.raw == nil {
		return s
	}
	return t.raw.Replace(s)
}

// IsPlaceholder reports whether r is part of a placeholder of this table.
// Placeholders stand for escaped markers and count as punctuation.
func (t *Table) IsPlaceholder(r rune) bool {
	if t.sentinel == 0 {
		return false
	}
	if r == t.sentinel {
		return true
	}
	return r >= indexFirst && r < indexFirst+rune(len(t.literals))
}
