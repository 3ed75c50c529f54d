package mention

import "unicode/utf8"

// index converts UTF-16 code unit offsets of a string to byte offsets.
type index struct {
	// starts[u] is the byte offset of the rune holding code unit u.
	starts []int
	// ends[u] is the byte offset just past the rune holding code unit u-1.
	ends []int
}

func newIndex(text string) index {
	idx := index{
		starts: make([]int, 0, len(text)+1),
		ends:   make([]int, 0, len(text)+1),
	}
	idx.ends = append(idx.ends, 0)
	for b := 0; b < len(text); {
		r, size := utf8.DecodeRuneInString(text[b:])
		next := b + size
		units := 1
		if r > 0xFFFF {
			units = 2
		}
		for k := 0; k < units; k++ {
			idx.starts = append(idx.starts, b)
			idx.ends = append(idx.ends, next)
		}
		b = next
	}
	idx.starts = append(idx.starts, len(text))
	return idx
}

// len returns the UTF-16 length of the text.
func (idx index) len() int {
	return len(idx.starts) - 1
}

// floor returns the byte offset of the rune containing unit u.
func (idx index) floor(u int) int {
	return idx.starts[u]
}

// ceil returns the byte offset of the first rune boundary at or after unit u.
func (idx index) ceil(u int) int {
	return idx.ends[u]
}
