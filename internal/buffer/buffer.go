package buffer

import "github.com/riverfjs/msgstyle-go/internal/util"

// TextBuffer accumulates plain text and tracks the current UTF-16 offset.
type TextBuffer struct {
	parts       []string
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.utf16Offset += util.UTF16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// Len returns the current byte length.
func (tb *TextBuffer) Len() int {
	total := 0
	for _, p := range tb.parts {
		total += len(p)
	}
	return total
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.Len())
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.utf16Offset = 0
}
