package util

import (
	gmutil "github.com/yuin/goldmark/util"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Mention ranges are expressed in UTF-16 code units. Characters outside the
// BMP (codepoint > 0xFFFF) take 2 units; all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// IsSpace reports whether r is whitespace.
func IsSpace(r rune) bool {
	return gmutil.IsSpaceRune(r)
}

// IsPunct reports whether r is Unicode punctuation or a symbol.
func IsPunct(r rune) bool {
	return gmutil.IsPunctRune(r)
}

// IsBoundary reports whether r may sit next to a styled span: whitespace
// or punctuation.
func IsBoundary(r rune) bool {
	return IsSpace(r) || IsPunct(r)
}
