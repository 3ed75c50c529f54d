package parser

import (
	"strings"

	"golang.org/x/text/transform"
)

// newlineNormalizer rewrites CRLF and lone CR to LF.
type newlineNormalizer struct{ transform.NopResetter }

// Transform implements transform.Transformer.
func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			// A CR at the end of the chunk may be the first half of CRLF.
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
			nSrc++
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

// NewlineNormalizer returns a Transformer that rewrites CRLF and CR to LF.
func NewlineNormalizer() transform.Transformer {
	return newlineNormalizer{}
}

// NormalizeNewlines rewrites CRLF and CR in s to LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	out, _, err := transform.String(newlineNormalizer{}, s)
	if err != nil {
		return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
	}
	return out
}
