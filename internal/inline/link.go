package inline

import (
	"regexp"
	"strings"

	"github.com/riverfjs/msgstyle-go/internal/util"
)

// urlRe matches an http(s) URL up to whitespace or an angle bracket.
var urlRe = regexp.MustCompile(`https?://[^\s\p{Z}<>]+`)

// trailingPunct may close a sentence around a URL; one such character is
// left out of the link.
const trailingPunct = `.,:;!?"')]}` + "'"

type linkSpan struct {
	text   string
	offset int // UTF-16 offset relative to the tokenized text
	link   bool
}

// splitLinks splits text into URL and non-URL spans, in order.
func splitLinks(text string) []linkSpan {
	matches := urlRe.FindAllStringIndex(text, -1)
	if matches == nil {
		return []linkSpan{{text: text}}
	}

	var spans []linkSpan
	last := 0
	units := 0
	emit := func(end int, link bool) {
		if end <= last {
			return
		}
		s := text[last:end]
		spans = append(spans, linkSpan{text: s, offset: units, link: link})
		units += util.UTF16Len(s)
		last = end
	}
	for _, m := range matches {
		start, end := m[0], m[1]
		if strings.IndexByte(trailingPunct, text[end-1]) >= 0 {
			end--
		}
		if strings.HasSuffix(text[start:end], "://") {
			continue
		}
		emit(start, false)
		emit(end, true)
	}
	emit(len(text), false)
	return spans
}
