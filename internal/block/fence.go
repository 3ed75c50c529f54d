package block

import (
	"regexp"
	"strings"

	"github.com/riverfjs/msgstyle-go/internal/util"
)

// fenceRe matches a ``` fenced span, possibly over several lines. An opening
// fence without a closing one does not match and stays ordinary text.
var fenceRe = regexp.MustCompile("(?s)```(.*?)```")

// region is a stretch of the body between code fences.
type region struct {
	text   string
	offset int // absolute UTF-16 offset of text
	// afterFence is set when the region starts right after a closing fence,
	// so its first line is the remainder of the fence line.
	afterFence bool
}

// part is either a text region or a code block.
type part struct {
	region region
	code   *string
}

// splitFences cuts body into text regions and code blocks, in order.
func splitFences(body string) []part {
	matches := fenceRe.FindAllStringSubmatchIndex(body, -1)
	if matches == nil {
		return []part{{region: region{text: body}}}
	}

	var parts []part
	last := 0
	units := 0
	afterFence := false
	for _, m := range matches {
		parts = append(parts, part{region: region{
			text:       body[last:m[0]],
			offset:     units,
			afterFence: afterFence,
		}})
		code := trimFence(body[m[2]:m[3]])
		parts = append(parts, part{code: &code})
		units += util.UTF16Len(body[last:m[1]])
		last = m[1]
		afterFence = true
	}
	parts = append(parts, part{region: region{
		text:       body[last:],
		offset:     units,
		afterFence: afterFence,
	}})
	return parts
}

// trimFence trims a fence interior. Blank leading lines are dropped but the
// indentation of the first code line is kept; spaces right after the opening
// fence on the same line are dropped. Trailing whitespace is dropped.
func trimFence(s string) string {
	s = strings.TrimRightFunc(s, util.IsSpace)
	droppedLine := false
	for {
		nl := strings.IndexByte(s, '\n')
		if nl < 0 || strings.TrimSpace(s[:nl]) != "" {
			break
		}
		s = s[nl+1:]
		droppedLine = true
	}
	if !droppedLine {
		s = strings.TrimLeft(s, " \t")
	}
	return s
}
