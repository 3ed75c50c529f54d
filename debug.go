package msgstyle

import (
	"fmt"
	"strings"
)

// Debug returns a human-readable dump of tree, one node per line.
//
//	paragraph
//	  text "Hello "
//	  bold "world"
//	ordered_list start=3
//	  item 1
//	    text "three"
func Debug(tree RenderTree) string {
	var b strings.Builder
	for _, block := range tree {
		switch n := block.(type) {
		case *Paragraph:
			b.WriteString(n.GetBlockType().String() + "\n")
			debugSegments(&b, n.Segments, "  ")
		case *CodeBlock:
			fmt.Fprintf(&b, "%s %q\n", n.GetBlockType(), n.Code)
		case *Blockquote:
			b.WriteString(n.GetBlockType().String() + "\n")
			debugLines(&b, "line", n.Lines)
		case *UnorderedList:
			b.WriteString(n.GetBlockType().String() + "\n")
			debugLines(&b, "item", n.Items)
		case *OrderedList:
			fmt.Fprintf(&b, "%s start=%d\n", n.GetBlockType(), n.Start)
			debugLines(&b, "item", n.Items)
		}
	}
	return b.String()
}

func debugLines(b *strings.Builder, label string, lines [][]Segment) {
	for i, segs := range lines {
		fmt.Fprintf(b, "  %s %d\n", label, i+1)
		debugSegments(b, segs, "    ")
	}
}

func debugSegments(b *strings.Builder, segs []Segment, indent string) {
	for _, s := range segs {
		fmt.Fprintf(b, "%s%s %q\n", indent, s.Kind, s.Content)
	}
}
