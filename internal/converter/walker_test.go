package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/riverfjs/msgstyle-go/internal/types"
)

func seg(kind types.Kind, content string) types.Segment {
	return types.Segment{Kind: kind, Content: content}
}

func walk(tree types.RenderTree) (string, []types.Entity) {
	w := NewEventWalker()
	w.Walk(tree)
	return w.Result()
}

func TestEventWalker(t *testing.T) {
	tests := []struct {
		name         string
		tree         types.RenderTree
		wantText     string
		wantEntities []types.Entity
	}{
		{
			name:         "empty tree",
			tree:         nil,
			wantText:     "",
			wantEntities: []types.Entity{},
		},
		{
			name: "inline styles",
			tree: types.RenderTree{
				&types.Paragraph{Segments: []types.Segment{
					seg(types.KindText, "Hello "),
					seg(types.KindBold, "world"),
					seg(types.KindText, " "),
					seg(types.KindLink, "https://example.com"),
				}},
			},
			wantText: "Hello world https://example.com",
			wantEntities: []types.Entity{
				{Type: EntityBold, Offset: 6, Length: 5},
				{Type: EntityTextLink, Offset: 12, Length: 19, URL: "https://example.com"},
			},
		},
		{
			name: "utf16 offsets",
			tree: types.RenderTree{
				&types.Paragraph{Segments: []types.Segment{
					seg(types.KindText, "😀 "),
					seg(types.KindMention, "@bob"),
				}},
			},
			wantText: "😀 @bob",
			wantEntities: []types.Entity{
				{Type: EntityMention, Offset: 3, Length: 4},
			},
		},
		{
			name: "blocks separated by blank line",
			tree: types.RenderTree{
				&types.Paragraph{Segments: []types.Segment{seg(types.KindText, "intro")}},
				&types.CodeBlock{Code: "x := 1"},
				&types.UnorderedList{Items: [][]types.Segment{
					{seg(types.KindText, "a")},
					{seg(types.KindItalic, "b")},
				}},
				&types.OrderedList{Start: 3, Items: [][]types.Segment{
					{seg(types.KindText, "c")},
					{seg(types.KindStrike, "d")},
				}},
			},
			wantText: "intro\n\nx := 1\n\n• a\n• b\n\n3. c\n4. d",
			wantEntities: []types.Entity{
				{Type: EntityPre, Offset: 7, Length: 6},
				{Type: EntityItalic, Offset: 21, Length: 1},
				{Type: EntityStrikethrough, Offset: 32, Length: 1},
			},
		},
		{
			name: "blockquote spans its lines",
			tree: types.RenderTree{
				&types.Blockquote{Lines: [][]types.Segment{
					{seg(types.KindCode, "one")},
					{seg(types.KindText, "")},
					{seg(types.KindText, "two")},
				}},
			},
			wantText: "one\n\ntwo",
			wantEntities: []types.Entity{
				{Type: EntityCode, Offset: 0, Length: 3},
				{Type: EntityBlockquote, Offset: 0, Length: 8},
			},
		},
		{
			name: "empty code block has no entity",
			tree: types.RenderTree{
				&types.CodeBlock{},
				&types.Paragraph{Segments: []types.Segment{seg(types.KindText, "after")}},
			},
			wantText:     "\n\nafter",
			wantEntities: []types.Entity{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, entities := walk(tt.tree)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if diff := cmp.Diff(tt.wantEntities, entities); diff != "" {
				t.Errorf("entities mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
