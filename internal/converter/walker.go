package converter

import (
	"strconv"

	"github.com/riverfjs/msgstyle-go/internal/buffer"
	"github.com/riverfjs/msgstyle-go/internal/types"
)

// Entity types produced by the walker.
const (
	EntityBold          = "bold"
	EntityItalic        = "italic"
	EntityStrikethrough = "strikethrough"
	EntityCode          = "code"
	EntityPre           = "pre"
	EntityTextLink      = "text_link"
	EntityMention       = "mention"
	EntityBlockquote    = "blockquote"
)

// Bullet is written before every unordered list item.
const Bullet = "• "

var segmentEntities = map[types.Kind]string{
	types.KindBold:    EntityBold,
	types.KindItalic:  EntityItalic,
	types.KindStrike:  EntityStrikethrough,
	types.KindCode:    EntityCode,
	types.KindLink:    EntityTextLink,
	types.KindMention: EntityMention,
}

// EventWalker 遍历渲染树并生成 (text, entities)
type EventWalker struct {
	buf         *buffer.TextBuffer
	entityStack []EntityScope
	entities    []types.Entity

	blockCount int // 用于段落间距
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker() *EventWalker {
	return &EventWalker{
		buf:         buffer.New(),
		entityStack: make([]EntityScope, 0),
		entities:    make([]types.Entity, 0),
	}
}

// Walk 依次处理渲染树中的每个块
func (w *EventWalker) Walk(tree types.RenderTree) {
	for _, b := range tree {
		w.walkBlock(b)
	}
}

func (w *EventWalker) walkBlock(b types.Block) {
	switch n := b.(type) {
	case *types.Paragraph:
		w.ensureBlockSpacing()
		w.onSegments(n.Segments)

	case *types.CodeBlock:
		w.ensureBlockSpacing()
		w.pushEntity(EntityPre, "")
		w.buf.Write(n.Code)
		w.popEntity(EntityPre)

	case *types.Blockquote:
		w.ensureBlockSpacing()
		w.pushEntity(EntityBlockquote, "")
		w.onLines(n.Lines, func(int) string { return "" })
		w.popEntity(EntityBlockquote)

	case *types.UnorderedList:
		w.ensureBlockSpacing()
		w.onLines(n.Items, func(int) string { return Bullet })

	case *types.OrderedList:
		w.ensureBlockSpacing()
		w.onLines(n.Items, func(i int) string { return strconv.Itoa(n.Start+i) + ". " })

	default:
		return
	}
	w.blockCount++
}

// Result 返回转换结果
func (w *EventWalker) Result() (string, []types.Entity) {
	return w.buf.String(), w.entities
}

func (w *EventWalker) onLines(lines [][]types.Segment, prefix func(int) string) {
	for i, segs := range lines {
		if i > 0 {
			w.buf.Write("\n")
		}
		w.buf.Write(prefix(i))
		w.onSegments(segs)
	}
}

func (w *EventWalker) onSegments(segs []types.Segment) {
	for _, s := range segs {
		entityType, styled := segmentEntities[s.Kind]
		if !styled {
			w.buf.Write(s.Content)
			continue
		}
		url := ""
		if s.Kind == types.KindLink {
			url = s.Content
		}
		w.pushEntity(entityType, url)
		w.buf.Write(s.Content)
		w.popEntity(entityType)
	}
}

// --- Entity helpers ---

func (w *EventWalker) pushEntity(entityType string, url string) {
	w.entityStack = append(w.entityStack, EntityScope{
		EntityType:  entityType,
		StartOffset: w.buf.UTF16Offset(),
		URL:         url,
	})
}

func (w *EventWalker) popEntity(entityType string) {
	// Find the matching scope (search from top)
	for i := len(w.entityStack) - 1; i >= 0; i-- {
		if w.entityStack[i].EntityType == entityType {
			scope := w.entityStack[i]
			w.entityStack = append(w.entityStack[:i], w.entityStack[i+1:]...)
			w.finalizeEntity(scope)
			return
		}
	}
}

func (w *EventWalker) finalizeEntity(scope EntityScope) {
	length := w.buf.UTF16Offset() - scope.StartOffset
	if length <= 0 {
		return
	}
	w.entities = append(w.entities, types.Entity{
		Type:   scope.EntityType,
		Offset: scope.StartOffset,
		Length: length,
		URL:    scope.URL,
	})
}

func (w *EventWalker) ensureBlockSpacing() {
	// Ensure a blank line (\n\n) between blocks, avoiding excess newlines
	if w.blockCount > 0 {
		needed := 2 - w.buf.TrailingNewlineCount()
		for ; needed > 0; needed-- {
			w.buf.Write("\n")
		}
	}
}
