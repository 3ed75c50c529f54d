package msgstyle

import (
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
)

// findEntity 查找指定类型的第一个 entity
func findEntity(entities []Entity, etype string) *Entity {
	for i := range entities {
		if entities[i].Type == etype {
			return &entities[i]
		}
	}
	return nil
}

// extractEntityText 从纯文本中提取 entity 覆盖的子串
func extractEntityText(text string, entity *Entity) string {
	units := utf16.Encode([]rune(text))
	if entity.Offset+entity.Length > len(units) {
		return ""
	}
	return string(utf16.Decode(units[entity.Offset : entity.Offset+entity.Length]))
}

// TestUTF16Len_Empty 测试空字符串
func TestUTF16Len_Empty(t *testing.T) {
	if got := UTF16Len(""); got != 0 {
		t.Errorf("UTF16Len(\"\") = %d, want 0", got)
	}
}

// TestUTF16Len_MatchesEncode 测试 UTF16Len 是否匹配 UTF-16 编码长度
func TestUTF16Len_MatchesEncode(t *testing.T) {
	testStrings := []string{
		"",
		"hello",
		"你好世界",
		"📌✅🔗",
		"A📌B你好C",
		"test 🇺🇸 flag",
		"☑️",
	}
	for _, s := range testStrings {
		t.Run(s, func(t *testing.T) {
			expected := len(utf16.Encode([]rune(s)))
			if got := UTF16Len(s); got != expected {
				t.Errorf("UTF16Len(%q) = %d, want %d", s, got, expected)
			}
		})
	}
}

// TestRangeOf 测试字节区间到 UTF-16 范围的转换
func TestRangeOf(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		start, end int
		want       MentionRange
	}{
		{"ascii", "Hey @alice, hi", 4, 10, MentionRange{Begin: 4, End: 10}},
		{"after emoji", "😀 @bob", 5, 9, MentionRange{Begin: 3, End: 7}},
		{"after cjk", "你好 @bob", 7, 11, MentionRange{Begin: 3, End: 7}},
		{"clamped", "@bob", -3, 99, MentionRange{Begin: 0, End: 4}},
		{"inverted", "@bob", 3, 1, MentionRange{Begin: 3, End: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeOf(tt.body, tt.start, tt.end); got != tt.want {
				t.Errorf("RangeOf(%q, %d, %d) = %+v, want %+v", tt.body, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

// TestRangeOf_RoundTrip 测试 RangeOf 的结果可直接用于 Build
func TestRangeOf_RoundTrip(t *testing.T) {
	body := "🎉 ping @carol now"
	start := len("🎉 ping ")
	r := RangeOf(body, start, start+len("@carol"))

	tree := Build(body, []MentionRange{r})
	want := RenderTree{
		&Paragraph{Segments: []Segment{
			{Kind: KindText, Content: "🎉 ping "},
			{Kind: KindMention, Content: "@carol"},
			{Kind: KindText, Content: " now"},
		}},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

// TestEntities_Paragraph 测试段落实体
func TestEntities_Paragraph(t *testing.T) {
	text, entities := Entities(Build("Hello *world*, see https://example.com", nil))
	if text != "Hello world, see https://example.com" {
		t.Errorf("text = %q", text)
	}
	bold := findEntity(entities, EntityBold)
	if bold == nil {
		t.Fatal("Entities() should have bold entity")
	}
	if got := extractEntityText(text, bold); got != "world" {
		t.Errorf("bold entity text = %q, want 'world'", got)
	}
	link := findEntity(entities, EntityTextLink)
	if link == nil {
		t.Fatal("Entities() should have text_link entity")
	}
	if link.URL != "https://example.com" || extractEntityText(text, link) != "https://example.com" {
		t.Errorf("text_link entity = %+v", *link)
	}
}

// TestEntities_Blocks 测试块级实体与间距
func TestEntities_Blocks(t *testing.T) {
	body := "> quoted _text_\n- one\n- two\n```\ncode\n```\n2. b\n3. c"
	text, entities := Entities(Build(body, nil))

	want := "quoted text\n\n• one\n• two\n\ncode\n\n2. b\n3. c"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	for etype, content := range map[string]string{
		EntityBlockquote: "quoted text",
		EntityItalic:     "text",
		EntityPre:        "code",
	} {
		e := findEntity(entities, etype)
		if e == nil {
			t.Errorf("missing %s entity", etype)
			continue
		}
		if got := extractEntityText(text, e); got != content {
			t.Errorf("%s entity text = %q, want %q", etype, got, content)
		}
	}
}

// TestEntities_MentionAfterEmoji 测试 emoji 之后的 mention 偏移量
func TestEntities_MentionAfterEmoji(t *testing.T) {
	text, entities := Entities(Build("📌 @dave", nil))
	m := findEntity(entities, EntityMention)
	if m == nil {
		t.Fatal("Entities() should have mention entity")
	}
	if m.Offset != 3 || m.Length != 5 {
		t.Errorf("mention entity = %+v, want offset 3 length 5", *m)
	}
	if got := extractEntityText(text, m); got != "@dave" {
		t.Errorf("mention entity text = %q", got)
	}
}

// TestEntity_ToDict 测试 Entity.ToDict
func TestEntity_ToDict(t *testing.T) {
	e := Entity{Type: "bold", Offset: 0, Length: 5}
	d := e.ToDict()
	if d["type"] != "bold" || d["offset"] != 0 || d["length"] != 5 {
		t.Errorf("ToDict() = %v, want type=bold offset=0 length=5", d)
	}
	if _, exists := d["url"]; exists {
		t.Error("ToDict() should not include empty url")
	}

	e = Entity{Type: "text_link", Offset: 0, Length: 5, URL: "https://example.com"}
	if d := e.ToDict(); d["url"] != "https://example.com" {
		t.Errorf("ToDict() url = %v, want https://example.com", d["url"])
	}
}
