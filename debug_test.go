package msgstyle

import "testing"

func TestDebug(t *testing.T) {
	body := "Hello *world*\n```\nx := 1\n```\n> quoted\n- a\n3. b\n4. `c`"
	want := `paragraph
  text "Hello "
  bold "world"
code_block "x := 1"
blockquote
  line 1
    text "quoted"
unordered_list
  item 1
    text "a"
ordered_list start=3
  item 1
    text "b"
  item 2
    code "c"
`
	if got := Debug(Build(body, nil)); got != want {
		t.Errorf("Debug() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDebug_Empty(t *testing.T) {
	if got := Debug(nil); got != "" {
		t.Errorf("Debug(nil) = %q, want empty", got)
	}
}
