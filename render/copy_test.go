package render

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msgstyle "github.com/riverfjs/msgstyle-go"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestCopyAction(t *testing.T) {
	cb := &fakeClipboard{}
	a := NewCopyAction(&msgstyle.CodeBlock{Code: "go test ./..."}, WithClipboard(cb.WriteAll))

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, a.Acknowledged(start), "acknowledged before copy")

	require.NoError(t, a.Copy(start))
	assert.Equal(t, "go test ./...", cb.text)

	tests := []struct {
		after time.Duration
		want  bool
	}{
		{-time.Second, false},
		{0, true},
		{time.Second, true},
		{CopyAckDuration - time.Millisecond, true},
		{CopyAckDuration, false},
		{time.Minute, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Acknowledged(start.Add(tt.after)), "Acknowledged(+%v)", tt.after)
	}
}

func TestCopyAction_Error(t *testing.T) {
	errNoClipboard := errors.New("no clipboard utility")
	cb := &fakeClipboard{err: errNoClipboard}
	a := NewCopyAction(&msgstyle.CodeBlock{Code: "x"}, WithClipboard(cb.WriteAll))

	now := time.Now()
	err := a.Copy(now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoClipboard)
	assert.False(t, a.Acknowledged(now), "failed copy must not be acknowledged")
}

func TestCopyAction_Recopy(t *testing.T) {
	a := NewCopyAction(&msgstyle.CodeBlock{Code: "x"}, WithClipboard((&fakeClipboard{}).WriteAll))

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, a.Copy(start))
	require.NoError(t, a.Copy(start.Add(3*time.Second)))
	assert.True(t, a.Acknowledged(start.Add(4*time.Second)), "second copy restarts the acknowledgement")
}

func TestCopyActions(t *testing.T) {
	tree := msgstyle.Build("```one```\ntext\n```two```", nil)
	actions := CopyActions(tree, WithClipboard((&fakeClipboard{}).WriteAll))
	require.Len(t, actions, 2)
	assert.Equal(t, "one", actions[0].Code)
	assert.Equal(t, "two", actions[1].Code)

	assert.Empty(t, CopyActions(msgstyle.Build("no code here", nil)))
}
