package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	msgstyle "github.com/riverfjs/msgstyle-go"
)

// CopyAckDuration is how long a code block reports a successful copy.
const CopyAckDuration = 2 * time.Second

// ClipboardWriter writes text to a clipboard.
type ClipboardWriter func(text string) error

// CopyAction is the copy-to-clipboard affordance of one code block.
//
// After a successful Copy the action is acknowledged for CopyAckDuration;
// presentation layers poll Acknowledged to show and clear the indicator.
type CopyAction struct {
	Code string

	write    ClipboardWriter
	mu       sync.Mutex
	copiedAt time.Time
}

// CopyOption configures a CopyAction.
type CopyOption func(*CopyAction)

// WithClipboard sets the clipboard writer. The default writes to the system
// clipboard.
func WithClipboard(w ClipboardWriter) CopyOption {
	return func(a *CopyAction) {
		a.write = w
	}
}

// NewCopyAction creates the copy action of block.
func NewCopyAction(block *msgstyle.CodeBlock, opts ...CopyOption) *CopyAction {
	a := &CopyAction{
		Code:  block.Code,
		write: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CopyActions returns one action per code block of tree, in order.
func CopyActions(tree msgstyle.RenderTree, opts ...CopyOption) []*CopyAction {
	var actions []*CopyAction
	for _, block := range tree {
		if cb, ok := block.(*msgstyle.CodeBlock); ok {
			actions = append(actions, NewCopyAction(cb, opts...))
		}
	}
	return actions
}

// Copy writes the code to the clipboard and starts the acknowledgement at
// now. A failed write leaves the acknowledgement state unchanged.
func (a *CopyAction) Copy(now time.Time) error {
	if err := a.write(a.Code); err != nil {
		return fmt.Errorf("failed to copy code block: %w", err)
	}
	a.mu.Lock()
	a.copiedAt = now
	a.mu.Unlock()
	return nil
}

// Acknowledged reports whether a copy succeeded within CopyAckDuration
// before now.
func (a *CopyAction) Acknowledged(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.copiedAt.IsZero() || now.Before(a.copiedAt) {
		return false
	}
	return now.Sub(a.copiedAt) < CopyAckDuration
}
