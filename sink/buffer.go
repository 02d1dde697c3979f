package sink

import (
	"strings"

	"github.com/consoleview/consoleview/core"
)

// Run is one contiguous stretch of buffer text in a single color.
type Run struct {
	Text  string
	Color core.Color
}

// Buffer is an in-memory Sink. It records the appended text as color
// runs and tracks the caret and viewport offsets, which makes it both
// the headless sink and the assertion surface for tests.
//
// Buffer carries no lock; all access must come from the owner
// goroutine (accessors included — tests read it after their dispatched
// writes have returned, which the loop's done channel orders).
type Buffer struct {
	runs      []Run
	selection core.Color
	caret     int
	viewport  int
}

// Ensure Buffer satisfies Sink.
var _ Sink = (*Buffer)(nil)

// NewBuffer creates an empty Buffer with a default selection color.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append writes text at the caret in the current selection color.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}
	b.runs = append(b.runs, Run{Text: text, Color: b.selection})
	b.caret += len(text)
}

// SetSelectionColor sets the color for subsequent appends.
func (b *Buffer) SetSelectionColor(c core.Color) {
	b.selection = c
}

// DefaultColor returns core.ColorDefault; a Buffer has no palette of
// its own.
func (b *Buffer) DefaultColor() core.Color {
	return core.ColorDefault
}

// Clear truncates the buffer, caret and viewport.
func (b *Buffer) Clear() {
	b.runs = nil
	b.caret = 0
	b.viewport = 0
}

// ScrollToEnd moves the viewport to the caret.
func (b *Buffer) ScrollToEnd() {
	b.viewport = b.caret
}

// String returns the full buffer text without color attribution.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, r := range b.runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Runs returns a copy of the color runs in append order.
func (b *Buffer) Runs() []Run {
	out := make([]Run, len(b.runs))
	copy(out, b.runs)
	return out
}

// Caret returns the caret offset, which is always the buffer length.
func (b *Buffer) Caret() int {
	return b.caret
}

// Viewport returns the offset of the last ScrollToEnd, or 0 if the
// buffer never scrolled (or was cleared since).
func (b *Buffer) Viewport() int {
	return b.viewport
}
