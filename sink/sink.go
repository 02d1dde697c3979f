package sink

import "github.com/consoleview/consoleview/core"

// Sink is the owner-bound output widget the console mutates. All
// methods are owner-goroutine-confined; see the package doc.
type Sink interface {
	// Append writes text at the caret in the current selection color
	// and advances the caret to the end of the buffer.
	Append(text string)

	// SetSelectionColor sets the color for subsequent appends.
	// core.ColorDefault resolves to the sink's own foreground color.
	SetSelectionColor(c core.Color)

	// DefaultColor returns the sink's default foreground color.
	DefaultColor() core.Color

	// Clear truncates the buffer to empty.
	Clear()

	// ScrollToEnd moves the visible viewport to the caret.
	ScrollToEnd()
}
