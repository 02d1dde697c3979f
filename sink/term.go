package sink

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/consoleview/consoleview/core"
)

// ansiClear erases the screen and homes the cursor.
const ansiClear = "\x1b[2J\x1b[H"

// colorAttrs maps run colors to fatih/color renderers. ColorDefault
// has no entry: default-colored runs are written verbatim.
var colorAttrs = map[core.Color]*color.Color{
	core.ColorRed:        color.New(color.FgRed),
	core.ColorYellow:     color.New(color.FgYellow),
	core.ColorLightGreen: color.New(color.FgHiGreen),
}

// Term renders color runs as ANSI sequences on an io.Writer. Escape
// emission follows fatih/color's global detection, so NO_COLOR and
// non-terminal writers degrade to plain text. Like every Sink, Term is
// owner-goroutine-confined and carries no lock.
type Term struct {
	w         io.Writer
	selection core.Color
}

// Ensure Term satisfies Sink.
var _ Sink = (*Term)(nil)

// NewTerm creates a Term over w. A nil writer defaults to os.Stdout.
func NewTerm(w io.Writer) *Term {
	if w == nil {
		w = os.Stdout
	}
	return &Term{w: w}
}

// Append writes text in the current selection color.
func (t *Term) Append(text string) {
	if text == "" {
		return
	}
	if attr, ok := colorAttrs[t.selection]; ok {
		attr.Fprint(t.w, text)
		return
	}
	io.WriteString(t.w, text)
}

// SetSelectionColor sets the color for subsequent appends.
func (t *Term) SetSelectionColor(c core.Color) {
	t.selection = c
}

// DefaultColor returns core.ColorDefault: the terminal renders its own
// foreground for unattributed runs.
func (t *Term) DefaultColor() core.Color {
	return core.ColorDefault
}

// Clear erases the terminal when escape output is enabled. A plain
// writer has no erasable surface, so the call degrades to a no-op
// rather than emitting control bytes into a pipe.
func (t *Term) Clear() {
	if color.NoColor {
		return
	}
	io.WriteString(t.w, ansiClear)
}

// ScrollToEnd is a no-op: terminals scroll on their own.
func (t *Term) ScrollToEnd() {}
