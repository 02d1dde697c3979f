package benchmark

import "github.com/consoleview/consoleview/core"

// discardSink absorbs appends so every framework in the comparison
// writes to an equally cheap destination.
type discardSink struct{}

func (discardSink) Append(string) {}

func (discardSink) SetSelectionColor(core.Color) {}

func (discardSink) DefaultColor() core.Color { return core.ColorDefault }

func (discardSink) Clear() {}

func (discardSink) ScrollToEnd() {}
