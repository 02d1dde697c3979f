package core

// Terminator is the line terminator appended by line and severity
// writes. Appends whose final text contains it force the sink to
// scroll; appends without it never do.
const Terminator = "\n"

// Line is one formatted append: the final display text and the color
// of the run it starts. Produced by the formatter, consumed exactly
// once by the sink, never persisted.
type Line struct {
	Text  string
	Color Color
}
