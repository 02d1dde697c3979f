// Package sink defines the owner-bound output widget boundary and two
// implementations of it.
//
// A Sink is an append-only text destination with a selection color and
// a caret that always sits at the end of the buffer. Sinks are not
// locked internally: the console routes every mutation through the
// dispatch loop, so a sink only ever sees calls from its owner
// goroutine. Calling a sink directly from arbitrary goroutines is a
// data race by contract.
//
// Buffer keeps the text and its color runs in memory and is the test
// double as well as the headless sink. Term renders color runs as ANSI
// sequences on an io.Writer via fatih/color, honoring its global
// NO_COLOR detection.
package sink
