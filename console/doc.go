// Package console exposes the logging surface the rest of an
// application calls: bind a sink, then write plain, line or
// severity-tagged output from any goroutine.
//
// Every operation routes through a dispatch.Loop, so the bound sink is
// only ever mutated on its owner goroutine; callers block until their
// append has completed there. The sink reference itself is part of the
// same discipline: Bind and Unbind are owner-confined mutations, and
// the unbound check happens on the owner goroutine too. With no sink
// bound, every operation is a defined no-op, not an error.
//
// Appends are whole. Two goroutines racing Write calls never interleave
// within a single call; their relative order is whichever order the
// loop accepted the submissions.
//
// A panic inside a dispatched action surfaces as a red ERROR line on
// the same console. A second failure while that line is being written
// would recurse, so a re-entrancy guard trips and the report goes to
// the fallback writer (standard error) instead.
package console
