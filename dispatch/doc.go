// Package dispatch confines mutation of a shared resource to a single
// owner goroutine.
//
// A Loop runs a dedicated goroutine that consumes a serialized task
// queue. Run executes an action inline when the caller already is the
// owner goroutine; otherwise it enqueues the action and blocks until
// the owner has executed it. Actions submitted by one goroutine keep
// their relative order; actions racing from different goroutines are
// serialized in queue-acceptance order, which is a valid but not
// caller-predictable total order. Every action is whole: the loop
// never interleaves two actions.
//
// A dispatched call has no deadline. The owner goroutine is assumed to
// stay live and responsive; if it is wedged, callers block until Close
// tears the loop down. Panics inside actions are recovered at the loop
// boundary, counted in Stats, and handed to the failure reporter — the
// caller's Run always returns normally.
package dispatch
