package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/consoleview/consoleview/core"
	"github.com/consoleview/consoleview/dispatch"
	"github.com/consoleview/consoleview/formatter"
	"github.com/consoleview/consoleview/sink"
	"github.com/consoleview/consoleview/translate"
)

// Config holds configuration for a Console.
type Config struct {
	// Lookup resolves template keys (default: identity via translate.Map)
	Lookup translate.Lookup
	// QueueSize is the dispatch queue capacity (default: dispatch.DefaultQueueSize)
	QueueSize int
	// Fallback receives failure reports when the console cannot report
	// through itself (default: os.Stderr)
	Fallback io.Writer
}

// Console owns the sink registry and the dispatch loop, and composes
// the formatter with both. Construct with New; the zero value is not
// usable.
type Console struct {
	loop *dispatch.Loop
	fmt  *formatter.Formatter

	// sk is owner-confined: read and written only on the loop goroutine.
	sk sink.Sink

	fallback  io.Writer
	reporting atomic.Bool // re-entrancy guard for failure reporting
}

// New creates a Console and starts its owner goroutine.
func New(cfg Config) *Console {
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stderr
	}
	c := &Console{
		fmt:      formatter.New(cfg.Lookup),
		fallback: cfg.Fallback,
	}
	c.loop = dispatch.NewLoop(dispatch.Config{
		QueueSize: cfg.QueueSize,
		Reporter:  c.reportFailure,
	})
	return c
}

// Bind registers s as the console's sink. Rebinding replaces the prior
// reference without mutating the old sink further; binding nil
// unbinds. The registry write itself runs on the owner goroutine.
func (c *Console) Bind(s sink.Sink) {
	c.loop.Run(func() {
		c.sk = s
	})
}

// Unbind clears the sink registry.
func (c *Console) Unbind() {
	c.Bind(nil)
}

// RunOnOwner executes action against the bound sink on the owner
// goroutine and returns once it has completed. With no sink bound the
// call is a silent no-op. Hosts use this for direct widget access that
// the higher-level operations do not cover.
func (c *Console) RunOnOwner(action func(s sink.Sink)) {
	if action == nil {
		return
	}
	c.loop.Run(func() {
		if c.sk == nil {
			return
		}
		action(c.sk)
	})
}

// Clear truncates the sink's buffer. Idempotent; no-op when unbound.
func (c *Console) Clear() {
	c.RunOnOwner(func(s sink.Sink) {
		s.Clear()
	})
}

// Write appends text as one color run at the caret. The sink's default
// color is restored afterwards, so unattributed appends that follow
// are unaffected. No-op when unbound.
func (c *Console) Write(text string, col core.Color) {
	c.RunOnOwner(func(s sink.Sink) {
		appendRun(s, text, col)
	})
}

// WriteLine formats key through the plain path, appends the line
// terminator and writes the result in col. WriteLine("",
// core.ColorDefault) appends exactly one terminator.
func (c *Console) WriteLine(key string, col core.Color, args ...any) {
	line := c.fmt.Format(key, core.Plain, args...)
	c.Write(line.Text, col)
}

// Error writes a red "ERROR: ..." line built from key and args.
func (c *Console) Error(key string, args ...any) {
	c.writeSeverity(core.Error, key, args)
}

// Warning writes a yellow "WARNING: ..." line built from key and args.
func (c *Console) Warning(key string, args ...any) {
	c.writeSeverity(core.Warning, key, args)
}

// Success writes a light-green "SUCCESS: ..." line built from key and
// args.
func (c *Console) Success(key string, args ...any) {
	c.writeSeverity(core.Success, key, args)
}

func (c *Console) writeSeverity(sev core.Severity, key string, args []any) {
	line := c.fmt.Format(key, sev, args...)
	c.Write(line.Text, line.Color)
}

// Formatter returns the console's formatter, shared with collaborators
// like the dialog service.
func (c *Console) Formatter() *formatter.Formatter {
	return c.fmt
}

// Loop returns the console's dispatch loop, for stats and owner checks.
func (c *Console) Loop() *dispatch.Loop {
	return c.loop
}

// Close stops the owner goroutine after draining pending appends.
func (c *Console) Close() error {
	return c.loop.Close()
}

// reportFailure is the loop's failure reporter. It runs on the owner
// goroutine, so the Error call executes inline. The reporting flag
// caps the recursion at depth one: a failure raised while a failure
// line is being written goes to the fallback writer instead of back
// into the console.
func (c *Console) reportFailure(recovered any) {
	if !c.reporting.CompareAndSwap(false, true) {
		fmt.Fprintf(c.fallback, "console: dispatched action failed: %v\n", recovered)
		return
	}
	defer c.reporting.Store(false)
	c.Error("_EXCEPTION", recovered)
}

// appendRun performs one whole append on the owner goroutine: start a
// color run at the caret, append, restore the default color, and
// scroll only when the appended text contains a terminator. Appends
// without a terminator (progress updates) never scroll; always-scroll
// would jitter the viewport under high-frequency partial writes.
func appendRun(s sink.Sink, text string, col core.Color) {
	if col == core.ColorDefault {
		col = s.DefaultColor()
	}
	s.SetSelectionColor(col)
	s.Append(text)
	s.SetSelectionColor(s.DefaultColor())
	if strings.Contains(text, core.Terminator) {
		s.ScrollToEnd()
	}
}
