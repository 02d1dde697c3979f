package dispatch

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Reporter receives the value recovered from a panicking action. The
// console layer installs a reporter that turns failures into ERROR
// lines; until one is installed, failures go to standard error.
type Reporter func(recovered any)

// DefaultQueueSize is the task queue capacity used when Config leaves
// QueueSize zero. Every submitter blocks until its task has executed,
// so the queue depth is bounded by the number of concurrently blocked
// callers; the capacity only smooths enqueue contention.
const DefaultQueueSize = 64

// Config holds configuration for a Loop.
type Config struct {
	// QueueSize is the capacity of the task queue (default: DefaultQueueSize)
	QueueSize int
	// Reporter receives recovered action panics (default: stderr)
	Reporter Reporter
}

// task pairs an action with the channel its submitter blocks on.
type task struct {
	fn   func()
	done chan struct{}
}

// Loop serializes actions onto one dedicated owner goroutine.
type Loop struct {
	queue    chan task
	closed   chan struct{}
	wg       sync.WaitGroup
	ownerID  uint64
	reporter atomic.Pointer[Reporter]
	stats    *Stats

	// mu fences enqueues against Close so that no submitter can slip a
	// task into the queue after the final drain and block forever.
	mu       sync.RWMutex
	isClosed bool
}

// NewLoop starts the owner goroutine and returns once it is running.
func NewLoop(cfg Config) *Loop {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	l := &Loop{
		queue:  make(chan task, cfg.QueueSize),
		closed: make(chan struct{}),
		stats:  NewStats(),
	}
	if cfg.Reporter != nil {
		l.reporter.Store(&cfg.Reporter)
	}

	started := make(chan struct{})
	l.wg.Add(1)
	go l.run(started)
	<-started // ownerID must be set before Run can be called

	return l
}

// SetReporter replaces the failure reporter. A nil reporter restores
// the stderr fallback.
func (l *Loop) SetReporter(r Reporter) {
	if r == nil {
		l.reporter.Store(nil)
		return
	}
	l.reporter.Store(&r)
}

// IsOwner reports whether the calling goroutine is the loop's owner
// goroutine.
func (l *Loop) IsOwner() bool {
	return goroutineID() == l.ownerID
}

// Run executes fn on the owner goroutine and returns after fn has
// completed. Called from the owner goroutine itself, fn runs inline;
// re-entrant submissions from inside an action therefore cannot
// deadlock. A nil fn is a silent no-op, as is any call after Close.
//
// Run returns normally even when fn panicked; the recovered value is
// routed to the reporter instead (see package doc for the liveness
// assumption this implies).
func (l *Loop) Run(fn func()) {
	if fn == nil {
		return
	}
	if l.IsOwner() {
		l.stats.IncrementInline()
		l.invoke(fn)
		return
	}

	t := task{fn: fn, done: make(chan struct{})}

	l.mu.RLock()
	if l.isClosed {
		l.mu.RUnlock()
		return
	}
	select {
	case l.queue <- t:
		l.mu.RUnlock()
		<-t.done
		l.stats.IncrementMarshaled()
	case <-l.closed:
		l.mu.RUnlock()
	}
}

// run is the owner goroutine: it consumes the queue in FIFO order
// until Close, then drains what is already queued.
func (l *Loop) run(started chan struct{}) {
	defer l.wg.Done()
	l.ownerID = goroutineID()
	close(started)

	for {
		select {
		case t := <-l.queue:
			l.invoke(t.fn)
			close(t.done)
		case <-l.closed:
			for {
				select {
				case t := <-l.queue:
					l.invoke(t.fn)
					close(t.done)
				default:
					return
				}
			}
		}
	}
}

// invoke executes one action, converting a panic into a report. The
// reporter itself runs on the same goroutine, so a reporter that calls
// back into Run executes inline rather than deadlocking.
func (l *Loop) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.IncrementRecovered()
			l.report(r)
		}
	}()
	fn()
	l.stats.IncrementProcessed()
}

// report forwards a recovered panic to the reporter, shielding the
// loop from a reporter that panics in turn.
func (l *Loop) report(recovered any) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "dispatch: failure reporter panicked: %v (original: %v)\n", r, recovered)
		}
	}()
	if rp := l.reporter.Load(); rp != nil {
		(*rp)(recovered)
		return
	}
	fmt.Fprintf(os.Stderr, "dispatch: action failed: %v\n", recovered)
}

// Stats returns a snapshot of the current statistics
func (l *Loop) Stats() Snapshot {
	return l.stats.GetSnapshot()
}

// Close stops the owner goroutine. Pending tasks are executed before
// the goroutine exits; a submitter that raced the shutdown is released
// without its action running. Close is idempotent.
func (l *Loop) Close() error {
	l.mu.Lock()
	if l.isClosed {
		l.mu.Unlock()
		return nil
	}
	l.isClosed = true
	close(l.closed)
	l.mu.Unlock()

	l.wg.Wait()

	// Release any submitter whose enqueue won the race against the
	// loop's final drain; its done channel must still be closed.
	for {
		select {
		case t := <-l.queue:
			close(t.done)
		default:
			return nil
		}
	}
}
