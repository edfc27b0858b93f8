package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// ErrLoopUsed is returned by Run when the loop is already running or has
// already stopped. A Loop runs at most once.
var ErrLoopUsed = errors.New("delivery: loop already used")

// defaultQueueSize is used when NewLoop receives a non-positive size.
const defaultQueueSize = 64

// Compile-time interface check.
var _ Executor = (*Loop)(nil)

// Loop is a serial executor bound to the goroutine that calls Run.
//
// Jobs dispatched from other goroutines are queued and executed in FIFO
// order. A job dispatched from the loop goroutine itself runs inline, so a
// result crossing several composed layers is never rescheduled.
//
// After Run returns, queued jobs have been drained and further Dispatch
// calls run inline on the caller; work is never dropped.
type Loop struct {
	jobs   chan func()
	owner  atomic.Uint64
	used   atomic.Bool
	mu     sync.RWMutex
	closed bool
	logger *slog.Logger
}

// NewLoop creates a loop with a job queue of the given size.
func NewLoop(queueSize int, logger *slog.Logger) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		jobs:   make(chan func(), queueSize),
		logger: logger,
	}
}

// Run binds the loop to the calling goroutine and executes jobs until ctx is
// done. Jobs queued at that point still run before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	if !l.used.CompareAndSwap(false, true) {
		return ErrLoopUsed
	}
	l.owner.Store(goroutineID())
	defer l.owner.Store(0)

	l.logger.DebugContext(ctx, "delivery loop started")

	for {
		select {
		case fn := <-l.jobs:
			l.execute(fn)
		case <-ctx.Done():
			l.shutdown()
			l.logger.Debug("delivery loop stopped")
			return nil
		}
	}
}

// Dispatch runs fn on the loop goroutine.
func (l *Loop) Dispatch(fn func()) {
	if l.onLoop() {
		l.execute(fn)
		return
	}

	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		l.logger.Warn("delivery loop stopped, running job on caller")
		l.execute(fn)
		return
	}
	l.jobs <- fn
	l.mu.RUnlock()
}

// onLoop reports whether the caller is the goroutine running the loop.
func (l *Loop) onLoop() bool {
	id := goroutineID()
	return id != 0 && id == l.owner.Load()
}

// shutdown closes the loop for new work. Senders already blocked on a full
// queue hold the read lock, so the loop keeps consuming until the write lock
// is acquired, then drains whatever is still buffered.
func (l *Loop) shutdown() {
	locked := make(chan struct{})
	go func() {
		l.mu.Lock()
		l.closed = true
		l.mu.Unlock()
		close(locked)
	}()

	for {
		select {
		case fn := <-l.jobs:
			l.execute(fn)
		case <-locked:
			for {
				select {
				case fn := <-l.jobs:
					l.execute(fn)
				default:
					return
				}
			}
		}
	}
}

// execute runs one job, keeping the loop alive if it panics.
func (l *Loop) execute(fn func()) {
	defer func() {
		if v := recover(); v != nil {
			l.logger.Error("delivery job panicked",
				slog.String("panic", fmt.Sprint(v)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	fn()
}
