package delivery

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// startLoop runs a loop on its own goroutine and returns the goroutine ID
// the loop is bound to, plus a stop function that waits for Run to return.
func startLoop(t *testing.T, l *Loop) (uint64, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	idCh := make(chan uint64, 1)
	l.Dispatch(func() { idCh <- goroutineID() })

	var loopID uint64
	select {
	case loopID = <-idCh:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not start")
	}

	return loopID, func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	}
}

func TestGoroutineID(t *testing.T) {
	t.Parallel()

	here := goroutineID()
	if here == 0 {
		t.Fatal("goroutineID() = 0, want non-zero")
	}
	if again := goroutineID(); again != here {
		t.Errorf("goroutineID() = %d then %d on the same goroutine", here, again)
	}

	other := make(chan uint64)
	go func() { other <- goroutineID() }()
	if id := <-other; id == here {
		t.Errorf("goroutineID() on another goroutine = %d, want different from %d", id, here)
	}
}

func TestImmediate_RunsInline(t *testing.T) {
	t.Parallel()

	ran := false
	Immediate{}.Dispatch(func() { ran = true })

	if !ran {
		t.Error("Immediate.Dispatch did not run fn before returning")
	}
}

func TestLoop_RunsJobsOnLoopGoroutineInOrder(t *testing.T) {
	t.Parallel()

	l := NewLoop(8, nil)
	loopID, stop := startLoop(t, l)
	defer stop()

	const jobs = 50
	var (
		mu    sync.Mutex
		order []int
		wrong atomic.Int32
		wg    sync.WaitGroup
	)
	wg.Add(jobs)

	for i := range jobs {
		l.Dispatch(func() {
			defer wg.Done()
			if goroutineID() != loopID {
				wrong.Add(1)
			}
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	wg.Wait()

	if n := wrong.Load(); n != 0 {
		t.Errorf("%d jobs ran off the loop goroutine", n)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d (FIFO)", i, v, i)
		}
	}
}

func TestLoop_DispatchFromLoopRunsInline(t *testing.T) {
	t.Parallel()

	l := NewLoop(8, nil)
	_, stop := startLoop(t, l)
	defer stop()

	result := make(chan bool, 1)
	l.Dispatch(func() {
		inner := false
		l.Dispatch(func() { inner = true })
		result <- inner
	})

	select {
	case inline := <-result:
		if !inline {
			t.Error("nested Dispatch on the loop goroutine was deferred, want inline")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestLoop_DispatchFromOtherGoroutinesRunsExactlyOnce(t *testing.T) {
	t.Parallel()

	l := NewLoop(2, nil)
	_, stop := startLoop(t, l)
	defer stop()

	const senders = 20
	var (
		count atomic.Int32
		wg    sync.WaitGroup
	)
	wg.Add(senders)
	for range senders {
		go func() {
			l.Dispatch(func() {
				count.Add(1)
				wg.Done()
			})
		}()
	}
	wg.Wait()

	if got := count.Load(); got != senders {
		t.Errorf("jobs run = %d, want %d", got, senders)
	}
}

func TestLoop_SurvivesPanickingJob(t *testing.T) {
	t.Parallel()

	l := NewLoop(4, nil)
	_, stop := startLoop(t, l)
	defer stop()

	l.Dispatch(func() { panic("boom") })

	done := make(chan struct{})
	l.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop stopped processing after a panicking job")
	}
}

func TestLoop_DrainsAndRunsInlineAfterStop(t *testing.T) {
	t.Parallel()

	l := NewLoop(16, nil)
	_, stop := startLoop(t, l)

	var ran atomic.Int32
	for range 10 {
		l.Dispatch(func() { ran.Add(1) })
	}
	stop()

	if got := ran.Load(); got != 10 {
		t.Errorf("jobs run before stop returned = %d, want 10", got)
	}

	inline := false
	l.Dispatch(func() { inline = true })
	if !inline {
		t.Error("Dispatch after stop did not run inline")
	}
}

func TestLoop_RunTwice(t *testing.T) {
	t.Parallel()

	l := NewLoop(1, nil)
	_, stop := startLoop(t, l)
	defer stop()

	if err := l.Run(context.Background()); err != ErrLoopUsed {
		t.Errorf("second Run() error = %v, want ErrLoopUsed", err)
	}
}

func TestDeliver(t *testing.T) {
	t.Parallel()

	var got []int
	deliver := Deliver(Immediate{}, func(v int) { got = append(got, v) })
	deliver(1)
	deliver(2)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("delivered = %v, want [1 2]", got)
	}
}
