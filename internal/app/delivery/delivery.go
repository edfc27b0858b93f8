// Package delivery funnels every load result onto one designated execution
// context before it reaches a consumer.
//
// The designated context is modeled as an Executor. Loop is a serial event
// loop owned by a single goroutine: work dispatched from that goroutine runs
// inline, work dispatched from anywhere else is queued and run on it in
// order. Immediate runs work on the caller and is meant for consumers that
// are already serial (tests, one-shot CLI runs).
//
//	loop := delivery.NewLoop(64, logger)
//	go loop.Run(ctx)
//
//	api.LoadFriends(ctx, delivery.Deliver(loop, func(r domain.Result[[]item.Friend]) {
//	    // always runs on the loop goroutine
//	}))
package delivery

// Executor runs work on the execution context it represents.
type Executor interface {
	// Dispatch runs fn exactly once on the executor's context. If the
	// caller already runs on that context, fn runs before Dispatch returns.
	Dispatch(fn func())
}

// Immediate is an Executor whose context is the calling goroutine.
type Immediate struct{}

// Dispatch runs fn inline.
func (Immediate) Dispatch(fn func()) {
	fn()
}

// Deliver wraps completion so that every value passed to the returned
// function is handed to completion on exec.
func Deliver[T any](exec Executor, completion func(T)) func(T) {
	return func(v T) {
		exec.Dispatch(func() { completion(v) })
	}
}
