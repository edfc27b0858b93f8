package itemservice

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// Compile-time interface check.
var _ ports.ItemService = (*Source[item.Friend])(nil)

// Source adapts one backend call to ports.ItemService. On success it keeps
// the items accepted by the filter, hands the raw batch to the before-map
// hook, and maps each item to a DisplayItem whose selection action calls the
// selection callback with that exact item. Failures are forwarded as-is.
//
// The result is always delivered through the executor.
type Source[T any] struct {
	name      string
	load      func(context.Context, func(domain.Result[[]T]))
	keep      func(T) bool
	beforeMap func(context.Context, []T)
	present   func(T, func()) item.DisplayItem
	onSelect  func(T)
	exec      delivery.Executor
}

// SourceOption customizes a Source.
type SourceOption[T any] func(*Source[T])

// WithFilter keeps only the items for which keep returns true. Filtering
// happens before mapping, so rejected items never reach the mapper.
func WithFilter[T any](keep func(T) bool) SourceOption[T] {
	return func(s *Source[T]) {
		s.keep = keep
	}
}

// WithBeforeMap runs hook with the raw successful batch before any item is
// filtered or mapped.
func WithBeforeMap[T any](hook func(context.Context, []T)) SourceOption[T] {
	return func(s *Source[T]) {
		s.beforeMap = hook
	}
}

// NewSource creates a Source named name (used in logs). load starts the
// asynchronous backend call and must complete at most once. present maps one
// item given the selection action bound to it; onSelect receives the item
// when that action runs and may be nil.
func NewSource[T any](
	name string,
	load func(context.Context, func(domain.Result[[]T])),
	present func(T, func()) item.DisplayItem,
	onSelect func(T),
	exec delivery.Executor,
	opts ...SourceOption[T],
) *Source[T] {
	if exec == nil {
		exec = delivery.Immediate{}
	}
	if onSelect == nil {
		onSelect = func(T) {}
	}
	s := &Source[T]{
		name:     name,
		load:     load,
		present:  present,
		onSelect: onSelect,
		exec:     exec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadItems runs the backend load and delivers the adapted result once.
func (s *Source[T]) LoadItems(ctx context.Context, completion Completion) {
	var once sync.Once
	deliver := delivery.Deliver(s.exec, completion)

	s.load(ctx, func(result domain.Result[[]T]) {
		once.Do(func() {
			deliver(s.adapt(ctx, result))
		})
	})
}

// adapt turns a backend result into a display result.
func (s *Source[T]) adapt(ctx context.Context, result domain.Result[[]T]) domain.Result[[]item.DisplayItem] {
	items, err := result.Get()
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "item source failed",
			slog.String("operation", "LoadItems"),
			slog.String("source", s.name),
			slog.Any("error", err),
		)
		return domain.Failure[[]item.DisplayItem](err)
	}

	if s.beforeMap != nil {
		s.beforeMap(ctx, items)
	}

	out := make([]item.DisplayItem, 0, len(items))
	for _, it := range items {
		if s.keep != nil && !s.keep(it) {
			continue
		}
		out = append(out, s.present(it, func() { s.onSelect(it) }))
	}

	logging.FromContext(ctx).DebugContext(ctx, "item source loaded",
		slog.String("source", s.name),
		slog.Int("received", len(items)),
		slog.Int("delivered", len(out)),
	)

	return domain.Success(out)
}
