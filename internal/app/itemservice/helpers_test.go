package itemservice_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-item-loader/internal/app/itemservice"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
)

const waitTimeout = 2 * time.Second

// scripted answers successive calls with the scripted results; the last
// result repeats once the script is exhausted. Completions run on a fresh
// goroutine, like a network callback.
type scripted[T any] struct {
	mu      sync.Mutex
	results []domain.Result[[]T]
	calls   atomic.Int32
}

func script[T any](results ...domain.Result[[]T]) *scripted[T] {
	return &scripted[T]{results: results}
}

func (s *scripted[T]) next() domain.Result[[]T] {
	n := int(s.calls.Add(1)) - 1
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= len(s.results) {
		n = len(s.results) - 1
	}
	return s.results[n]
}

func (s *scripted[T]) load(_ context.Context, completion func(domain.Result[[]T])) {
	r := s.next()
	go completion(r)
}

func (s *scripted[T]) Calls() int { return int(s.calls.Load()) }

// scriptedFriends, scriptedCards and scriptedTransfers satisfy the remote
// API ports.
type scriptedFriends struct{ *scripted[item.Friend] }

func (s scriptedFriends) LoadFriends(ctx context.Context, completion func(domain.Result[[]item.Friend])) {
	s.load(ctx, completion)
}

type scriptedCards struct{ *scripted[item.Card] }

func (s scriptedCards) LoadCards(ctx context.Context, completion func(domain.Result[[]item.Card])) {
	s.load(ctx, completion)
}

type scriptedTransfers struct{ *scripted[item.Transfer] }

func (s scriptedTransfers) LoadTransfers(ctx context.Context, completion func(domain.Result[[]item.Transfer])) {
	s.load(ctx, completion)
}

// stubService is a ports.ItemService answering from a script of display
// results.
type stubService struct {
	*scripted[item.DisplayItem]
}

func newStub(results ...domain.Result[[]item.DisplayItem]) stubService {
	return stubService{script(results...)}
}

func (s stubService) LoadItems(ctx context.Context, completion itemservice.Completion) {
	s.load(ctx, completion)
}

func successItems(titles ...string) domain.Result[[]item.DisplayItem] {
	items := make([]item.DisplayItem, len(titles))
	for i, title := range titles {
		items[i] = item.NewDisplayItem(title, "", nil)
	}
	return domain.Success(items)
}

func failure(err error) domain.Result[[]item.DisplayItem] {
	return domain.Failure[[]item.DisplayItem](err)
}

// recorder collects every delivery made to its completion.
type recorder struct {
	mu      sync.Mutex
	results []domain.Result[[]item.DisplayItem]
	first   chan struct{}
	once    sync.Once
}

func newRecorder() *recorder {
	return &recorder{first: make(chan struct{})}
}

func (r *recorder) complete(result domain.Result[[]item.DisplayItem]) {
	r.mu.Lock()
	r.results = append(r.results, result)
	r.mu.Unlock()
	r.once.Do(func() { close(r.first) })
}

// wait blocks until the first delivery, then gives stray duplicates a
// moment to show up before returning all deliveries.
func (r *recorder) wait(t *testing.T) []domain.Result[[]item.DisplayItem] {
	t.Helper()
	select {
	case <-r.first:
	case <-time.After(waitTimeout):
		t.Fatal("completion was never invoked")
	}
	time.Sleep(20 * time.Millisecond)

	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Result[[]item.DisplayItem](nil), r.results...)
}

// single waits for exactly one delivery and returns it.
func (r *recorder) single(t *testing.T) domain.Result[[]item.DisplayItem] {
	t.Helper()
	results := r.wait(t)
	if len(results) != 1 {
		t.Fatalf("completion invoked %d times, want exactly 1", len(results))
	}
	return results[0]
}

func titles(items []item.DisplayItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
