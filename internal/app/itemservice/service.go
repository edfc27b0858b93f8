// Package itemservice implements the composable item-loading services: the
// source adapters that bind one backend to ports.ItemService, and the
// Fallback and Retry operators that combine services into resilience
// policies without the caller knowing which backend answered.
//
// Composition is structural. Operators hold the services they wrap and
// return a ports.ItemService, so they nest arbitrarily:
//
//	friends := itemservice.Compose(remote).Retry(2).Fallback(cache)
//	friends.LoadItems(ctx, func(r domain.Result[[]item.DisplayItem]) { ... })
//
// Operators never schedule work themselves. Delivery onto the consumer's
// execution context happens once, inside the source adapters, so a result
// that crosses any number of operators is still delivered exactly once.
package itemservice

import (
	"context"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// Completion receives the single result of a LoadItems call.
type Completion = func(domain.Result[[]item.DisplayItem])

// Compile-time interface checks.
var (
	_ ports.ItemService = (*fallbackService)(nil)
	_ ports.ItemService = Composed{}
)

// fallbackService tries primary and, only after primary definitively fails,
// secondary.
type fallbackService struct {
	primary   ports.ItemService
	secondary ports.ItemService
}

// Fallback returns a service that forwards primary's success unchanged and,
// when primary fails, forwards whatever secondary delivers. secondary is
// never started before primary's completion has fired.
func Fallback(primary, secondary ports.ItemService) ports.ItemService {
	return &fallbackService{primary: primary, secondary: secondary}
}

func (f *fallbackService) LoadItems(ctx context.Context, completion Completion) {
	f.primary.LoadItems(ctx, func(result domain.Result[[]item.DisplayItem]) {
		if result.IsSuccess() {
			completion(result)
			return
		}
		f.secondary.LoadItems(ctx, completion)
	})
}

// Retry returns a service that tries service up to retries+1 times,
// stopping at the first success. It is built purely from Fallback: each
// retry is a fallback to the same service. A non-positive retries returns
// service unchanged.
func Retry(service ports.ItemService, retries int) ports.ItemService {
	chain := service
	for range retries {
		chain = Fallback(service, chain)
	}
	return chain
}

// Composed wraps a service with fluent access to the operators. It is
// itself a ports.ItemService.
type Composed struct {
	ports.ItemService
}

// Compose starts a fluent composition from service.
func Compose(service ports.ItemService) Composed {
	return Composed{ItemService: service}
}

// Fallback is the fluent form of Fallback(c, secondary).
func (c Composed) Fallback(secondary ports.ItemService) Composed {
	return Composed{ItemService: Fallback(c.ItemService, secondary)}
}

// Retry is the fluent form of Retry(c, retries).
func (c Composed) Retry(retries int) Composed {
	return Composed{ItemService: Retry(c.ItemService, retries)}
}
