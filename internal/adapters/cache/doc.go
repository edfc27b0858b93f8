// Package cache provides the local friends cache behind ports.FriendsCache:
// an in-process Memory store and a Redis-backed store shared across
// instances. Both complete loads on their own goroutine and report an empty
// cache as domain.ErrNoData.
package cache
