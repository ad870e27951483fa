// Package distinct provides an approximate distinct-token counter backed by
// xxHash64. It trades exactness for memory: only the 8-byte hash of each
// token is retained, so counting millions of tokens costs a few MB instead
// of keeping every string alive. Hash collisions undercount by at most the
// collision probability of xxHash64 (~1 in 2^64 per pair), which is
// negligible for a display statistic.
package distinct

import "github.com/cespare/xxhash/v2"

// Counter tracks the number of distinct tokens observed.
// The zero value is not usable; create counters with NewCounter.
type Counter struct {
	seen map[uint64]struct{}
}

// NewCounter creates an empty distinct-token counter.
func NewCounter() *Counter {
	return &Counter{
		seen: make(map[uint64]struct{}),
	}
}

// Observe records one token occurrence.
func (c *Counter) Observe(token string) {
	c.seen[xxhash.Sum64String(token)] = struct{}{}
}

// Count returns the number of distinct tokens observed so far.
func (c *Counter) Count() int {
	return len(c.seen)
}
