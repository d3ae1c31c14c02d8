// SPDX-License-Identifier: MIT
// Package local: memoization of pure per-place results.
//
// The per-place computation is a pure function of
// (type, prime, i0, n, conductance), so results may be cached under that
// key. The cache is safe for concurrent workers and is strictly an
// optimization: a disabled or cold cache changes nothing but latency.

package local

import (
	"sync"

	"github.com/tesalab/tesa/core"
)

// cacheKey is the full purity key of one local computation. PlaceID is
// deliberately excluded: two places with identical parameters share one
// entry (the stored PlaceID is rewritten on read).
type cacheKey struct {
	typ         core.ReductionType
	prime       int64
	i0          int
	n           int
	conductance float64
}

// Cache memoizes LocalConstant values across places and runs.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]core.LocalConstant
}

// NewCache returns an empty cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]core.LocalConstant)}
}

// Get returns the memoized constant for the place's parameter key,
// rebranded with the place's own ID, and whether it was present.
func (c *Cache) Get(place core.Place) (core.LocalConstant, bool) {
	c.mu.RLock()
	lc, ok := c.entries[keyFor(place)]
	c.mu.RUnlock()
	if ok {
		lc.PlaceID = place.ID
	}
	return lc, ok
}

// Put stores the constant under the place's parameter key.
func (c *Cache) Put(place core.Place, lc core.LocalConstant) {
	c.mu.Lock()
	c.entries[keyFor(place)] = lc
	c.mu.Unlock()
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func keyFor(p core.Place) cacheKey {
	return cacheKey{typ: p.Type, prime: p.Prime, i0: p.I0, n: p.N, conductance: p.Conductance}
}
