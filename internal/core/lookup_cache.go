package core

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"
)

// identity is the address and length of a string's bytes. Two strings with the
// same identity hold the same text. The data pointer keeps the bytes reachable
// for as long as the entry lives, so an address is never reused for other text.
type identity struct {
	data *byte
	n    int
}

func identityOf(s string) identity {
	return identity{data: unsafe.StringData(s), n: len(s)}
}

// lookupCache maps name identities to resolved fields, including misses.
// It grows up to limit entries and never shrinks. Concurrent stores may
// overshoot the limit by a few entries.
type lookupCache struct {
	entries sync.Map // identity -> *Field, nil for "no such field"
	size    atomic.Int32
	limit   int32
}

func newLookupCache(limit int) *lookupCache {
	if limit < 0 {
		limit = 0
	}
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	return &lookupCache{limit: int32(limit)}
}

func (c *lookupCache) load(name string) (*Field, bool) {
	if c.limit == 0 {
		return nil, false
	}
	v, ok := c.entries.Load(identityOf(name))
	if !ok {
		return nil, false
	}
	return v.(*Field), true
}

func (c *lookupCache) store(name string, f *Field) {
	if c.limit == 0 || c.size.Load() >= c.limit {
		return
	}
	if _, loaded := c.entries.LoadOrStore(identityOf(name), f); !loaded {
		c.size.Add(1)
	}
}

func (c *lookupCache) count() int {
	return int(c.size.Load())
}
