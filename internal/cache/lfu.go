// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

// Package cache provides an in-memory LFU cache with TTL expiry used to
// bound repeated calls to the metadata API.
package cache

import (
	"sync"
	"time"
)

// Default sizing applied when NewLFU receives non-positive values.
const (
	DefaultCapacity = 1024
	DefaultTTL      = 30 * time.Minute
)

type entry[V any] struct {
	key       string
	value     V
	freq      int
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

// freqList is a doubly-linked list of entries sharing one access frequency,
// most recently used at the front.
type freqList[V any] struct {
	head entry[V]
	size int
}

func newFreqList[V any]() *freqList[V] {
	fl := &freqList[V]{}
	fl.head.next = &fl.head
	fl.head.prev = &fl.head
	return fl
}

func (fl *freqList[V]) pushFront(e *entry[V]) {
	e.prev = &fl.head
	e.next = fl.head.next
	fl.head.next.prev = e
	fl.head.next = e
	fl.size++
}

func (fl *freqList[V]) unlink(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	fl.size--
}

func (fl *freqList[V]) back() *entry[V] {
	if fl.size == 0 {
		return nil
	}
	return fl.head.prev
}

// LFU is a thread-safe least-frequently-used cache with O(1) Get and Set.
// Among entries of equal frequency the least recently used is evicted.
// Expired entries are removed lazily on access.
type LFU[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time

	items   map[string]*entry[V]
	freqs   map[int]*freqList[V]
	minFreq int

	hits   int64
	misses int64
}

// NewLFU creates a cache holding at most capacity entries, each living ttl.
func NewLFU[V any](capacity int, ttl time.Duration) *LFU[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LFU[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*entry[V], capacity),
		freqs:    make(map[int]*freqList[V]),
	}
}

// Get returns the cached value for key and bumps its frequency.
func (c *LFU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.remove(e)
		c.misses++
		return zero, false
	}
	c.touch(e)
	c.hits++
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *LFU[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a specific TTL.
func (c *LFU[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = c.now().Add(ttl)
		c.touch(e)
		return
	}

	if len(c.items) >= c.capacity {
		c.evict()
	}

	e := &entry[V]{key: key, value: value, freq: 1, expiresAt: c.now().Add(ttl)}
	c.items[key] = e
	c.list(1).pushFront(e)
	c.minFreq = 1
}

// Delete removes key and reports whether it was present.
func (c *LFU[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if ok {
		c.remove(e)
	}
	return ok
}

// Len returns the number of stored entries, expired ones included.
func (c *LFU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit and miss counters and the current size.
func (c *LFU[V]) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

func (c *LFU[V]) list(freq int) *freqList[V] {
	fl, ok := c.freqs[freq]
	if !ok {
		fl = newFreqList[V]()
		c.freqs[freq] = fl
	}
	return fl
}

func (c *LFU[V]) touch(e *entry[V]) {
	fl := c.freqs[e.freq]
	fl.unlink(e)
	if fl.size == 0 {
		delete(c.freqs, e.freq)
		if c.minFreq == e.freq {
			c.minFreq++
		}
	}
	e.freq++
	c.list(e.freq).pushFront(e)
}

func (c *LFU[V]) remove(e *entry[V]) {
	if fl, ok := c.freqs[e.freq]; ok {
		fl.unlink(e)
		if fl.size == 0 {
			delete(c.freqs, e.freq)
		}
	}
	delete(c.items, e.key)
}

func (c *LFU[V]) evict() {
	fl, ok := c.freqs[c.minFreq]
	if !ok {
		// minFreq can go stale after Delete or expiry; fall back to a scan.
		c.minFreq = 0
		for f := range c.freqs {
			if c.minFreq == 0 || f < c.minFreq {
				c.minFreq = f
			}
		}
		if fl, ok = c.freqs[c.minFreq]; !ok {
			return
		}
	}
	if victim := fl.back(); victim != nil {
		c.remove(victim)
	}
}
