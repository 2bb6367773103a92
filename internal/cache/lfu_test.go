// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestLFU_GetSet(t *testing.T) {
	t.Parallel()

	c := NewLFU[string](2, time.Minute)
	c.Set("avatar", "/poster.jpg")

	if v, ok := c.Get("avatar"); !ok || v != "/poster.jpg" {
		t.Errorf("Get(avatar) = %q, %v", v, ok)
	}
	if _, ok := c.Get("heat"); ok {
		t.Error("Get(heat) should miss")
	}

	hits, misses, size := c.Stats()
	if hits != 1 || misses != 1 || size != 1 {
		t.Errorf("Stats() = %d, %d, %d", hits, misses, size)
	}
}

func TestLFU_EvictsLeastFrequent(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Get("a")
	c.Set("c", 3) // evicts b (freq 1) rather than a (freq 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should be retained")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be present")
	}
}

func TestLFU_EvictsLeastRecentAmongEqual(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Error("a was least recently used and should have been evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLFU_Expiry(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](4, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	c.SetWithTTL("b", 2, time.Hour)

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Error("a should have expired")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("b should still be live")
	}
	if c.Len() != 1 {
		t.Errorf("expired entry should be removed, Len() = %d", c.Len())
	}
}

func TestLFU_DeleteThenEvict(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](2, time.Minute)
	c.Set("a", 1)
	c.Get("a")
	c.Set("b", 2)
	if !c.Delete("b") {
		t.Fatal("Delete(b) = false")
	}
	c.Set("c", 3)
	c.Get("c")
	c.Set("d", 4)

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Delete("missing") {
		t.Error("Delete(missing) = true")
	}
}

func TestLFU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLFU[int](64, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := string(rune('a' + (i+g)%26))
				c.Set(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
