// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// lru.go provides the bounded decision cache. Concurrency-safe: renders
// triggered in quick succession may race to classify the same image, but
// the final cached value is identical either way.
package brightness

import (
	"container/list"
	"sync"
)

type lruEntry struct {
	key      string
	decision Decision
}

// lru is a mutex-guarded least-recently-used cache of decisions.
type lru struct {
	mu      sync.Mutex
	cap     int
	order   *list.List               // front = most recent
	entries map[string]*list.Element // key -> element holding *lruEntry
}

func newLRU(cap int) *lru {
	return &lru{
		cap:     cap,
		order:   list.New(),
		entries: make(map[string]*list.Element, cap),
	}
}

func (c *lru) get(key string) (Decision, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return Bright, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).decision, true
}

func (c *lru) put(key string, d Decision) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		el.Value.(*lruEntry).decision = d
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&lruEntry{key: key, decision: d})
	if c.order.Len() > c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*lruEntry).key)
	}
}

func (c *lru) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
