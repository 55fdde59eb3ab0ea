// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"sync"
	"time"
)

// candidateEntry records when an endpoint was last selected by the
// election loop and how many times it has been selected in total.
type candidateEntry struct {
	last  time.Time
	count int
}

// CandidateRegistry is the small in-memory table of recently-selected
// local endpoints (spec.md §4.3). It exists to support an optional
// time-rate-limit mode used for testing; the rate limit is not a
// network consensus rule.
type CandidateRegistry struct {
	mtx     sync.Mutex
	entries map[string]*candidateEntry
}

// NewCandidateRegistry returns an empty candidate registry.
func NewCandidateRegistry() *CandidateRegistry {
	return &CandidateRegistry{entries: make(map[string]*candidateEntry)}
}

// Touch records endpoint as selected right now, incrementing its
// selection count.
func (c *CandidateRegistry) Touch(endpoint RecentEndpoint) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	k := endpoint.key()
	e, ok := c.entries[k]
	if !ok {
		e = &candidateEntry{}
		c.entries[k] = e
	}
	e.last = time.Now()
	e.count++
}

// Last returns the last-selected time for endpoint, or the zero time if
// it has never been selected.
func (c *CandidateRegistry) Last(endpoint RecentEndpoint) time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if e, ok := c.entries[endpoint.key()]; ok {
		return e.last
	}
	return time.Time{}
}

// Known reports whether endpoint has ever been selected, independent of
// how long ago.
func (c *CandidateRegistry) Known(endpoint RecentEndpoint) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	_, ok := c.entries[endpoint.key()]
	return ok
}

// RecentlySelected reports whether endpoint was selected within the
// last candidateRateLimit window.
func (c *CandidateRegistry) RecentlySelected(endpoint RecentEndpoint, now time.Time) bool {
	last := c.Last(endpoint)
	if last.IsZero() {
		return false
	}
	return now.Sub(last) <= candidateRateLimit
}

// Prune removes entries unused for longer than candidateRetention.
func (c *CandidateRegistry) Prune(now time.Time) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for k, e := range c.entries {
		if now.Sub(e.last) > candidateRetention {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of tracked candidates, used by tests.
func (c *CandidateRegistry) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.entries)
}
