// Package mem holds in-process TTL caches.
package mem

import (
	"sync"
	"time"

	"tripcheck/pkg/conflicts"
)

// ResultStore memoizes conflict check results by input hash.
type ResultStore interface {
	Get(key string) (conflicts.ConflictCheckResult, bool)
	Set(key string, result conflicts.ConflictCheckResult, ttl time.Duration)
	Len() int
}

type entry struct {
	result    conflicts.ConflictCheckResult
	expiresAt time.Time
}

type ResultCache struct {
	mu         sync.RWMutex
	data       map[string]entry
	maxEntries int
	now        func() time.Time
}

func NewResultCache(maxEntries int) *ResultCache {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &ResultCache{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *ResultCache) Get(key string) (conflicts.ConflictCheckResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		return conflicts.ConflictCheckResult{}, false
	}
	return e.result, true
}

func (s *ResultCache) Set(key string, result conflicts.ConflictCheckResult, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if len(s.data) >= s.maxEntries {
		s.purgeLocked(now)
	}
	if _, exists := s.data[key]; !exists && len(s.data) >= s.maxEntries {
		// still full: drop the entry closest to expiry
		var victim string
		var soonest time.Time
		for k, e := range s.data {
			if victim == "" || e.expiresAt.Before(soonest) {
				victim, soonest = k, e.expiresAt
			}
		}
		delete(s.data, victim)
	}
	s.data[key] = entry{result: result, expiresAt: now.Add(ttl)}
}

func (s *ResultCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *ResultCache) purgeLocked(now time.Time) {
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
