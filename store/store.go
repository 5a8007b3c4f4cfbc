// Package store persists the few numbers the game keeps between sessions.
package store

import (
	"math"
	"sync"
)

// Store is a numeric key-value store. Get returns 0 for a missing key.
type Store interface {
	Get(key string) float64
	Set(key string, v float64) error
}

// Memory is an in-process Store. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]float64)}
}

// Get returns the value under key, or 0.
func (m *Memory) Get(key string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

// Set stores v under key.
func (m *Memory) Set(key string, v float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = v
	return nil
}

// LoadHighscore reads a highscore and degrades anything that is not a
// finite, non-negative number to 0. A nil store yields 0.
func LoadHighscore(s Store, key string) int {
	if s == nil {
		return 0
	}
	v := s.Get(key)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}
