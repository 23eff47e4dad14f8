package datatracker

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/singleflight"
)

// defaultMemoEntries bounds the memo when no override is given. Registry
// bodies run a few KB each, so the default stays in the tens of megabytes.
const defaultMemoEntries = 4096

// MemoOption configures a MemoFetcher.
type MemoOption func(*MemoFetcher)

// WithMemoEntries overrides the memo capacity. Values below one are ignored.
func WithMemoEntries(n int) MemoOption {
	return func(m *MemoFetcher) {
		if n > 0 {
			m.maxEntries = n
		}
	}
}

// MemoFetcher decorates a Fetcher with in-process memoization of successful
// bodies. Concurrent fetches of one path collapse into a single upstream
// call, and those collapsed callers share the first caller's context.
// Failures are never memoized, so retrying after a transport error reaches
// the remote service again.
//
// Returned bodies are shared between callers and must be treated as
// read-only. A MemoFetcher is safe for concurrent use.
type MemoFetcher struct {
	fetcher    Fetcher
	group      singleflight.Group
	maxEntries int

	mu     sync.RWMutex
	bodies map[string]json.RawMessage
}

var _ Fetcher = (*MemoFetcher)(nil)

// NewMemoFetcher wraps f in a memo.
func NewMemoFetcher(f Fetcher, opts ...MemoOption) *MemoFetcher {
	m := &MemoFetcher{
		fetcher:    f,
		maxEntries: defaultMemoEntries,
		bodies:     make(map[string]json.RawMessage),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fetch returns the memoized body for path, fetching it once on a miss.
func (m *MemoFetcher) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	if body, ok := m.lookup(path); ok {
		return body, nil
	}
	v, err, _ := m.group.Do(path, func() (interface{}, error) {
		if body, ok := m.lookup(path); ok {
			return body, nil
		}
		body, err := m.fetcher.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		return m.store(path, body), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// Len reports how many bodies are memoized.
func (m *MemoFetcher) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bodies)
}

// Flush drops every memoized body.
func (m *MemoFetcher) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.bodies)
}

func (m *MemoFetcher) lookup(path string) (json.RawMessage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	body, ok := m.bodies[path]
	return body, ok
}

// store memoizes a copy of body. At capacity an arbitrary entry is dropped
// to make room.
func (m *MemoFetcher) store(path string, body json.RawMessage) json.RawMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.bodies) >= m.maxEntries {
		for k := range m.bodies {
			delete(m.bodies, k)
			break
		}
	}
	kept := append(json.RawMessage(nil), body...)
	m.bodies[path] = kept
	return kept
}
