// Package enrich runs the asynchronous, non-core lookups layered on top of
// a rendered clip: file-path checks, link metadata, OCR, and palette
// extraction. Every task is keyed by a stable identifier, memoized for the
// lifetime of the process, and cancel-by-ignore: callers that lose interest
// simply drop the result channel.
package enrich

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// keyFrom builds a memo key from a task namespace and its identifier.
func keyFrom(namespace, id string) string {
	h := sha256.Sum256([]byte(namespace + "\n\n" + id))
	return hex.EncodeToString(h[:])
}

// memo is a concurrency-safe single-flight cache. The first caller for a
// key computes the value; concurrent callers for the same key wait on the
// same computation instead of duplicating it.
type memo struct {
	mu      sync.Mutex
	entries map[string]*memoEntry
}

type memoEntry struct {
	done chan struct{}
	val  any
}

func newMemo() *memo {
	return &memo{entries: make(map[string]*memoEntry)}
}

func (m *memo) do(key string, compute func() any) any {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok {
		m.mu.Unlock()
		<-e.done
		return e.val
	}
	e = &memoEntry{done: make(chan struct{})}
	m.entries[key] = e
	m.mu.Unlock()

	e.val = compute()
	close(e.done)
	return e.val
}
