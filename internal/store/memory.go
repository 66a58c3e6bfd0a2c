package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
)

const defaultMemoryPageSize = 100

// MemoryStore serves records from a slice. The cursor is the offset of the
// next record. It counts List calls and can be told to fail a given page.
type MemoryStore struct {
	mu      sync.Mutex
	items   []RawRecord
	calls   int
	failAt  int
	failErr error
}

// NewMemoryStore creates a store over items.
func NewMemoryStore(items ...RawRecord) *MemoryStore {
	return &MemoryStore{items: items}
}

// LoadFixture reads a JSON array of records, wire-tagged or plain.
func LoadFixture(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var items []RawRecord
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return NewMemoryStore(items...), nil
}

// FailOn makes the nth List call (1-based) return err.
func (m *MemoryStore) FailOn(call int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAt = call
	m.failErr = err
}

// Calls returns how many times List was called.
func (m *MemoryStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Records returns every stored record.
func (m *MemoryStore) Records() []RawRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RawRecord(nil), m.items...)
}

// List returns up to Limit examined records starting at the cursor offset.
func (m *MemoryStore) List(ctx context.Context, q Query) (Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if m.failAt > 0 && m.calls == m.failAt {
		return Page{}, m.failErr
	}

	start := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(string(q.Cursor))
		if err != nil || n < 0 || n > len(m.items) {
			return Page{}, fmt.Errorf("%w: %q", ErrInvalidCursor, q.Cursor)
		}
		start = n
	}
	limit := int(q.Limit)
	if limit <= 0 {
		limit = defaultMemoryPageSize
	}
	end := min(start+limit, len(m.items))

	page := Page{Items: make([]RawRecord, 0, end-start)}
	for _, raw := range m.items[start:end] {
		if MatchAll(raw, q.Filters) {
			page.Items = append(page.Items, raw)
		}
	}
	if end < len(m.items) {
		page.Next = Cursor(strconv.Itoa(end))
	}
	return page, nil
}
