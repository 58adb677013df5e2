// internal/state/mock.go
package state

import (
	"context"
	"sync"
)

// Mock is a test double for Manager.
type Mock struct {
	mu     sync.Mutex
	items  []RecentItem
	addErr error
	closed bool
}

// NewMock creates a new mock history store for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) AddRecent(_ context.Context, item RecentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return m.addErr
	}
	m.items = append([]RecentItem{item}, m.items...)
	return nil
}

func (m *Mock) ListRecent(_ context.Context, limit int) ([]RecentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.items) {
		limit = len(m.items)
	}
	return append([]RecentItem(nil), m.items[:limit]...), nil
}

func (m *Mock) ClearRecent(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// FailAdd makes AddRecent return err.
func (m *Mock) FailAdd(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addErr = err
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
