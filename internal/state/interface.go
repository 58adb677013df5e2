// internal/state/interface.go
package state

import "context"

// Interface defines the history store contract for dependency injection and testing.
type Interface interface {
	AddRecent(ctx context.Context, item RecentItem) error
	ListRecent(ctx context.Context, limit int) ([]RecentItem, error)
	ClearRecent(ctx context.Context) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
