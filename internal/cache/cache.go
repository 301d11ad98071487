// Package cache provides the bounded key-value store used to memoize
// canonical decisions. The cache is strictly a performance layer: every value
// is recomputable, so all implementations are allowed to lose entries at any
// time and callers must treat a miss or an error as "recompute".
package cache

import "context"

// Interface is the decision cache contract. Implementations must tolerate
// concurrent readers with occasional concurrent writers.
type Interface interface {
	// Get returns the cached value for key, or found=false on a miss.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Put stores a value, evicting older entries if the store is full.
	Put(ctx context.Context, key string, value []byte) error
	// Evict removes a single key. Evicting an absent key is not an error.
	Evict(ctx context.Context, key string) error
	// Len returns the current entry count.
	Len(ctx context.Context) (int, error)
}

// NoOp is a cache that stores nothing. Inject it to disable memoization,
// typically in tests.
type NoOp struct{}

// NewNoOp creates a no-op cache.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Get always misses.
func (*NoOp) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Put discards the value.
func (*NoOp) Put(_ context.Context, _ string, _ []byte) error {
	return nil
}

// Evict does nothing.
func (*NoOp) Evict(_ context.Context, _ string) error {
	return nil
}

// Len is always zero.
func (*NoOp) Len(_ context.Context) (int, error) {
	return 0, nil
}
