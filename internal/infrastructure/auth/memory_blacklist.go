package auth

import (
	"context"
	"sync"
	"time"

	"os-service-api/internal/usecase/interfaces"
)

// MemoryBlacklist keeps revoked token ids in process, each until the moment
// its token would have expired. Expired entries are dropped on lookup and by
// Run.
type MemoryBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

var _ interfaces.ITokenBlacklist = (*MemoryBlacklist)(nil)

func NewMemoryBlacklist(now func() time.Time) *MemoryBlacklist {
	if now == nil {
		now = time.Now
	}
	return &MemoryBlacklist{entries: make(map[string]time.Time), now: now}
}

func (b *MemoryBlacklist) Add(_ context.Context, tokenID string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !expiresAt.After(b.now()) {
		return nil
	}
	b.entries[tokenID] = expiresAt
	return nil
}

func (b *MemoryBlacklist) Contains(_ context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	until, ok := b.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(b.now()) {
		delete(b.entries, tokenID)
		return false, nil
	}
	return true, nil
}

// Sweep removes every expired entry and reports how many were removed.
func (b *MemoryBlacklist) Sweep() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	removed := 0
	for id, until := range b.entries {
		if !until.After(now) {
			delete(b.entries, id)
			removed++
		}
	}
	return removed
}

func (b *MemoryBlacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Run sweeps every interval until ctx is done.
func (b *MemoryBlacklist) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Sweep()
		}
	}
}
