package namecache

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/clock"
)

// MemoryConfig configures the in-process cache
type MemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	clock   clock.Clock
	ttl     time.Duration
}

// NewMemoryRepository creates an in-process name cache, used when no
// Redis address is configured
func NewMemoryRepository(cfg *MemoryConfig) Repository {
	repo := &memoryRepository{
		entries: make(map[string]*Entry),
		clock:   clock.New(),
		ttl:     DefaultTTL,
	}
	if cfg != nil {
		if cfg.Clock != nil {
			repo.clock = cfg.Clock
		}
		if cfg.TTL > 0 {
			repo.ttl = cfg.TTL
		}
	}
	return repo
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	entry, ok := r.entries[input.Key]
	r.mu.RUnlock()

	if !ok || !r.clock.Now().Before(entry.ExpiresAt) {
		return nil, errors.NotFoundf("name %q not cached", input.Key)
	}

	found := *entry
	return &GetOutput{Entry: &found}, nil
}

func (r *memoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Value == "" {
		return nil, errors.InvalidArgument(errValueEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	entry := &Entry{
		Key:       input.Key,
		Value:     input.Value,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	r.entries[input.Key] = entry
	r.mu.Unlock()

	stored := *entry
	return &PutOutput{Entry: &stored}, nil
}
