// Package namecache stores generated names and descriptions so repeated
// generations can reuse text model output
package namecache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=namecachemock github.com/KirkDiggler/card-forge/internal/repositories/namecache Repository

// Entry is one cached piece of generated text
type Entry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GetInput contains parameters for retrieving an entry
type GetInput struct {
	Key string
}

// GetOutput contains the cached entry
type GetOutput struct {
	Entry *Entry
}

// PutInput contains parameters for storing an entry
type PutInput struct {
	Key   string
	Value string
	TTL   time.Duration // zero uses the repository default
}

// PutOutput contains the stored entry
type PutOutput struct {
	Entry *Entry
}

// Repository defines name cache storage operations
type Repository interface {
	// Get returns errors.NotFound on a miss or an expired entry
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores or replaces an entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}
