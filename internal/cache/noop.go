package cache

import (
	"context"
	"time"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetMediaDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetMediaDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
}

func (n *NoopCache) DeleteMediaDetails(ctx context.Context, id db.UUID) error { return nil }
