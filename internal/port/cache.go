package port

import (
	"context"
	"time"

	"github.com/symposio/media-service-go/internal/db"
)

// Cache provides caching capabilities for media retrieval.
type Cache interface {
	GetMediaDetails(ctx context.Context, id db.UUID) ([]byte, error)
	SetMediaDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration)
	DeleteMediaDetails(ctx context.Context, id db.UUID) error
}
