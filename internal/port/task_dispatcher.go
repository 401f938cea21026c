package port

import (
	"context"

	"github.com/symposio/media-service-go/internal/db"
)

// TaskDispatcher enqueues asynchronous tasks related to media processing.
type TaskDispatcher interface {
	EnqueueGenerateThumbnail(ctx context.Context, assetID db.UUID) error
}
