package task

import (
	"context"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueGenerateThumbnail(ctx context.Context, assetID db.UUID) error {
	return nil
}
