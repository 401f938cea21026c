package task

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check: *Dispatcher must satisfy port.TaskDispatcher
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueGenerateThumbnail(ctx context.Context, assetID db.UUID) error {
	t, err := NewGenerateThumbnailTask(assetID.String())
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}
