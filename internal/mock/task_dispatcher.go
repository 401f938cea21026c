package mock

import (
	"context"
	"sync"

	"github.com/symposio/media-service-go/internal/db"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	mu sync.Mutex

	ThumbnailErr error
	ThumbnailIDs []db.UUID
}

func (m *MockDispatcher) EnqueueGenerateThumbnail(ctx context.Context, assetID db.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ThumbnailErr != nil {
		return m.ThumbnailErr
	}
	m.ThumbnailIDs = append(m.ThumbnailIDs, assetID)
	return nil
}
