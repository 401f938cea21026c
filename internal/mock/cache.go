package mock

import (
	"context"
	"time"

	"github.com/symposio/media-service-go/internal/db"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	MediaOut []byte

	GetErr    error
	DeleteErr error

	GetCalled  bool
	SetCalled  bool
	SetData    []byte
	SetTTL     time.Duration
	DeletedIDs []db.UUID
}

func (m *Cache) GetMediaDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaOut, nil
}

func (m *Cache) SetMediaDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
	m.SetCalled = true
	m.SetData = data
	m.SetTTL = ttl
}

func (m *Cache) DeleteMediaDetails(ctx context.Context, id db.UUID) error {
	m.DeletedIDs = append(m.DeletedIDs, id)
	return m.DeleteErr
}
