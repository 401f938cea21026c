package mock

import (
	"context"
	"database/sql"
	"sync"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
)

// MockMediaRepo implements media persistence for tests.
type MockMediaRepo struct {
	mu sync.Mutex

	MediaRecord    *model.Media
	FoldersByEvent map[string]*model.Media
	LegacyOut      []*model.Media

	GetErr     error
	CreateErr  error
	UpdateErr  error
	DeleteErr  error
	LegacyErr  error
	RefreshErr error

	GetCalled     bool
	Created       *model.Media
	Updated       *model.Media
	DeleteCalled  bool
	DeletedID     db.UUID
	LegacyCalled  bool
	RefreshedIDs  []db.UUID
	RefreshCalled int
}

func (m *MockMediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.Created = media
	return m.CreateErr
}

func (m *MockMediaRepo) Update(ctx context.Context, media *model.Media) error {
	m.Updated = media
	return m.UpdateErr
}

func (m *MockMediaRepo) GetByID(ctx context.Context, id db.UUID) (*model.Media, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.MediaRecord == nil {
		return nil, sql.ErrNoRows
	}
	return m.MediaRecord, nil
}

func (m *MockMediaRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockMediaRepo) GetFolderByEvent(ctx context.Context, event string) (*model.Media, error) {
	if folder, ok := m.FoldersByEvent[event]; ok {
		return folder, nil
	}
	return nil, sql.ErrNoRows
}

func (m *MockMediaRepo) ListLegacyImages(ctx context.Context) ([]*model.Media, error) {
	m.LegacyCalled = true
	if m.LegacyErr != nil {
		return nil, m.LegacyErr
	}
	return m.LegacyOut, nil
}

func (m *MockMediaRepo) RefreshItemsCount(ctx context.Context, folderID db.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalled++
	m.RefreshedIDs = append(m.RefreshedIDs, folderID)
	return m.RefreshErr
}
