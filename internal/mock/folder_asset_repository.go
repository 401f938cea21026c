package mock

import (
	"context"
	"database/sql"
	"sync"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
)

// MockFolderAssetRepo implements folder asset persistence for tests.
type MockFolderAssetRepo struct {
	mu sync.Mutex

	AssetRecord *model.FolderAsset
	ListOut     []*model.FolderAsset
	CountOut    int

	GetErr    error
	CreateErr error
	DeleteErr error
	ListErr   error
	CountErr  error
	ThumbErr  error
	// FailCreateFor makes Create fail only for assets with this name.
	FailCreateFor string

	Created     []*model.FolderAsset
	GetCalled   bool
	DeletedIDs  []db.UUID
	ListCalled  bool
	CountCalled bool
	ThumbID     db.UUID
	ThumbKey    string
	ThumbURL    string
	ThumbCalled bool
}

func (m *MockFolderAssetRepo) Create(ctx context.Context, asset *model.FolderAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailCreateFor != "" && asset.Name == m.FailCreateFor {
		return m.CreateErr
	}
	if m.FailCreateFor == "" && m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, asset)
	return nil
}

func (m *MockFolderAssetRepo) GetByID(ctx context.Context, id db.UUID) (*model.FolderAsset, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.AssetRecord == nil {
		return nil, sql.ErrNoRows
	}
	return m.AssetRecord, nil
}

func (m *MockFolderAssetRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeletedIDs = append(m.DeletedIDs, id)
	return m.DeleteErr
}

func (m *MockFolderAssetRepo) ListByFolder(ctx context.Context, folderID db.UUID) ([]*model.FolderAsset, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockFolderAssetRepo) CountByFolder(ctx context.Context, folderID db.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CountCalled = true
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	if m.CountOut == 0 {
		return len(m.Created), nil
	}
	return m.CountOut, nil
}

func (m *MockFolderAssetRepo) SetThumbnail(ctx context.Context, id db.UUID, key, url string) error {
	m.ThumbCalled = true
	m.ThumbID = id
	m.ThumbKey = key
	m.ThumbURL = url
	return m.ThumbErr
}
