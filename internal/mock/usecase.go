package mock

import (
	"context"
	"sync"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

// MockMediaCreator implements port.MediaCreator for tests.
type MockMediaCreator struct {
	Out    *port.CreateMediaOutput
	Err    error
	Called bool
	In     port.CreateMediaInput
}

func (m *MockMediaCreator) CreateMedia(ctx context.Context, in port.CreateMediaInput) (*port.CreateMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaUpdater implements port.MediaUpdater for tests.
type MockMediaUpdater struct {
	Out    *port.UpdateMediaOutput
	Err    error
	Called bool
	In     port.UpdateMediaInput
}

func (m *MockMediaUpdater) UpdateMedia(ctx context.Context, in port.UpdateMediaInput) (*port.UpdateMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaDeleter implements port.MediaDeleter for tests.
type MockMediaDeleter struct {
	Out    *port.DeleteMediaOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaDeleter) DeleteMedia(ctx context.Context, id db.UUID) (*port.DeleteMediaOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockMediaGetter implements port.MediaGetter for tests.
type MockMediaGetter struct {
	Out    *port.GetMediaOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaGetter) GetMedia(ctx context.Context, id db.UUID) (*port.GetMediaOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockFolderAssetUploader implements port.FolderAssetUploader for tests.
type MockFolderAssetUploader struct {
	Out    *port.UploadFolderAssetsOutput
	Err    error
	Called bool
	In     port.UploadFolderAssetsInput
}

func (m *MockFolderAssetUploader) UploadFolderAssets(ctx context.Context, in port.UploadFolderAssetsInput) (*port.UploadFolderAssetsOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockFolderAssetDeleter implements port.FolderAssetDeleter for tests.
type MockFolderAssetDeleter struct {
	Out    *port.DeleteFolderAssetOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockFolderAssetDeleter) DeleteFolderAsset(ctx context.Context, id db.UUID) (*port.DeleteFolderAssetOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockFolderAssetLister implements port.FolderAssetLister for tests.
type MockFolderAssetLister struct {
	Out    []*model.FolderAsset
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockFolderAssetLister) ListFolderAssets(ctx context.Context, folderID db.UUID) ([]*model.FolderAsset, error) {
	m.Called = true
	m.ID = folderID
	return m.Out, m.Err
}

// MockRecounter implements port.Recounter for tests.
type MockRecounter struct {
	mu sync.Mutex

	Err    error
	Called int
	IDs    []db.UUID
}

func (m *MockRecounter) Recount(ctx context.Context, folderID db.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Called++
	m.IDs = append(m.IDs, folderID)
	return m.Err
}

// MockThumbnailGenerator implements port.ThumbnailGenerator for tests.
type MockThumbnailGenerator struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockThumbnailGenerator) GenerateThumbnail(ctx context.Context, assetID db.UUID) error {
	m.Called = true
	m.ID = assetID
	return m.Err
}
