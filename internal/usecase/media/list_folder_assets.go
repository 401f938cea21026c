package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type folderAssetListerSrv struct {
	repo      port.MediaRepository
	assetRepo port.FolderAssetRepository
}

// compile-time check: *folderAssetListerSrv must satisfy port.FolderAssetLister
var _ port.FolderAssetLister = (*folderAssetListerSrv)(nil)

// NewFolderAssetLister constructs a FolderAssetLister implementation.
func NewFolderAssetLister(repo port.MediaRepository, assetRepo port.FolderAssetRepository) port.FolderAssetLister {
	return &folderAssetListerSrv{repo: repo, assetRepo: assetRepo}
}

// ListFolderAssets returns the folder's children, newest upload first.
// An id that does not resolve to a folder-kind media is a NotFound.
func (s *folderAssetListerSrv) ListFolderAssets(ctx context.Context, folderID db.UUID) ([]*model.FolderAsset, error) {
	folder, err := s.repo.GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if folder.Kind != model.MediaKindFolder {
		return nil, ErrNotFound
	}
	return s.assetRepo.ListByFolder(ctx, folderID)
}
