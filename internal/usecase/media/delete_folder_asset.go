package media

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type folderAssetDeleterSrv struct {
	assetRepo port.FolderAssetRepository
	recounter port.Recounter
	cache     port.Cache
	strg      port.Storage
}

// compile-time check: *folderAssetDeleterSrv must satisfy port.FolderAssetDeleter
var _ port.FolderAssetDeleter = (*folderAssetDeleterSrv)(nil)

// NewFolderAssetDeleter constructs a FolderAssetDeleter implementation.
func NewFolderAssetDeleter(assetRepo port.FolderAssetRepository, recounter port.Recounter, cache port.Cache, strg port.Storage) port.FolderAssetDeleter {
	return &folderAssetDeleterSrv{assetRepo, recounter, cache, strg}
}

// DeleteFolderAsset removes the asset's blobs best-effort, deletes the row,
// then refreshes the parent folder's count.
func (s *folderAssetDeleterSrv) DeleteFolderAsset(ctx context.Context, id db.UUID) (*port.DeleteFolderAssetOutput, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := &port.DeleteFolderAssetOutput{}
	out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, asset.ObjectKey))
	if asset.ThumbnailKey != nil {
		out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, *asset.ThumbnailKey))
	}

	if err := s.assetRepo.Delete(ctx, asset.ID); err != nil {
		return nil, err
	}

	if err := s.recounter.Recount(ctx, asset.FolderID); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteMediaDetails(ctx, asset.FolderID); err != nil {
		log.Printf("failed deleting cache for folder #%s: %v", asset.FolderID, err)
	}

	return out, nil
}
