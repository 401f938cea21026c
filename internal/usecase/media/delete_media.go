package media

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type mediaDeleterSrv struct {
	repo      port.MediaRepository
	assetRepo port.FolderAssetRepository
	cache     port.Cache
	strg      port.Storage
}

// compile-time check: *mediaDeleterSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*mediaDeleterSrv)(nil)

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(repo port.MediaRepository, assetRepo port.FolderAssetRepository, cache port.Cache, strg port.Storage) port.MediaDeleter {
	return &mediaDeleterSrv{repo, assetRepo, cache, strg}
}

// DeleteMedia removes the item's blobs best-effort, then its rows. Blobs go
// first: a row delete failure after blobs are gone leaves broken links, which
// is the safer direction than orphaning live blobs forever. For folders every
// child asset is cascaded blob-then-row before the folder itself.
func (s *mediaDeleterSrv) DeleteMedia(ctx context.Context, id db.UUID) (*port.DeleteMediaOutput, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := &port.DeleteMediaOutput{}

	if media.Kind == model.MediaKindFolder {
		assets, err := s.assetRepo.ListByFolder(ctx, media.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range assets {
			out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, a.ObjectKey))
			if a.ThumbnailKey != nil {
				out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, *a.ThumbnailKey))
			}
			if err := s.assetRepo.Delete(ctx, a.ID); err != nil {
				return nil, err
			}
		}
	} else {
		for _, k := range media.ExtraKeys {
			out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, k))
		}
	}

	if media.CoverKey != nil {
		out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, *media.CoverKey))
	}

	if err := s.repo.Delete(ctx, media.ID); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteMediaDetails(ctx, media.ID); err != nil {
		log.Printf("failed deleting cache for media #%s: %v", media.ID, err)
	}

	return out, nil
}
