package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type folderAssetUploaderSrv struct {
	repo       port.MediaRepository
	assetRepo  port.FolderAssetRepository
	strg       port.Storage
	opt        port.FileOptimiser
	dispatcher port.TaskDispatcher
	recounter  port.Recounter
	cache      port.Cache
	genUUID    port.UUIDGen
	limits     Limits
}

// compile-time check: *folderAssetUploaderSrv must satisfy port.FolderAssetUploader
var _ port.FolderAssetUploader = (*folderAssetUploaderSrv)(nil)

// NewFolderAssetUploader constructs a FolderAssetUploader implementation.
func NewFolderAssetUploader(
	repo port.MediaRepository,
	assetRepo port.FolderAssetRepository,
	strg port.Storage,
	opt port.FileOptimiser,
	dispatcher port.TaskDispatcher,
	recounter port.Recounter,
	cache port.Cache,
	genUUID port.UUIDGen,
	limits Limits,
) port.FolderAssetUploader {
	return &folderAssetUploaderSrv{repo, assetRepo, strg, opt, dispatcher, recounter, cache, genUUID, limits}
}

// UploadFolderAssets uploads a batch of files into a folder, with independent
// success/failure per file. Earlier successes are never rolled back; the
// result lists both sides and keeps input ordering.
func (s *folderAssetUploaderSrv) UploadFolderAssets(ctx context.Context, in port.UploadFolderAssetsInput) (*port.UploadFolderAssetsOutput, error) {
	folder, err := s.repo.GetByID(ctx, in.FolderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if folder.Kind != model.MediaKindFolder {
		return nil, newValidationError("media #%s is a %s, not a folder", folder.ID, folder.Kind)
	}

	if err := validateBatch(in.Files, s.limits); err != nil {
		return nil, err
	}

	results := uploadMany(ctx, s.strg, s.opt, s.genUUID, s.limits, in.Files)

	out := &port.UploadFolderAssetsOutput{}
	for i, f := range in.Files {
		res := results[i]
		if res.err != nil {
			out.Errors = append(out.Errors, port.UploadError{Index: i, Name: f.Name, Reason: res.err.Error()})
			continue
		}

		asset := &model.FolderAsset{
			ID:          s.genUUID(),
			FolderID:    folder.ID,
			Name:        f.Name,
			Description: res.description,
			ObjectKey:   res.objectKey,
			URL:         res.url,
			SizeBytes:   res.sizeBytes,
			MimeType:    f.ContentType,
		}
		if err := s.assetRepo.Create(ctx, asset); err != nil {
			// the blob is already written: a known, bounded inconsistency.
			// Log the key so an offline sweep can reclaim it.
			w := fmt.Sprintf("orphaned blob %q: row persist failed: %v", res.objectKey, err)
			log.Printf("⚠️  %s", w)
			out.Warnings = append(out.Warnings, w)
			out.Errors = append(out.Errors, port.UploadError{Index: i, Name: f.Name, Reason: err.Error()})
			continue
		}
		out.Created = append(out.Created, asset)
	}

	if len(out.Created) > 0 {
		// one recount for the whole batch, from a live count
		if err := s.recounter.Recount(ctx, folder.ID); err != nil {
			out.Warnings = appendWarning(out.Warnings, fmt.Sprintf("failed to refresh items_count for folder #%s: %v", folder.ID, err))
		}
		if err := s.cache.DeleteMediaDetails(ctx, folder.ID); err != nil {
			log.Printf("failed deleting cache for folder #%s: %v", folder.ID, err)
		}
		for _, a := range out.Created {
			if !IsImage(a.MimeType) {
				continue
			}
			if err := s.dispatcher.EnqueueGenerateThumbnail(ctx, a.ID); err != nil {
				log.Printf("failed to enqueue thumbnail task for asset #%s: %v", a.ID, err)
			}
		}
	}

	return out, nil
}
