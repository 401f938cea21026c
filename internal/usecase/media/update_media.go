package media

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/symposio/media-service-go/internal/port"
)

type mediaUpdaterSrv struct {
	repo    port.MediaRepository
	cache   port.Cache
	strg    port.Storage
	opt     port.FileOptimiser
	genUUID port.UUIDGen
	limits  Limits
}

// compile-time check: *mediaUpdaterSrv must satisfy port.MediaUpdater
var _ port.MediaUpdater = (*mediaUpdaterSrv)(nil)

// NewMediaUpdater constructs a MediaUpdater implementation.
func NewMediaUpdater(repo port.MediaRepository, cache port.Cache, strg port.Storage, opt port.FileOptimiser, genUUID port.UUIDGen, limits Limits) port.MediaUpdater {
	return &mediaUpdaterSrv{repo, cache, strg, opt, genUUID, limits}
}

// UpdateMedia mutates the item's metadata and, when a new cover is given,
// replaces the old one: the previous blob is removed best-effort first, then
// the new one is uploaded and the row committed. The old reference is
// discarded unconditionally once the new write commits.
func (s *mediaUpdaterSrv) UpdateMedia(ctx context.Context, in port.UpdateMediaInput) (*port.UpdateMediaOutput, error) {
	media, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Keywords != nil && len(*in.Keywords) > MaxKeywords {
		return nil, newValidationError("too many keywords (max 5)")
	}
	if in.NewCover != nil {
		if !IsImage(in.NewCover.ContentType) {
			return nil, newValidationError("cover must be an image")
		}
		if in.NewCover.SizeBytes > s.limits.MaxFileSizeBytes {
			return nil, newValidationError("cover too large: %d bytes (max %d bytes)", in.NewCover.SizeBytes, s.limits.MaxFileSizeBytes)
		}
	}

	if in.Name != nil {
		media.Name = *in.Name
	}
	if in.Subtitle != nil {
		media.Subtitle = *in.Subtitle
	}
	if in.Content != nil {
		media.Content = *in.Content
	}
	if in.Event != nil {
		media.Event = *in.Event
	}
	if in.DisplayDate != nil {
		media.DisplayDate = *in.DisplayDate
	}
	if in.ThemeColor != nil {
		media.ThemeColor = *in.ThemeColor
	}
	if in.Keywords != nil {
		media.Keywords = *in.Keywords
	}
	if in.Status != nil {
		media.Status = *in.Status
	}

	out := &port.UpdateMediaOutput{}

	if in.NewCover != nil {
		if media.CoverKey != nil {
			out.Warnings = appendWarning(out.Warnings, removeFileBestEffort(ctx, s.strg, *media.CoverKey))
		}
		res := uploadOne(ctx, s.strg, s.opt, s.genUUID, *in.NewCover, CategoryImages)
		if res.err != nil {
			return nil, res.err
		}
		media.CoverKey = &res.objectKey
		media.CoverURL = &res.url
	}

	if err := s.repo.Update(ctx, media); err != nil {
		if in.NewCover != nil && media.CoverKey != nil {
			log.Printf("⚠️  orphaned blob %q: row persist failed: %v", *media.CoverKey, err)
		}
		return nil, err
	}

	if err := s.cache.DeleteMediaDetails(ctx, media.ID); err != nil {
		log.Printf("failed deleting cache for media #%s: %v", media.ID, err)
	}

	out.Media = media
	return out, nil
}
