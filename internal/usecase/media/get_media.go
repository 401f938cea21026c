package media

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

// mediaDetailsTTL bounds how stale a cached detail payload can get; every
// mutation of the item invalidates the entry anyway.
const mediaDetailsTTL = 10 * time.Minute

type mediaGetterSrv struct {
	repo      port.MediaRepository
	assetRepo port.FolderAssetRepository
	cache     port.Cache
}

// compile-time check: *mediaGetterSrv must satisfy port.MediaGetter
var _ port.MediaGetter = (*mediaGetterSrv)(nil)

// NewMediaGetter constructs a MediaGetter implementation.
func NewMediaGetter(repo port.MediaRepository, assetRepo port.FolderAssetRepository, cache port.Cache) port.MediaGetter {
	return &mediaGetterSrv{repo, assetRepo, cache}
}

// GetMedia returns the item and, for folders, its children newest-first.
func (s *mediaGetterSrv) GetMedia(ctx context.Context, id db.UUID) (*port.GetMediaOutput, error) {
	if data, err := s.cache.GetMediaDetails(ctx, id); err != nil {
		log.Printf("cache lookup failed for media #%s: %v", id, err)
	} else if data != nil {
		var out port.GetMediaOutput
		if err := json.Unmarshal(data, &out); err == nil {
			return &out, nil
		}
		log.Printf("discarding corrupt cache entry for media #%s", id)
	}

	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := &port.GetMediaOutput{Media: media}
	if media.Kind == model.MediaKindFolder {
		assets, err := s.assetRepo.ListByFolder(ctx, media.ID)
		if err != nil {
			return nil, err
		}
		out.Assets = assets
	}

	if data, err := json.Marshal(out); err == nil {
		s.cache.SetMediaDetails(ctx, id, data, mediaDetailsTTL)
	}

	return out, nil
}
