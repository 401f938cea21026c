package media

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"golang.org/x/net/context"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type thumbnailGeneratorSrv struct {
	assetRepo port.FolderAssetRepository
	opt       port.FileOptimiser
	strg      port.Storage
	cache     port.Cache
	maxWidth  int
}

// compile-time check: *thumbnailGeneratorSrv must satisfy port.ThumbnailGenerator
var _ port.ThumbnailGenerator = (*thumbnailGeneratorSrv)(nil)

// NewThumbnailGenerator constructs a ThumbnailGenerator implementation.
func NewThumbnailGenerator(assetRepo port.FolderAssetRepository, opt port.FileOptimiser, strg port.Storage, cache port.Cache, maxWidth int) port.ThumbnailGenerator {
	return &thumbnailGeneratorSrv{assetRepo, opt, strg, cache, maxWidth}
}

// GenerateThumbnail scales the asset's image down, encodes it as WebP, stores
// the thumbnail blob and persists its key and URL on the asset row.
func (s *thumbnailGeneratorSrv) GenerateThumbnail(ctx context.Context, assetID db.UUID) error {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if !IsImage(asset.MimeType) {
		return fmt.Errorf("asset #%s is not an image", asset.ID)
	}

	file, err := s.strg.GetFile(ctx, asset.ObjectKey)
	if err != nil {
		return err
	}
	defer func(file io.ReadCloser) {
		if err := file.Close(); err != nil {
			log.Printf("failed to close reader for %q", asset.ObjectKey)
		}
	}(file)

	data, err := s.opt.Thumbnail(asset.MimeType, file, s.maxWidth)
	if err != nil {
		return fmt.Errorf("failed to generate thumbnail for asset #%s: %w", asset.ID, err)
	}

	key := thumbnailKey(asset.ObjectKey, s.maxWidth)
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(data), int64(len(data)), map[string]string{
		"Content-Type": "image/webp",
	}); err != nil {
		return err
	}

	if err := s.assetRepo.SetThumbnail(ctx, asset.ID, key, s.strg.PublicURL(key)); err != nil {
		return fmt.Errorf("failed persisting thumbnail for asset #%s: %w", asset.ID, err)
	}

	if err := s.cache.DeleteMediaDetails(ctx, asset.FolderID); err != nil {
		log.Printf("failed deleting cache for folder #%s: %v", asset.FolderID, err)
	}

	return nil
}

func thumbnailKey(objectKey string, width int) string {
	dir, file := path.Split(objectKey)
	name := strings.TrimSuffix(file, path.Ext(file))
	return path.Join(dir, "thumbnails", fmt.Sprintf("%s_%d.webp", name, width))
}
