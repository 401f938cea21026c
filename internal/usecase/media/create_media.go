package media

import (
	"context"
	"log"

	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

// MaxKeywords is enforced at input: keyword lists beyond this are rejected.
const MaxKeywords = 5

type mediaCreatorSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	opt     port.FileOptimiser
	genUUID port.UUIDGen
	limits  Limits
}

// compile-time check: *mediaCreatorSrv must satisfy port.MediaCreator
var _ port.MediaCreator = (*mediaCreatorSrv)(nil)

// NewMediaCreator constructs a MediaCreator implementation.
func NewMediaCreator(repo port.MediaRepository, strg port.Storage, opt port.FileOptimiser, genUUID port.UUIDGen, limits Limits) port.MediaCreator {
	return &mediaCreatorSrv{repo, strg, opt, genUUID, limits}
}

// CreateMedia uploads the cover and attachments, then persists the row.
// Attachment failures are per-file and do not abort the item; a cover upload
// failure or persist failure aborts the whole operation.
func (s *mediaCreatorSrv) CreateMedia(ctx context.Context, in port.CreateMediaInput) (*port.CreateMediaOutput, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	media := &model.Media{
		ID:          s.genUUID(),
		Name:        in.Name,
		Subtitle:    in.Subtitle,
		Content:     in.Content,
		Kind:        in.Kind,
		Event:       in.Event,
		DisplayDate: in.DisplayDate,
		ThemeColor:  in.ThemeColor,
		Keywords:    in.Keywords,
		Status:      in.Status,
	}
	if media.Status == "" {
		media.Status = model.MediaStatusDraft
	}

	out := &port.CreateMediaOutput{}

	if in.Cover != nil {
		res := uploadOne(ctx, s.strg, s.opt, s.genUUID, *in.Cover, CategoryImages)
		if res.err != nil {
			return nil, res.err
		}
		media.CoverKey = &res.objectKey
		media.CoverURL = &res.url
	}

	if len(in.Extras) > 0 {
		results := uploadMany(ctx, s.strg, s.opt, s.genUUID, s.limits, in.Extras)
		for i, f := range in.Extras {
			if results[i].err != nil {
				out.Errors = append(out.Errors, port.UploadError{Index: i, Name: f.Name, Reason: results[i].err.Error()})
				continue
			}
			media.ExtraKeys = append(media.ExtraKeys, results[i].objectKey)
		}
	}

	if err := s.repo.Create(ctx, media); err != nil {
		// every blob written above is now orphaned; log the keys for cleanup
		if media.CoverKey != nil {
			log.Printf("⚠️  orphaned blob %q: row persist failed: %v", *media.CoverKey, err)
		}
		for _, k := range media.ExtraKeys {
			log.Printf("⚠️  orphaned blob %q: row persist failed: %v", k, err)
		}
		return nil, err
	}

	out.Media = media
	return out, nil
}

func (s *mediaCreatorSrv) validateInput(in port.CreateMediaInput) error {
	var reasons []string
	if !in.Kind.Valid() {
		reasons = append(reasons, "kind must be one of image, video, folder")
	}
	if len(in.Keywords) > MaxKeywords {
		reasons = append(reasons, "too many keywords (max 5)")
	}
	if in.Kind == model.MediaKindFolder && len(in.Extras) > 0 {
		reasons = append(reasons, "folders hold assets, not attachments; upload files into the folder instead")
	}
	if in.Cover != nil {
		if !IsImage(in.Cover.ContentType) {
			reasons = append(reasons, "cover must be an image")
		} else if in.Cover.SizeBytes > s.limits.MaxFileSizeBytes {
			reasons = append(reasons, "cover too large")
		}
	}
	if len(in.Extras) > 0 {
		if err := validateBatch(in.Extras, s.limits); err != nil {
			return err
		}
	}
	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}
