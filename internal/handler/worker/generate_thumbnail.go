package worker

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
	"github.com/symposio/media-service-go/internal/task"
)

// GenerateThumbnailHandler handles a generate-thumbnail task.
// It converts the incoming task payload to the input expected by
// the thumbnail service and delegates the call.
func GenerateThumbnailHandler(ctx context.Context, p task.GenerateThumbnailPayload, svc port.ThumbnailGenerator) error {
	id, err := uuid.Parse(p.AssetID)
	if err != nil {
		log.Printf("❌  Invalid folder asset ID %q: %v", p.AssetID, err)
		return err
	}

	if err := svc.GenerateThumbnail(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to generate thumbnail for folder asset #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully generated thumbnail for folder asset #%s", id)
	return nil
}
