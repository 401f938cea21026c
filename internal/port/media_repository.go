package port

import (
	"context"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
)

// MediaRepository defines persistence operations for media items.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	Update(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id db.UUID) (*model.Media, error)
	Delete(ctx context.Context, id db.UUID) error
	GetFolderByEvent(ctx context.Context, event string) (*model.Media, error)
	ListLegacyImages(ctx context.Context) ([]*model.Media, error)
	// RefreshItemsCount recomputes items_count from a live COUNT over
	// folder_assets, in a single statement. Never incremented in place.
	RefreshItemsCount(ctx context.Context, folderID db.UUID) error
}
