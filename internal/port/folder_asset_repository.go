package port

import (
	"context"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
)

// FolderAssetRepository defines persistence operations for folder children.
type FolderAssetRepository interface {
	Create(ctx context.Context, asset *model.FolderAsset) error
	GetByID(ctx context.Context, id db.UUID) (*model.FolderAsset, error)
	Delete(ctx context.Context, id db.UUID) error
	// ListByFolder returns the folder's children, newest upload first.
	ListByFolder(ctx context.Context, folderID db.UUID) ([]*model.FolderAsset, error)
	CountByFolder(ctx context.Context, folderID db.UUID) (int, error)
	SetThumbnail(ctx context.Context, id db.UUID, key, url string) error
}
