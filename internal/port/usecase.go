package port

import (
	"context"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
)

// UUIDGen produces identifiers for new rows and blob keys.
type UUIDGen func() db.UUID

// FileUpload is one incoming file, already buffered by the HTTP layer.
type FileUpload struct {
	Name        string
	ContentType string
	SizeBytes   int64
	Data        []byte
}

// UploadError identifies one failed file of a batch by its input position.
type UploadError struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// MediaCreator persists a new media item along with its cover and attachments.
type MediaCreator interface {
	CreateMedia(ctx context.Context, in CreateMediaInput) (*CreateMediaOutput, error)
}
type CreateMediaInput struct {
	Name        string
	Subtitle    string
	Content     string
	Kind        model.MediaKind
	Event       string
	DisplayDate string
	ThemeColor  string
	Keywords    []string
	Status      model.MediaStatus
	Cover       *FileUpload
	Extras      []FileUpload
}
type CreateMediaOutput struct {
	Media    *model.Media  `json:"media"`
	Errors   []UploadError `json:"errors"`
	Warnings []string      `json:"warnings"`
}

// MediaUpdater mutates an existing media item; a new cover fully supersedes
// the previous one.
type MediaUpdater interface {
	UpdateMedia(ctx context.Context, in UpdateMediaInput) (*UpdateMediaOutput, error)
}
type UpdateMediaInput struct {
	ID          db.UUID
	Name        *string
	Subtitle    *string
	Content     *string
	Event       *string
	DisplayDate *string
	ThemeColor  *string
	Keywords    *[]string
	Status      *model.MediaStatus
	NewCover    *FileUpload
}
type UpdateMediaOutput struct {
	Media    *model.Media `json:"media"`
	Warnings []string     `json:"warnings"`
}

// MediaDeleter deletes a media item, its blobs, and (for folders) its children.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id db.UUID) (*DeleteMediaOutput, error)
}
type DeleteMediaOutput struct {
	Warnings []string `json:"warnings"`
}

// MediaGetter retrieves one media item, with children when it is a folder.
type MediaGetter interface {
	GetMedia(ctx context.Context, id db.UUID) (*GetMediaOutput, error)
}
type GetMediaOutput struct {
	Media  *model.Media         `json:"media"`
	Assets []*model.FolderAsset `json:"assets,omitempty"`
}

// FolderAssetUploader turns a batch of files into folder children, with
// independent success/failure per file.
type FolderAssetUploader interface {
	UploadFolderAssets(ctx context.Context, in UploadFolderAssetsInput) (*UploadFolderAssetsOutput, error)
}
type UploadFolderAssetsInput struct {
	FolderID db.UUID
	Files    []FileUpload
}
type UploadFolderAssetsOutput struct {
	Created  []*model.FolderAsset `json:"created"`
	Errors   []UploadError        `json:"errors"`
	Warnings []string             `json:"warnings"`
}

// FolderAssetDeleter deletes one folder child and refreshes the parent count.
type FolderAssetDeleter interface {
	DeleteFolderAsset(ctx context.Context, id db.UUID) (*DeleteFolderAssetOutput, error)
}
type DeleteFolderAssetOutput struct {
	Warnings []string `json:"warnings"`
}

// FolderAssetLister lists a folder's children, newest upload first.
type FolderAssetLister interface {
	ListFolderAssets(ctx context.Context, folderID db.UUID) ([]*model.FolderAsset, error)
}

// Recounter refreshes a folder's cached items_count from a live count.
type Recounter interface {
	Recount(ctx context.Context, folderID db.UUID) error
}

// LegacyMigrator re-homes legacy flat image items under folders matched by event.
type LegacyMigrator interface {
	MigrateLegacy(ctx context.Context) (*MigrateLegacyOutput, error)
}
type UnmigratedItem struct {
	ID     db.UUID `json:"id"`
	Name   string  `json:"name"`
	Event  string  `json:"event"`
	Reason string  `json:"reason"`
}
type MigrateLegacyOutput struct {
	Migrated         int              `json:"migrated"`
	Unmigrated       []UnmigratedItem `json:"unmigrated"`
	FoldersRecounted int              `json:"folders_recounted"`
}

// ThumbnailGenerator produces and persists a thumbnail for a folder asset.
type ThumbnailGenerator interface {
	GenerateThumbnail(ctx context.Context, assetID db.UUID) error
}
