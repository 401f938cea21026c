package model

import (
	"time"

	"github.com/symposio/media-service-go/internal/db"
)

// FolderAsset is a child record belonging to a folder-kind Media.
// FolderID always references an existing folder row; deleting the folder
// cascades over its assets.
type FolderAsset struct {
	ID           db.UUID    `json:"id"`
	FolderID     db.UUID    `json:"folder_id"`
	Name         string     `json:"name"`
	Subtitle     string     `json:"subtitle"`
	Description  string     `json:"description"`
	ObjectKey    string     `json:"object_key"`
	URL          string     `json:"url"`
	ThumbnailKey *string    `json:"thumbnail_key"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	SizeBytes    int64      `json:"size_bytes"`
	MimeType     string     `json:"mime_type"`
	Keywords     StringList `json:"keywords"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}
