package model

import (
	"time"

	"github.com/symposio/media-service-go/internal/db"
)

type MediaKind string

const (
	MediaKindImage  MediaKind = "image"
	MediaKindVideo  MediaKind = "video"
	MediaKindFolder MediaKind = "folder"
)

func (k MediaKind) Valid() bool {
	return k == MediaKindImage || k == MediaKindVideo || k == MediaKindFolder
}

type MediaStatus string

const (
	MediaStatusDraft     MediaStatus = "draft"
	MediaStatusPublished MediaStatus = "published"
)

// Media is a catalogue row representing an image, a video or a folder.
// Kind is immutable after creation: changing it would invalidate the blob
// semantics of the keys the row references.
type Media struct {
	ID          db.UUID     `json:"id"`
	Name        string      `json:"name"`
	Subtitle    string      `json:"subtitle"`
	Content     string      `json:"content"`
	Kind        MediaKind   `json:"kind"`
	Event       string      `json:"event"`
	DisplayDate string      `json:"date"`
	CoverKey    *string     `json:"cover_key"`
	CoverURL    *string     `json:"cover_url"`
	ThemeColor  string      `json:"theme_color"`
	Keywords    StringList  `json:"keywords"`
	ExtraKeys   StringList  `json:"extra_keys"`
	Status      MediaStatus `json:"status"`
	ItemsCount  int         `json:"items_count"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
