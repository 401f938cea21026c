package port

import (
	"context"
	"io"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Storage defines object store operations against the configured bucket.
// RemoveFile is idempotent: removing a key that does not exist succeeds.
type Storage interface {
	InitBucket() error
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, fileKey string) error
	StatFile(ctx context.Context, fileKey string) (FileInfo, error)
	GetFile(ctx context.Context, fileKey string) (io.ReadSeekCloser, error)
	FileExists(ctx context.Context, fileKey string) (bool, error)
	PublicURL(fileKey string) string
}
