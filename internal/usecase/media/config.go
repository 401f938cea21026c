package media

// Limits are the batch upload constraints, injected from configuration.
type Limits struct {
	MaxFileSizeBytes  int64
	MaxBatchCount     int
	MaxBatchSizeBytes int64
}

// DefaultLimits mirror the documented product constraints: 10 MiB per file,
// 100 files per batch, 500 MiB per batch.
func DefaultLimits() Limits {
	return Limits{
		MaxFileSizeBytes:  10 * 1024 * 1024,
		MaxBatchCount:     100,
		MaxBatchSizeBytes: 500 * 1024 * 1024,
	}
}

// Logical storage folders, by declared MIME type.
const (
	CategoryImages    = "images"
	CategoryDocuments = "documents"
	CategoryVideos    = "videos"
)

var mimeCategories = map[string]string{
	"image/png":       CategoryImages,
	"image/jpeg":      CategoryImages,
	"image/webp":      CategoryImages,
	"image/gif":       CategoryImages,
	"application/pdf": CategoryDocuments,
	"video/mp4":       CategoryVideos,
	"video/webm":      CategoryVideos,
	"video/quicktime": CategoryVideos,
}

// CategoryForMime routes a declared MIME type to its logical storage folder.
// The second return value is false for unsupported types.
func CategoryForMime(mimeType string) (string, bool) {
	c, ok := mimeCategories[mimeType]
	return c, ok
}

func IsImage(mimeType string) bool {
	return mimeCategories[mimeType] == CategoryImages
}

func IsPdf(mimeType string) bool {
	return mimeType == "application/pdf"
}
