package media

import (
	"context"
	"fmt"
	"log"

	"github.com/symposio/media-service-go/internal/port"
)

// removeFileBestEffort removes a blob and converts any failure into a warning
// string instead of an error: store unavailability must never block a catalog
// mutation. An empty return means the removal went through.
func removeFileBestEffort(ctx context.Context, strg port.Storage, fileKey string) string {
	if fileKey == "" {
		return ""
	}
	if err := strg.RemoveFile(ctx, fileKey); err != nil {
		w := fmt.Sprintf("failed to remove blob %q: %v", fileKey, err)
		log.Printf("⚠️  %s", w)
		return w
	}
	return ""
}

func appendWarning(warnings []string, w string) []string {
	if w == "" {
		return warnings
	}
	return append(warnings, w)
}
