package api

import (
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/port"
)

// DeleteMediaHandler deletes a media item by ID, cascading over folder
// children. Blob-removal warnings travel back in the response body.
func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.DeleteMedia(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, "Failed to delete media", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully deleted media #%s", id)
	}
}
