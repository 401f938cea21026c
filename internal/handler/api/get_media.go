package api

import (
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/port"
)

// GetMediaHandler returns a media item by ID, with children for folders.
func GetMediaHandler(svc port.MediaGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.GetMedia(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, "Could not get media", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Debugf(r.Context(), "served media #%s", id)
	}
}
