package api

import (
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/port"
)

// DeleteFolderAssetHandler deletes one folder asset by ID and refreshes the
// parent folder's count.
func DeleteFolderAssetHandler(svc port.FolderAssetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.DeleteFolderAsset(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, "Failed to delete folder asset", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully deleted folder asset #%s", id)
	}
}
