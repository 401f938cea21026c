package api

import (
	"net/http"

	"github.com/symposio/media-service-go/internal/port"
)

// ListFolderAssetsHandler lists a folder's children, newest upload first.
func ListFolderAssetsHandler(svc port.FolderAssetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		assets, err := svc.ListFolderAssets(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, "Could not list folder assets", err)
			return
		}

		RespondJSON(w, http.StatusOK, assets)
	}
}
