package api

import (
	"fmt"
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/port"
)

// UploadFolderAssetsHandler uploads a batch of files into a folder. The
// response lists created assets and per-file failures side by side; callers
// must inspect it rather than rely on the status code alone.
func UploadFolderAssetsHandler(svc port.FolderAssetUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid multipart form: %w", err))
			return
		}

		files, err := filesFromForm(r, "files")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read uploaded files", err)
			return
		}

		out, err := svc.UploadFolderAssets(r.Context(), port.UploadFolderAssetsInput{FolderID: id, Files: files})
		if err != nil {
			WriteUsecaseError(w, "Could not upload folder assets", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Uploaded %d/%d assets into folder #%s", len(out.Created), len(files), id)
	}
}
