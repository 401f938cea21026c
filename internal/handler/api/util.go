package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/usecase/media"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// WriteUsecaseError maps the core error taxonomy onto HTTP statuses. The core
// itself never sets status codes.
func WriteUsecaseError(w http.ResponseWriter, msg string, err error) {
	var ve *media.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteError(w, http.StatusBadRequest, ve.Error(), nil)
	case errors.Is(err, media.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Media not found", nil)
	case errors.Is(err, media.ErrStoreUnavailable), errors.Is(err, media.ErrBucketNotFound):
		WriteError(w, http.StatusServiceUnavailable, msg, err)
	default:
		WriteError(w, http.StatusInternalServerError, msg, err)
	}
}
