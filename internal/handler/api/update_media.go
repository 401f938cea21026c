package api

import (
	"fmt"
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type UpdateMediaRequest struct {
	Name       *string  `json:"name" validate:"omitempty,max=120"`
	Subtitle   *string  `json:"subtitle" validate:"omitempty,max=255"`
	Content    *string  `json:"content"`
	Event      *string  `json:"event" validate:"omitempty,max=120"`
	Date       *string  `json:"date" validate:"omitempty,max=40"`
	ThemeColor *string  `json:"theme_color" validate:"omitempty,hexcolor"`
	Keywords   []string `json:"keywords" validate:"max=5,dive,max=40"`
	Status     *string  `json:"status" validate:"omitempty,mediastatus"`
}

// UpdateMediaHandler mutates a media item; a "cover" file in the form
// replaces the current cover.
func UpdateMediaHandler(svc port.MediaUpdater) http.HandlerFunc {
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

		req := UpdateMediaRequest{
			Name:       optionalValue(r, "name"),
			Subtitle:   optionalValue(r, "subtitle"),
			Content:    optionalValue(r, "content"),
			Event:      optionalValue(r, "event"),
			Date:       optionalValue(r, "date"),
			ThemeColor: optionalValue(r, "theme_color"),
			Keywords:   formValues(r, "keywords"),
			Status:     optionalValue(r, "status"),
		}
		if ok := validateRequest(w, r, req); !ok {
			return
		}

		newCover, err := firstFileFromForm(r, "cover")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read cover file", err)
			return
		}

		in := port.UpdateMediaInput{
			ID:          id,
			Name:        req.Name,
			Subtitle:    req.Subtitle,
			Content:     req.Content,
			Event:       req.Event,
			DisplayDate: req.Date,
			ThemeColor:  req.ThemeColor,
			NewCover:    newCover,
		}
		if len(formValues(r, "keywords")) > 0 {
			in.Keywords = &req.Keywords
		}
		if req.Status != nil {
			status := model.MediaStatus(*req.Status)
			in.Status = &status
		}

		out, err := svc.UpdateMedia(r.Context(), in)
		if err != nil {
			WriteUsecaseError(w, "Could not update media", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully updated media #%s", id)
	}
}

func optionalValue(r *http.Request, field string) *string {
	if v, ok := formValue(r, field); ok {
		return &v
	}
	return nil
}
