package api

import (
	"fmt"
	"net/http"

	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
	"github.com/symposio/media-service-go/internal/validation"
)

type CreateMediaRequest struct {
	Name       string   `json:"name" validate:"required,max=120"`
	Subtitle   string   `json:"subtitle" validate:"max=255"`
	Content    string   `json:"content"`
	Kind       string   `json:"kind" validate:"required,mediakind"`
	Event      string   `json:"event" validate:"max=120"`
	Date       string   `json:"date" validate:"max=40"`
	ThemeColor string   `json:"theme_color" validate:"omitempty,hexcolor"`
	Keywords   []string `json:"keywords" validate:"max=5,dive,max=40"`
	Status     string   `json:"status" validate:"omitempty,mediastatus"`
}

// CreateMediaHandler creates a media item from a multipart form, with an
// optional cover image and attachments.
func CreateMediaHandler(svc port.MediaCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid multipart form: %w", err))
			return
		}

		req := CreateMediaRequest{
			Keywords: formValues(r, "keywords"),
		}
		req.Name, _ = formValue(r, "name")
		req.Subtitle, _ = formValue(r, "subtitle")
		req.Content, _ = formValue(r, "content")
		req.Kind, _ = formValue(r, "kind")
		req.Event, _ = formValue(r, "event")
		req.Date, _ = formValue(r, "date")
		req.ThemeColor, _ = formValue(r, "theme_color")
		req.Status, _ = formValue(r, "status")

		if ok := validateRequest(w, r, req); !ok {
			return
		}

		cover, err := firstFileFromForm(r, "cover")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read cover file", err)
			return
		}
		extras, err := filesFromForm(r, "extras")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read attachment files", err)
			return
		}

		in := port.CreateMediaInput{
			Name:        req.Name,
			Subtitle:    req.Subtitle,
			Content:     req.Content,
			Kind:        model.MediaKind(req.Kind),
			Event:       req.Event,
			DisplayDate: req.Date,
			ThemeColor:  req.ThemeColor,
			Keywords:    req.Keywords,
			Status:      model.MediaStatus(req.Status),
			Cover:       cover,
			Extras:      extras,
		}
		out, err := svc.CreateMedia(r.Context(), in)
		if err != nil {
			WriteUsecaseError(w, "Could not create media", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created media #%s", out.Media.ID)
	}
}

// validateRequest runs struct validation and writes the per-field error
// payload on failure.
func validateRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	errs := validation.ValidateStruct(req)
	if errs == nil {
		return true
	}
	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
		return false
	}

	// return the validation errors payload directly
	RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
	logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
	return false
}
