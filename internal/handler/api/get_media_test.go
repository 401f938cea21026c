package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/mock"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
	mediaUC "github.com/symposio/media-service-go/internal/usecase/media"
)

func TestGetMediaHandler(t *testing.T) {
	validID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	folder := &model.Media{ID: validID, Name: "Day 1", Kind: model.MediaKindFolder, ItemsCount: 1}
	child := &model.FolderAsset{ID: db.NewUUID(), FolderID: validID, Name: "keynote.png"}

	tests := []struct {
		name           string
		ctxID          *db.UUID
		svcOut         *port.GetMediaOutput
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing id",
			ctxID:          nil,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ID is required",
		},
		{
			name:           "not found",
			ctxID:          &validID,
			svcErr:         mediaUC.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Media not found",
		},
		{
			name:           "service error",
			ctxID:          &validID,
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Could not get media",
		},
		{
			name:           "happy path folder with children",
			ctxID:          &validID,
			svcOut:         &port.GetMediaOutput{Media: folder, Assets: []*model.FolderAsset{child}},
			wantStatus:     http.StatusOK,
			wantBodySubstr: "keynote.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockMediaGetter{Out: tc.svcOut, Err: tc.svcErr}
			h := GetMediaHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/medias/"+validID.String(), nil)
			if tc.ctxID != nil {
				req = req.WithContext(context.WithValue(req.Context(), IDKey, *tc.ctxID))
			}

			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q; want application/json", ct)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body = %q; want substring %q", rec.Body.String(), tc.wantBodySubstr)
			}
			if tc.wantStatus == http.StatusOK && mockSvc.ID != validID {
				t.Errorf("service got ID = %s; want %s", mockSvc.ID, validID)
			}
		})
	}
}
