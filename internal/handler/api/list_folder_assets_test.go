package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/mock"
	"github.com/symposio/media-service-go/internal/model"
	mediaUC "github.com/symposio/media-service-go/internal/usecase/media"
)

func TestListFolderAssetsHandler(t *testing.T) {
	folderID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	assets := []*model.FolderAsset{
		{ID: db.NewUUID(), FolderID: folderID, Name: "newest.png"},
		{ID: db.NewUUID(), FolderID: folderID, Name: "older.pdf"},
	}

	t.Run("missing id", func(t *testing.T) {
		h := ListFolderAssetsHandler(&mock.MockFolderAssetLister{})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/medias/abc/assets", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("folder not found", func(t *testing.T) {
		h := ListFolderAssetsHandler(&mock.MockFolderAssetLister{Err: mediaUC.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/medias/"+folderID.String()+"/assets", nil)
		req = req.WithContext(context.WithValue(req.Context(), IDKey, folderID))

		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("service error", func(t *testing.T) {
		h := ListFolderAssetsHandler(&mock.MockFolderAssetLister{Err: errors.New("boom")})
		req := httptest.NewRequest(http.MethodGet, "/medias/"+folderID.String()+"/assets", nil)
		req = req.WithContext(context.WithValue(req.Context(), IDKey, folderID))

		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
		}
	})

	t.Run("happy path", func(t *testing.T) {
		mockSvc := &mock.MockFolderAssetLister{Out: assets}
		h := ListFolderAssetsHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/medias/"+folderID.String()+"/assets", nil)
		req = req.WithContext(context.WithValue(req.Context(), IDKey, folderID))

		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if mockSvc.ID != folderID {
			t.Errorf("service got ID = %s; want %s", mockSvc.ID, folderID)
		}

		var got []*model.FolderAsset
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(got) != 2 || got[0].Name != "newest.png" || got[1].Name != "older.pdf" {
			t.Errorf("response = %+v; want assets in service order", got)
		}
	})
}
