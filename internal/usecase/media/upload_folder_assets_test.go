package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/mock"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

func testFolder() *model.Media {
	return &model.Media{ID: db.NewUUID(), Name: "Opening Day", Kind: model.MediaKindFolder}
}

func pngFile(name string, size int64) port.FileUpload {
	return port.FileUpload{Name: name, ContentType: "image/png", SizeBytes: size, Data: []byte("png-bytes")}
}

type uploaderMocks struct {
	repo       *mock.MockMediaRepo
	assetRepo  *mock.MockFolderAssetRepo
	strg       *mock.Storage
	opt        *mock.MockFileOptimiser
	dispatcher *mock.MockDispatcher
	recounter  *mock.MockRecounter
	cache      *mock.Cache
}

func newUploader(folder *model.Media, limits Limits) (port.FolderAssetUploader, *uploaderMocks) {
	m := &uploaderMocks{
		repo:       &mock.MockMediaRepo{MediaRecord: folder},
		assetRepo:  &mock.MockFolderAssetRepo{},
		strg:       &mock.Storage{},
		opt:        &mock.MockFileOptimiser{},
		dispatcher: &mock.MockDispatcher{},
		recounter:  &mock.MockRecounter{},
		cache:      &mock.Cache{},
	}
	svc := NewFolderAssetUploader(m.repo, m.assetRepo, m.strg, m.opt, m.dispatcher, m.recounter, m.cache, db.NewUUID, limits)
	return svc, m
}

func TestUploadFolderAssets_Success(t *testing.T) {
	folder := testFolder()
	svc, m := newUploader(folder, DefaultLimits())

	files := []port.FileUpload{
		pngFile("a.png", 100),
		{Name: "talk.pdf", ContentType: "application/pdf", SizeBytes: 200, Data: []byte("%PDF")},
		{Name: "clip.mp4", ContentType: "video/mp4", SizeBytes: 300, Data: []byte("mp4")},
	}

	out, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Created) != 3 {
		t.Fatalf("created = %d; want 3", len(out.Created))
	}
	if len(out.Errors) != 0 {
		t.Fatalf("errors = %v; want none", out.Errors)
	}

	// results keep input ordering
	for i, want := range []string{"a.png", "talk.pdf", "clip.mp4"} {
		if out.Created[i].Name != want {
			t.Errorf("created[%d].Name = %q; want %q", i, out.Created[i].Name, want)
		}
	}

	// blob keys are routed by category
	if !strings.HasPrefix(out.Created[0].ObjectKey, "images/") {
		t.Errorf("image key = %q; want images/ prefix", out.Created[0].ObjectKey)
	}
	if !strings.HasPrefix(out.Created[1].ObjectKey, "documents/") {
		t.Errorf("pdf key = %q; want documents/ prefix", out.Created[1].ObjectKey)
	}
	if !strings.HasPrefix(out.Created[2].ObjectKey, "videos/") {
		t.Errorf("video key = %q; want videos/ prefix", out.Created[2].ObjectKey)
	}

	if len(m.strg.SavedKeys) != 3 {
		t.Errorf("SaveFile calls = %d; want 3", len(m.strg.SavedKeys))
	}
	if !m.opt.OptimiseCalled {
		t.Error("pdf should have passed through the optimiser")
	}
	if m.recounter.Called != 1 {
		t.Errorf("recount calls = %d; want exactly 1 per batch", m.recounter.Called)
	}
	// one thumbnail task per created image
	if len(m.dispatcher.ThumbnailIDs) != 1 {
		t.Errorf("thumbnail tasks = %d; want 1", len(m.dispatcher.ThumbnailIDs))
	}
	if len(m.cache.DeletedIDs) != 1 || m.cache.DeletedIDs[0] != folder.ID {
		t.Errorf("cache invalidation = %v; want [%s]", m.cache.DeletedIDs, folder.ID)
	}
}

func TestUploadFolderAssets_FolderNotFound(t *testing.T) {
	svc, m := newUploader(nil, DefaultLimits())

	_, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: db.NewUUID(), Files: []port.FileUpload{pngFile("a.png", 1)}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v; want ErrNotFound", err)
	}
	if len(m.strg.SavedKeys) != 0 {
		t.Error("no blob should be written for a missing folder")
	}
}

func TestUploadFolderAssets_NotAFolder(t *testing.T) {
	item := &model.Media{ID: db.NewUUID(), Kind: model.MediaKindImage}
	svc, _ := newUploader(item, DefaultLimits())

	_, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: item.ID, Files: []port.FileUpload{pngFile("a.png", 1)}})
	if !IsValidationError(err) {
		t.Fatalf("error = %v; want ValidationError", err)
	}
}

func TestUploadFolderAssets_TooManyFilesRejectsWholeBatch(t *testing.T) {
	folder := testFolder()
	svc, m := newUploader(folder, DefaultLimits())

	files := make([]port.FileUpload, 101)
	for i := range files {
		files[i] = pngFile(fmt.Sprintf("f%03d.png", i), 10)
	}

	_, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if !IsValidationError(err) {
		t.Fatalf("error = %v; want ValidationError", err)
	}
	// wholesale rejection happens before any I/O
	if len(m.strg.SavedKeys) != 0 {
		t.Errorf("SaveFile calls = %d; want 0", len(m.strg.SavedKeys))
	}
	if len(m.assetRepo.Created) != 0 {
		t.Errorf("rows created = %d; want 0", len(m.assetRepo.Created))
	}
	if m.recounter.Called != 0 {
		t.Errorf("recount calls = %d; want 0", m.recounter.Called)
	}
}

func TestUploadFolderAssets_BatchTooLargeRejectsWholeBatch(t *testing.T) {
	folder := testFolder()
	limits := DefaultLimits()
	svc, m := newUploader(folder, limits)

	// 60 files under the per-file cap but over the 500 MiB aggregate
	files := make([]port.FileUpload, 60)
	for i := range files {
		files[i] = pngFile(fmt.Sprintf("f%02d.png", i), 9*1024*1024)
	}

	_, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if !IsValidationError(err) {
		t.Fatalf("error = %v; want ValidationError", err)
	}
	if len(m.strg.SavedKeys) != 0 {
		t.Errorf("SaveFile calls = %d; want 0", len(m.strg.SavedKeys))
	}
}

func TestUploadFolderAssets_OversizedFilesFailIndividually(t *testing.T) {
	folder := testFolder()
	limits := Limits{MaxFileSizeBytes: 1000, MaxBatchCount: 100, MaxBatchSizeBytes: 1 << 30}
	svc, m := newUploader(folder, limits)

	// K = 2 oversized out of N = 5
	files := []port.FileUpload{
		pngFile("ok1.png", 500),
		pngFile("big1.png", 2000),
		pngFile("ok2.png", 600),
		pngFile("big2.png", 3000),
		pngFile("ok3.png", 700),
	}

	out, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Created) != 3 {
		t.Errorf("created = %d; want 3", len(out.Created))
	}
	if len(out.Errors) != 2 {
		t.Fatalf("errors = %d; want exactly 2", len(out.Errors))
	}
	// failures identify the offending files by input position
	if out.Errors[0].Index != 1 || out.Errors[0].Name != "big1.png" {
		t.Errorf("errors[0] = %+v; want index 1, big1.png", out.Errors[0])
	}
	if out.Errors[1].Index != 3 || out.Errors[1].Name != "big2.png" {
		t.Errorf("errors[1] = %+v; want index 3, big2.png", out.Errors[1])
	}
	if len(m.strg.SavedKeys) != 3 {
		t.Errorf("SaveFile calls = %d; want 3", len(m.strg.SavedKeys))
	}
	if m.recounter.Called != 1 {
		t.Errorf("recount calls = %d; want 1", m.recounter.Called)
	}
}

func TestUploadFolderAssets_UnsupportedMimeFailsThatFile(t *testing.T) {
	folder := testFolder()
	svc, _ := newUploader(folder, DefaultLimits())

	files := []port.FileUpload{
		pngFile("ok.png", 10),
		{Name: "script.sh", ContentType: "application/x-sh", SizeBytes: 10, Data: []byte("#!")},
	}

	out, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Created) != 1 || out.Created[0].Name != "ok.png" {
		t.Errorf("created = %+v; want just ok.png", out.Created)
	}
	if len(out.Errors) != 1 || !strings.Contains(out.Errors[0].Reason, "unsupported mime-type") {
		t.Errorf("errors = %+v; want one unsupported mime-type failure", out.Errors)
	}
}

func TestUploadFolderAssets_PersistFailureOrphansBlob(t *testing.T) {
	folder := testFolder()
	svc, m := newUploader(folder, DefaultLimits())
	m.assetRepo.CreateErr = errors.New("insert deadlock")
	m.assetRepo.FailCreateFor = "b.png"

	files := []port.FileUpload{pngFile("a.png", 10), pngFile("b.png", 10)}

	out, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Created) != 1 {
		t.Errorf("created = %d; want 1", len(out.Created))
	}
	if len(out.Errors) != 1 || out.Errors[0].Name != "b.png" {
		t.Fatalf("errors = %+v; want one failure for b.png", out.Errors)
	}
	// the blob was written before the row insert failed; it must be reported
	found := false
	for _, w := range out.Warnings {
		if strings.Contains(w, "orphaned blob") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v; want an orphaned blob warning", out.Warnings)
	}
	// both blobs were uploaded, earlier success is not rolled back
	if len(m.strg.SavedKeys) != 2 {
		t.Errorf("SaveFile calls = %d; want 2", len(m.strg.SavedKeys))
	}
	if len(m.strg.RemovedKeys) != 0 {
		t.Errorf("RemoveFile calls = %v; orphans are reported, not reclaimed inline", m.strg.RemovedKeys)
	}
}

func TestUploadFolderAssets_ConcurrentBatchRecountsOnce(t *testing.T) {
	folder := testFolder()
	svc, m := newUploader(folder, DefaultLimits())

	files := make([]port.FileUpload, 5)
	for i := range files {
		files[i] = pngFile(fmt.Sprintf("photo%d.png", i), 100)
	}

	out, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID, Files: files})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Created) != 5 {
		t.Fatalf("created = %d; want 5", len(out.Created))
	}
	if got, _ := m.assetRepo.CountByFolder(context.Background(), folder.ID); got != 5 {
		t.Errorf("live count = %d; want 5", got)
	}
	if m.recounter.Called != 1 {
		t.Errorf("recount calls = %d; want 1", m.recounter.Called)
	}
}

func TestUploadFolderAssets_EmptyBatch(t *testing.T) {
	folder := testFolder()
	svc, _ := newUploader(folder, DefaultLimits())

	_, err := svc.UploadFolderAssets(context.Background(), port.UploadFolderAssetsInput{FolderID: folder.ID})
	if !IsValidationError(err) {
		t.Fatalf("error = %v; want ValidationError", err)
	}
}
