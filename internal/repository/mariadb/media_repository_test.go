package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
)

func newMockRepo(t *testing.T) (*MediaRepository, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	return NewMediaRepository(sqlDB), mock, func() { _ = sqlDB.Close() }
}

func mediaRow(m *model.Media) *sqlmock.Rows {
	idBytes, _ := uuid.UUID(m.ID).MarshalBinary()
	kw, _ := m.Keywords.Value()
	ek, _ := m.ExtraKeys.Value()
	return sqlmock.NewRows([]string{
		"id", "name", "subtitle", "content", "kind", "event", "display_date",
		"cover_key", "cover_url", "theme_color", "keywords", "extra_keys",
		"status", "items_count", "created_at", "updated_at",
	}).AddRow(
		idBytes, m.Name, m.Subtitle, m.Content, string(m.Kind), m.Event, m.DisplayDate,
		m.CoverKey, m.CoverURL, m.ThemeColor, kw, ek,
		string(m.Status), m.ItemsCount, time.Now(), time.Now(),
	)
}

func TestMediaRepository_Create_Success(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	m := &model.Media{
		ID:       db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		Name:     "Opening Day",
		Kind:     model.MediaKindFolder,
		Event:    "symposium-2026",
		Keywords: model.StringList{"plenary"},
		Status:   model.MediaStatusDraft,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO medias
        (id, name, subtitle, content, kind, event, display_date, cover_key, cover_url, theme_color, keywords, extra_keys, status, items_count)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(
			m.ID, m.Name, m.Subtitle, m.Content,
			m.Kind, m.Event, m.DisplayDate,
			m.CoverKey, m.CoverURL, m.ThemeColor,
			m.Keywords, m.ExtraKeys, m.Status, m.ItemsCount,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), m); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Create_ExecError(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	m := &model.Media{ID: db.NewUUID(), Name: "x", Kind: model.MediaKindImage}

	mock.ExpectExec("INSERT INTO medias").
		WillReturnError(errors.New("exec failed"))

	if err := repo.Create(context.Background(), m); err == nil {
		t.Error("Create() expected error, got nil")
	}
}

func TestMediaRepository_GetByID(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	m := &model.Media{
		ID:    db.NewUUID(),
		Name:  "Keynote",
		Kind:  model.MediaKindImage,
		Event: "symposium-2026",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + mediaColumns + ` FROM medias WHERE id = ?`)).
		WithArgs(m.ID).
		WillReturnRows(mediaRow(m))

	got, err := repo.GetByID(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if got.ID != m.ID || got.Name != m.Name || got.Kind != m.Kind {
		t.Errorf("GetByID() = %+v; want %+v", got, m)
	}
}

func TestMediaRepository_GetByID_NoRows(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	id := db.NewUUID()
	mock.ExpectQuery("SELECT .* FROM medias WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID() error = %v; want sql.ErrNoRows", err)
	}
}

func TestMediaRepository_Update(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	m := &model.Media{ID: db.NewUUID(), Name: "Renamed", Kind: model.MediaKindVideo}

	mock.ExpectExec("UPDATE medias").
		WithArgs(
			m.Name, m.Subtitle, m.Content,
			m.Event, m.DisplayDate,
			m.CoverKey, m.CoverURL, m.ThemeColor,
			m.Keywords, m.ExtraKeys, m.Status,
			m.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), m); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Delete(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	id := db.NewUUID()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM medias WHERE id = ?`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Errorf("Delete() returned unexpected error: %v", err)
	}
}

func TestMediaRepository_GetFolderByEvent(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	folder := &model.Media{ID: db.NewUUID(), Name: "Day 1", Kind: model.MediaKindFolder, Event: "symposium-2026"}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+mediaColumns+` FROM medias WHERE kind = 'folder' AND event = ? LIMIT 1`)).
		WithArgs(folder.Event).
		WillReturnRows(mediaRow(folder))

	got, err := repo.GetFolderByEvent(context.Background(), folder.Event)
	if err != nil {
		t.Fatalf("GetFolderByEvent() returned unexpected error: %v", err)
	}
	if got.ID != folder.ID {
		t.Errorf("GetFolderByEvent() = %+v; want %+v", got, folder)
	}
}

func TestMediaRepository_ListLegacyImages(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	key := "images/legacy.jpg"
	m1 := &model.Media{ID: db.NewUUID(), Name: "a", Kind: model.MediaKindImage, CoverKey: &key}
	m2 := &model.Media{ID: db.NewUUID(), Name: "b", Kind: model.MediaKindImage, CoverKey: &key}

	rows := mediaRow(m1)
	id2, _ := uuid.UUID(m2.ID).MarshalBinary()
	kw, _ := m2.Keywords.Value()
	ek, _ := m2.ExtraKeys.Value()
	rows.AddRow(id2, m2.Name, m2.Subtitle, m2.Content, string(m2.Kind), m2.Event, m2.DisplayDate,
		m2.CoverKey, m2.CoverURL, m2.ThemeColor, kw, ek, string(m2.Status), m2.ItemsCount, time.Now(), time.Now())

	mock.ExpectQuery("SELECT .* FROM medias WHERE kind = 'image' AND cover_key IS NOT NULL").
		WillReturnRows(rows)

	got, err := repo.ListLegacyImages(context.Background())
	if err != nil {
		t.Fatalf("ListLegacyImages() returned unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Errorf("ListLegacyImages() = %+v; want 2 items in order", got)
	}
}

func TestMediaRepository_RefreshItemsCount(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	id := db.NewUUID()
	// one statement, live count: the folder id binds both the subquery and
	// the WHERE clause
	mock.ExpectExec(regexp.QuoteMeta(`
      UPDATE medias
      SET items_count = (SELECT COUNT(*) FROM folder_assets WHERE folder_id = ?)
      WHERE id = ?
    `)).
		WithArgs(id, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RefreshItemsCount(context.Background(), id); err != nil {
		t.Errorf("RefreshItemsCount() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
