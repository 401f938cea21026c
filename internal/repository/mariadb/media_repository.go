package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

const mediaColumns = `id, name, subtitle, content, kind, event, display_date, cover_key, cover_url, theme_color, keywords, extra_keys, status, items_count, created_at, updated_at`

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s, kind %q...", media.ID, media.Kind)

	const query = `
      INSERT INTO medias
        (id, name, subtitle, content, kind, event, display_date, cover_key, cover_url, theme_color, keywords, extra_keys, status, items_count)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.Name, media.Subtitle, media.Content,
		media.Kind, media.Event, media.DisplayDate,
		media.CoverKey, media.CoverURL, media.ThemeColor,
		media.Keywords, media.ExtraKeys, media.Status, media.ItemsCount,
	)
	return err
}

func (r *MediaRepository) Update(ctx context.Context, media *model.Media) error {
	log.Printf("updating database record for media #%s...", media.ID)

	const query = `
      UPDATE medias
      SET
        name         = ?,
        subtitle     = ?,
        content      = ?,
        event        = ?,
        display_date = ?,
        cover_key    = ?,
        cover_url    = ?,
        theme_color  = ?,
        keywords     = ?,
        extra_keys   = ?,
        status       = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		media.Name, media.Subtitle, media.Content,
		media.Event, media.DisplayDate,
		media.CoverKey, media.CoverURL, media.ThemeColor,
		media.Keywords, media.ExtraKeys, media.Status,
		media.ID, // WHERE clause
	)
	return err
}

func (r *MediaRepository) GetByID(ctx context.Context, id db.UUID) (*model.Media, error) {
	log.Printf("fetching media #%s from the database...", id)

	const query = `SELECT ` + mediaColumns + ` FROM medias WHERE id = ?`
	return r.scanMedia(r.db.QueryRowContext(ctx, query, id))
}

func (r *MediaRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for media #%s...", id)

	const query = `DELETE FROM medias WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *MediaRepository) GetFolderByEvent(ctx context.Context, event string) (*model.Media, error) {
	log.Printf("fetching folder for event %q from the database...", event)

	const query = `SELECT ` + mediaColumns + ` FROM medias WHERE kind = 'folder' AND event = ? LIMIT 1`
	return r.scanMedia(r.db.QueryRowContext(ctx, query, event))
}

func (r *MediaRepository) ListLegacyImages(ctx context.Context) ([]*model.Media, error) {
	log.Println("listing legacy flat image medias from the database...")

	const query = `SELECT ` + mediaColumns + ` FROM medias WHERE kind = 'image' AND cover_key IS NOT NULL ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Media
	for rows.Next() {
		m, err := r.scanMedia(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// RefreshItemsCount writes the live child count in one statement so that
// interleaved recounts converge instead of losing updates.
func (r *MediaRepository) RefreshItemsCount(ctx context.Context, folderID db.UUID) error {
	log.Printf("refreshing items_count for folder #%s...", folderID)

	const query = `
      UPDATE medias
      SET items_count = (SELECT COUNT(*) FROM folder_assets WHERE folder_id = ?)
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, folderID, folderID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *MediaRepository) scanMedia(row rowScanner) (*model.Media, error) {
	var media model.Media
	if err := row.Scan(
		&media.ID, &media.Name, &media.Subtitle, &media.Content,
		&media.Kind, &media.Event, &media.DisplayDate,
		&media.CoverKey, &media.CoverURL, &media.ThemeColor,
		&media.Keywords, &media.ExtraKeys, &media.Status,
		&media.ItemsCount, &media.CreatedAt, &media.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &media, nil
}
