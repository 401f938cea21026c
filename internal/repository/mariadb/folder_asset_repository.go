package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type FolderAssetRepository struct {
	db *sql.DB
}

// compile-time check: *FolderAssetRepository must satisfy port.FolderAssetRepository
var _ port.FolderAssetRepository = (*FolderAssetRepository)(nil)

func NewFolderAssetRepository(db *sql.DB) *FolderAssetRepository {
	return &FolderAssetRepository{db: db}
}

const assetColumns = `id, folder_id, name, subtitle, description, object_key, url, thumbnail_key, thumbnail_url, size_bytes, mime_type, keywords, uploaded_at`

func (r *FolderAssetRepository) Create(ctx context.Context, asset *model.FolderAsset) error {
	log.Printf("creating database record for folder asset #%s in folder #%s...", asset.ID, asset.FolderID)

	const query = `
      INSERT INTO folder_assets
        (id, folder_id, name, subtitle, description, object_key, url, thumbnail_key, thumbnail_url, size_bytes, mime_type, keywords)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.FolderID, asset.Name, asset.Subtitle, asset.Description,
		asset.ObjectKey, asset.URL, asset.ThumbnailKey, asset.ThumbnailURL,
		asset.SizeBytes, asset.MimeType, asset.Keywords,
	)
	return err
}

func (r *FolderAssetRepository) GetByID(ctx context.Context, id db.UUID) (*model.FolderAsset, error) {
	log.Printf("fetching folder asset #%s from the database...", id)

	const query = `SELECT ` + assetColumns + ` FROM folder_assets WHERE id = ?`
	return scanAsset(r.db.QueryRowContext(ctx, query, id))
}

func (r *FolderAssetRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for folder asset #%s...", id)

	const query = `DELETE FROM folder_assets WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *FolderAssetRepository) ListByFolder(ctx context.Context, folderID db.UUID) ([]*model.FolderAsset, error) {
	log.Printf("listing assets of folder #%s from the database...", folderID)

	const query = `SELECT ` + assetColumns + ` FROM folder_assets WHERE folder_id = ? ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.FolderAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *FolderAssetRepository) CountByFolder(ctx context.Context, folderID db.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM folder_assets WHERE folder_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, folderID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *FolderAssetRepository) SetThumbnail(ctx context.Context, id db.UUID, key, url string) error {
	log.Printf("setting thumbnail for folder asset #%s...", id)

	const query = `UPDATE folder_assets SET thumbnail_key = ?, thumbnail_url = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, key, url, id)
	return err
}

func scanAsset(row rowScanner) (*model.FolderAsset, error) {
	var a model.FolderAsset
	if err := row.Scan(
		&a.ID, &a.FolderID, &a.Name, &a.Subtitle, &a.Description,
		&a.ObjectKey, &a.URL, &a.ThumbnailKey, &a.ThumbnailURL,
		&a.SizeBytes, &a.MimeType, &a.Keywords, &a.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
