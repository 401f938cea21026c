package media

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/model"
	"github.com/symposio/media-service-go/internal/port"
)

type legacyMigratorSrv struct {
	repo      port.MediaRepository
	assetRepo port.FolderAssetRepository
	recounter port.Recounter
	genUUID   port.UUIDGen
}

// compile-time check: *legacyMigratorSrv must satisfy port.LegacyMigrator
var _ port.LegacyMigrator = (*legacyMigratorSrv)(nil)

// NewLegacyMigrator constructs a LegacyMigrator implementation.
func NewLegacyMigrator(repo port.MediaRepository, assetRepo port.FolderAssetRepository, recounter port.Recounter, genUUID port.UUIDGen) port.LegacyMigrator {
	return &legacyMigratorSrv{repo, assetRepo, recounter, genUUID}
}

// MigrateLegacy re-homes every legacy flat image item under the folder whose
// event matches. Items without a match are reported, not deleted and not
// retried. There is no migration ledger: running this twice duplicates the
// migrated assets, so it is meant to be run once.
func (s *legacyMigratorSrv) MigrateLegacy(ctx context.Context) (*port.MigrateLegacyOutput, error) {
	items, err := s.repo.ListLegacyImages(ctx)
	if err != nil {
		return nil, err
	}

	out := &port.MigrateLegacyOutput{}
	touched := make(map[db.UUID]bool)

	for _, item := range items {
		if item.Event == "" {
			out.Unmigrated = append(out.Unmigrated, port.UnmigratedItem{
				ID: item.ID, Name: item.Name, Event: item.Event, Reason: "item has no event key",
			})
			continue
		}

		folder, err := s.repo.GetFolderByEvent(ctx, item.Event)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				out.Unmigrated = append(out.Unmigrated, port.UnmigratedItem{
					ID: item.ID, Name: item.Name, Event: item.Event, Reason: "no folder matches event",
				})
				continue
			}
			return nil, err
		}

		asset := &model.FolderAsset{
			ID:          s.genUUID(),
			FolderID:    folder.ID,
			Name:        item.Name,
			Subtitle:    item.Subtitle,
			Description: item.Content,
			ObjectKey:   *item.CoverKey,
			Keywords:    item.Keywords,
		}
		if item.CoverURL != nil {
			asset.URL = *item.CoverURL
		}
		if err := s.assetRepo.Create(ctx, asset); err != nil {
			return nil, err
		}

		log.Printf("migrated legacy media #%s into folder #%s (event %q)", item.ID, folder.ID, item.Event)
		touched[folder.ID] = true
		out.Migrated++
	}

	for folderID := range touched {
		if err := s.recounter.Recount(ctx, folderID); err != nil {
			return nil, err
		}
		out.FoldersRecounted++
	}

	return out, nil
}
