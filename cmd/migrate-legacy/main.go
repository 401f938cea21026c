package main

import (
	"context"
	"fmt"
	"os"

	"github.com/symposio/media-service-go/internal/config"
	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/logger"
	"github.com/symposio/media-service-go/internal/repository/mariadb"
	mediaSvc "github.com/symposio/media-service-go/internal/usecase/media"
)

// One-shot re-homing of legacy flat image items under their event's folder.
// Not idempotent: running it twice duplicates the copied assets.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	assetRepo := mariadb.NewFolderAssetRepository(database.DB)
	recounter := mediaSvc.NewRecounter(mediaRepo)

	migrator := mediaSvc.NewLegacyMigrator(mediaRepo, assetRepo, recounter, db.NewUUID)

	out, err := migrator.MigrateLegacy(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Legacy migration failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Migrated %d legacy image(s) into %d folder(s).\n", out.Migrated, out.FoldersRecounted)
	if len(out.Unmigrated) > 0 {
		fmt.Printf("%d item(s) could not be migrated:\n", len(out.Unmigrated))
		for _, u := range out.Unmigrated {
			fmt.Printf("  - #%s (%s): %s\n", u.ID, u.Name, u.Reason)
		}
	}
	fmt.Println("Note: this command is not idempotent. Running it again will duplicate already-migrated assets.")
}
