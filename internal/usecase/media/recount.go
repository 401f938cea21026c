package media

import (
	"context"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type recounterSrv struct {
	repo port.MediaRepository
}

// compile-time check: *recounterSrv must satisfy port.Recounter
var _ port.Recounter = (*recounterSrv)(nil)

// NewRecounter constructs the folder aggregation service.
func NewRecounter(repo port.MediaRepository) port.Recounter {
	return &recounterSrv{repo: repo}
}

// Recount refreshes the folder's items_count projection from a live count.
// Idempotent and safe to call redundantly; interleaved recounts converge.
func (s *recounterSrv) Recount(ctx context.Context, folderID db.UUID) error {
	return s.repo.RefreshItemsCount(ctx, folderID)
}
