package job

import (
	"context"

	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, handing it
// repositories bound to that transaction. The whole completion commit is
// atomic: any returned error rolls everything back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StorageItemRepository,
		locationRepo repository.StorageLocationRepository,
		boxRepo repository.BoxRepository,
		reportRepo repository.ReportRepository,
	) error) error
}
