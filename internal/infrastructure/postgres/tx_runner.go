package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seedhouse/farmops-api/internal/application/job"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

// Ensure TxRunner implements job.TxRunner.
var _ job.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. The job
// completion commit runs entirely through it.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repositories bound to it, and
// commits, or rolls back when fn errors.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StorageItemRepository,
	locationRepo repository.StorageLocationRepository,
	boxRepo repository.BoxRepository,
	reportRepo repository.ReportRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewStorageItemRepository(tx)
	locationRepo := NewStorageLocationRepository(tx)
	boxRepo := NewBoxRepository(tx)
	reportRepo := NewReportRepository(tx)

	if err := fn(itemRepo, locationRepo, boxRepo, reportRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
