package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

var _ repository.StorageItemRepository = (*StorageItemRepo)(nil)

// StorageItemRepo StorageItemRepository on PostgreSQL. One table holds every
// destination collection, keyed by the destination column.
type StorageItemRepo struct {
	q Querier
}

// NewStorageItemRepository builds the adapter. Pass pool or tx (Querier).
func NewStorageItemRepository(q Querier) *StorageItemRepo {
	return &StorageItemRepo{q: q}
}

const itemColumns = `id, box_id, destination, process_id, process_type, category,
		product, lot_numbers, amount, location, job_date, created_at, created_by`

// Create persists one completed-job output row. A duplicate generated box ID
// collides on the unique key.
func (r *StorageItemRepo) Create(item *entity.StorageItem) error {
	query := `
		INSERT INTO storage_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BoxID, item.Destination, item.ProcessID, item.ProcessType,
		item.Category, item.Product, item.LotNumbers, item.Amount, item.Location,
		item.JobDate, item.CreatedAt, item.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert storage item: duplicate box_id %q", item.BoxID)
		}
		return fmt.Errorf("insert storage item: %w", err)
	}
	return nil
}

// GetByBoxID fetches one output row by its generated identifier.
func (r *StorageItemRepo) GetByBoxID(boxID string) (*entity.StorageItem, error) {
	query := `SELECT ` + itemColumns + ` FROM storage_items WHERE box_id = $1`
	var it entity.StorageItem
	err := r.q.QueryRow(context.Background(), query, boxID).Scan(
		&it.ID, &it.BoxID, &it.Destination, &it.ProcessID, &it.ProcessType,
		&it.Category, &it.Product, &it.LotNumbers, &it.Amount, &it.Location,
		&it.JobDate, &it.CreatedAt, &it.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage item: %w", err)
	}
	return &it, nil
}

// ListByDestination lists one destination collection, newest first.
func (r *StorageItemRepo) ListByDestination(destination string, limit, offset int) ([]*entity.StorageItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM storage_items WHERE destination = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, destination, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storage items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageItem
	for rows.Next() {
		var it entity.StorageItem
		if err := rows.Scan(&it.ID, &it.BoxID, &it.Destination, &it.ProcessID, &it.ProcessType,
			&it.Category, &it.Product, &it.LotNumbers, &it.Amount, &it.Location,
			&it.JobDate, &it.CreatedAt, &it.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan storage item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
