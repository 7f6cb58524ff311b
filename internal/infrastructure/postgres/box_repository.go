package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.BoxRepository = (*BoxRepo)(nil)

// BoxRepo BoxRepository on PostgreSQL (pool or tx).
type BoxRepo struct {
	q Querier
}

// NewBoxRepository builds the adapter. Pass pool or tx (Querier).
func NewBoxRepository(q Querier) *BoxRepo {
	return &BoxRepo{q: q}
}

// Create persists a new box record.
func (r *BoxRepo) Create(box *entity.Box) error {
	query := `
		INSERT INTO boxes (box_id, lot_number, product, weight, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		box.BoxID, box.LotNumber, box.Product, box.Weight, box.Location,
		box.CreatedAt, box.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert box: duplicate box_id %q", box.BoxID)
		}
		return fmt.Errorf("insert box: %w", err)
	}
	return nil
}

// GetByBoxID fetches one box by its printed ID.
func (r *BoxRepo) GetByBoxID(boxID string) (*entity.Box, error) {
	query := `
		SELECT box_id, lot_number, product, weight, location, created_at, updated_at
		FROM boxes WHERE box_id = $1`
	var b entity.Box
	err := r.q.QueryRow(context.Background(), query, boxID).Scan(
		&b.BoxID, &b.LotNumber, &b.Product, &b.Weight, &b.Location, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box: %w", err)
	}
	return &b, nil
}

// List lists box records, newest first.
func (r *BoxRepo) List(limit, offset int) ([]*entity.Box, error) {
	query := `
		SELECT box_id, lot_number, product, weight, location, created_at, updated_at
		FROM boxes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Box
	for rows.Next() {
		var b entity.Box
		if err := rows.Scan(&b.BoxID, &b.LotNumber, &b.Product, &b.Weight, &b.Location,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan box: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// UpdateWeight writes the remaining weight after a partial consumption.
func (r *BoxRepo) UpdateWeight(boxID string, weight decimal.Decimal) error {
	query := `UPDATE boxes SET weight = $2, updated_at = now() WHERE box_id = $1`
	_, err := r.q.Exec(context.Background(), query, boxID, weight)
	if err != nil {
		return fmt.Errorf("update box weight: %w", err)
	}
	return nil
}

// Delete removes a fully consumed box record.
func (r *BoxRepo) Delete(boxID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM boxes WHERE box_id = $1`, boxID)
	if err != nil {
		return fmt.Errorf("delete box: %w", err)
	}
	return nil
}
