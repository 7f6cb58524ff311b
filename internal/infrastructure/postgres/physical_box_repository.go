package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

var _ repository.PhysicalBoxRepository = (*PhysicalBoxRepo)(nil)

// PhysicalBoxRepo PhysicalBoxRepository (tare registry) on PostgreSQL.
type PhysicalBoxRepo struct {
	q Querier
}

// NewPhysicalBoxRepository builds the adapter. Pass pool or tx (Querier).
func NewPhysicalBoxRepository(q Querier) *PhysicalBoxRepo {
	return &PhysicalBoxRepo{q: q}
}

// Create persists a new tare entry.
func (r *PhysicalBoxRepo) Create(box *entity.PhysicalBox) error {
	query := `
		INSERT INTO physical_boxes (id, weight, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		box.ID, box.Weight, box.Description, box.CreatedAt, box.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert physical box: duplicate id %q", box.ID)
		}
		return fmt.Errorf("insert physical box: %w", err)
	}
	return nil
}

// GetByID fetches one tare entry.
func (r *PhysicalBoxRepo) GetByID(id string) (*entity.PhysicalBox, error) {
	query := `SELECT id, weight, description, created_at, updated_at FROM physical_boxes WHERE id = $1`
	var b entity.PhysicalBox
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Weight, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get physical box: %w", err)
	}
	return &b, nil
}

// List lists tare entries by ID.
func (r *PhysicalBoxRepo) List(limit, offset int) ([]*entity.PhysicalBox, error) {
	query := `
		SELECT id, weight, description, created_at, updated_at
		FROM physical_boxes ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list physical boxes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PhysicalBox
	for rows.Next() {
		var b entity.PhysicalBox
		if err := rows.Scan(&b.ID, &b.Weight, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan physical box: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update replaces weight and description of a tare entry.
func (r *PhysicalBoxRepo) Update(box *entity.PhysicalBox) error {
	query := `UPDATE physical_boxes SET weight = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, box.ID, box.Weight, box.Description, box.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update physical box: %w", err)
	}
	return nil
}

// Delete removes a tare entry.
func (r *PhysicalBoxRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM physical_boxes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete physical box: %w", err)
	}
	return nil
}
