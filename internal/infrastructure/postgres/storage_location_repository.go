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

var _ repository.StorageLocationRepository = (*StorageLocationRepo)(nil)

// StorageLocationRepo StorageLocationRepository on PostgreSQL (pool or tx).
type StorageLocationRepo struct {
	q Querier
}

// NewStorageLocationRepository builds the adapter. Pass pool or tx (Querier).
func NewStorageLocationRepository(q Querier) *StorageLocationRepo {
	return &StorageLocationRepo{q: q}
}

const locationColumns = `id, location, lot_numbers, products, current_weight, created_at, updated_at`

// Create persists a new storage location.
func (r *StorageLocationRepo) Create(loc *entity.StorageLocation) error {
	query := `
		INSERT INTO storage_locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.Location, loc.LotNumbers, loc.Products, loc.CurrentWeight,
		loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert storage location: duplicate location %q", loc.Location)
		}
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

// GetByID fetches one location by ID.
func (r *StorageLocationRepo) GetByID(id string) (*entity.StorageLocation, error) {
	return r.getOne(`SELECT `+locationColumns+` FROM storage_locations WHERE id = $1`, id)
}

// GetByLocation fetches one location by its unique name.
func (r *StorageLocationRepo) GetByLocation(location string) (*entity.StorageLocation, error) {
	return r.getOne(`SELECT `+locationColumns+` FROM storage_locations WHERE location = $1`, location)
}

// GetForUpdate fetches a location by name and locks the row (SELECT FOR
// UPDATE) so concurrent decrements serialize. Only valid inside a tx.
func (r *StorageLocationRepo) GetForUpdate(location string) (*entity.StorageLocation, error) {
	return r.getOne(`SELECT `+locationColumns+` FROM storage_locations WHERE location = $1 FOR UPDATE`, location)
}

func (r *StorageLocationRepo) getOne(query string, arg any) (*entity.StorageLocation, error) {
	var loc entity.StorageLocation
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&loc.ID, &loc.Location, &loc.LotNumbers, &loc.Products, &loc.CurrentWeight,
		&loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	return &loc, nil
}

// List lists locations ordered by name.
func (r *StorageLocationRepo) List(limit, offset int) ([]*entity.StorageLocation, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM storage_locations ORDER BY location LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageLocation
	for rows.Next() {
		var loc entity.StorageLocation
		if err := rows.Scan(&loc.ID, &loc.Location, &loc.LotNumbers, &loc.Products,
			&loc.CurrentWeight, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}

// Update replaces the mutable fields of a location.
func (r *StorageLocationRepo) Update(loc *entity.StorageLocation) error {
	query := `
		UPDATE storage_locations
		SET location = $2, lot_numbers = $3, products = $4, current_weight = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.Location, loc.LotNumbers, loc.Products, loc.CurrentWeight, loc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update storage location: %w", err)
	}
	return nil
}

// UpdateWeight writes a new current weight for a location by name.
func (r *StorageLocationRepo) UpdateWeight(location string, weight decimal.Decimal) error {
	query := `UPDATE storage_locations SET current_weight = $2, updated_at = now() WHERE location = $1`
	_, err := r.q.Exec(context.Background(), query, location, weight)
	if err != nil {
		return fmt.Errorf("update location weight: %w", err)
	}
	return nil
}

// Delete removes a location by ID.
func (r *StorageLocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM storage_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete storage location: %w", err)
	}
	return nil
}
