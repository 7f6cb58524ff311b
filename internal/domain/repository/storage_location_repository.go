package repository

import (
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StorageLocationRepository persistence port for bulk-inventory bins.
type StorageLocationRepository interface {
	Create(loc *entity.StorageLocation) error
	GetByID(id string) (*entity.StorageLocation, error)
	GetByLocation(location string) (*entity.StorageLocation, error)
	List(limit, offset int) ([]*entity.StorageLocation, error)
	Update(loc *entity.StorageLocation) error
	Delete(id string) error

	// GetForUpdate locks the row (SELECT FOR UPDATE) so concurrent jobs
	// drawing from the same bin serialize. Only valid inside a transaction.
	GetForUpdate(location string) (*entity.StorageLocation, error)
	UpdateWeight(location string, weight decimal.Decimal) error
}
