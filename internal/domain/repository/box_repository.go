package repository

import (
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BoxRepository persistence port for discrete box records (scan lookups).
type BoxRepository interface {
	Create(box *entity.Box) error
	GetByBoxID(boxID string) (*entity.Box, error)
	List(limit, offset int) ([]*entity.Box, error)
	UpdateWeight(boxID string, weight decimal.Decimal) error
	Delete(boxID string) error
}

// PhysicalBoxRepository persistence port for the tare registry.
type PhysicalBoxRepository interface {
	Create(box *entity.PhysicalBox) error
	GetByID(id string) (*entity.PhysicalBox, error)
	List(limit, offset int) ([]*entity.PhysicalBox, error)
	Update(box *entity.PhysicalBox) error
	Delete(id string) error
}

// StorageItemRepository persistence port for completed-job output rows.
type StorageItemRepository interface {
	Create(item *entity.StorageItem) error
	ListByDestination(destination string, limit, offset int) ([]*entity.StorageItem, error)
	GetByBoxID(boxID string) (*entity.StorageItem, error)
}
