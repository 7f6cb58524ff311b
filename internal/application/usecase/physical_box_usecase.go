package usecase

import (
	"time"

	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PhysicalBoxUseCase CRUD over the tare registry. The workflow only ever
// reads it (net-weight lookups).
type PhysicalBoxUseCase struct {
	repo repository.PhysicalBoxRepository
}

// NewPhysicalBoxUseCase builds the use case.
func NewPhysicalBoxUseCase(repo repository.PhysicalBoxRepository) *PhysicalBoxUseCase {
	return &PhysicalBoxUseCase{repo: repo}
}

// Create registers a physical box under its printed identifier.
func (uc *PhysicalBoxUseCase) Create(in dto.PhysicalBoxRequest) (*dto.PhysicalBoxResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	weight, err := decimal.NewFromString(in.Weight)
	if err != nil || weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	pb := &entity.PhysicalBox{
		ID:          in.ID,
		Weight:      weight,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(pb); err != nil {
		return nil, err
	}
	return toPhysicalBoxResponse(pb), nil
}

// GetByID returns one tare entry.
func (uc *PhysicalBoxUseCase) GetByID(id string) (*dto.PhysicalBoxResponse, error) {
	pb, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pb == nil {
		return nil, domain.ErrNotFound
	}
	return toPhysicalBoxResponse(pb), nil
}

// List lists tare entries with pagination.
func (uc *PhysicalBoxUseCase) List(limit, offset int) ([]*dto.PhysicalBoxResponse, error) {
	boxes, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PhysicalBoxResponse, 0, len(boxes))
	for _, pb := range boxes {
		out = append(out, toPhysicalBoxResponse(pb))
	}
	return out, nil
}

// Update replaces the weight/description of a tare entry.
func (uc *PhysicalBoxUseCase) Update(id string, in dto.PhysicalBoxRequest) (*dto.PhysicalBoxResponse, error) {
	pb, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pb == nil {
		return nil, domain.ErrNotFound
	}
	weight, err := decimal.NewFromString(in.Weight)
	if err != nil || weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	pb.Weight = weight
	pb.Description = in.Description
	pb.UpdatedAt = time.Now()
	if err := uc.repo.Update(pb); err != nil {
		return nil, err
	}
	return toPhysicalBoxResponse(pb), nil
}

// Delete removes a tare entry.
func (uc *PhysicalBoxUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPhysicalBoxResponse(pb *entity.PhysicalBox) *dto.PhysicalBoxResponse {
	return &dto.PhysicalBoxResponse{
		ID:          pb.ID,
		Weight:      pb.Weight.String(),
		Description: pb.Description,
		CreatedAt:   pb.CreatedAt,
		UpdatedAt:   pb.UpdatedAt,
	}
}
