package usecase

import (
	"time"

	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// BoxUseCase discrete box records: creation and the scan lookup job forms
// use. Consumption (delete/remainder write-back) happens in the completion
// commit, not here.
type BoxUseCase struct {
	repo repository.BoxRepository
}

// NewBoxUseCase builds the use case.
func NewBoxUseCase(repo repository.BoxRepository) *BoxUseCase {
	return &BoxUseCase{repo: repo}
}

// Create registers a box under its printed ID.
func (uc *BoxUseCase) Create(in dto.BoxRequest) (*dto.BoxResponse, error) {
	if in.BoxID == "" {
		return nil, domain.ErrInvalidInput
	}
	weight, err := decimal.NewFromString(in.Weight)
	if err != nil || !weight.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByBoxID(in.BoxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	box := &entity.Box{
		BoxID:     in.BoxID,
		LotNumber: in.LotNumber,
		Product:   in.Product,
		Weight:    weight,
		Location:  in.Location,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(box); err != nil {
		return nil, err
	}
	return toBoxResponse(box), nil
}

// GetByBoxID is the scan lookup: resolves a printed box ID to its record.
func (uc *BoxUseCase) GetByBoxID(boxID string) (*dto.BoxResponse, error) {
	box, err := uc.repo.GetByBoxID(boxID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, domain.ErrNotFound
	}
	return toBoxResponse(box), nil
}

// List lists box records with pagination.
func (uc *BoxUseCase) List(limit, offset int) ([]*dto.BoxResponse, error) {
	boxes, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BoxResponse, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, toBoxResponse(b))
	}
	return out, nil
}

func toBoxResponse(b *entity.Box) *dto.BoxResponse {
	return &dto.BoxResponse{
		BoxID:     b.BoxID,
		LotNumber: b.LotNumber,
		Product:   b.Product,
		Weight:    b.Weight.String(),
		Location:  b.Location,
		CreatedAt: b.CreatedAt,
	}
}
