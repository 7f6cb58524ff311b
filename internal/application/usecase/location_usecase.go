package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// LocationUseCase CRUD over storage locations. Weight is only written here on
// create/admin edit; job completions decrement it through the commit
// transaction instead.
type LocationUseCase struct {
	repo repository.StorageLocationRepository
}

// NewLocationUseCase builds the use case.
func NewLocationUseCase(repo repository.StorageLocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create registers a storage location.
func (uc *LocationUseCase) Create(in dto.LocationRequest) (*dto.LocationResponse, error) {
	if in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByLocation(in.Location)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	weight, err := decimal.NewFromString(in.CurrentWeight)
	if err != nil || weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loc := &entity.StorageLocation{
		ID:            uuid.New().String(),
		Location:      in.Location,
		LotNumbers:    in.LotNumbers,
		Products:      in.Products,
		CurrentWeight: weight,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// GetByID returns one location.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(loc), nil
}

// GetByLocation resolves a location by its scanned/typed name.
func (uc *LocationUseCase) GetByLocation(location string) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByLocation(location)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(loc), nil
}

// List lists locations with pagination.
func (uc *LocationUseCase) List(limit, offset int) ([]*dto.LocationResponse, error) {
	locs, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationResponse, 0, len(locs))
	for _, loc := range locs {
		out = append(out, toLocationResponse(loc))
	}
	return out, nil
}

// Update replaces lot/product/weight fields (admin correction path).
func (uc *LocationUseCase) Update(id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	weight, err := decimal.NewFromString(in.CurrentWeight)
	if err != nil || weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Location != "" {
		loc.Location = in.Location
	}
	loc.LotNumbers = in.LotNumbers
	loc.Products = in.Products
	loc.CurrentWeight = weight
	loc.UpdatedAt = time.Now()
	if err := uc.repo.Update(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Delete removes a location.
func (uc *LocationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLocationResponse(loc *entity.StorageLocation) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:            loc.ID,
		Location:      loc.Location,
		LotNumbers:    loc.LotNumbers,
		Products:      loc.Products,
		CurrentWeight: loc.CurrentWeight.String(),
		CreatedAt:     loc.CreatedAt,
		UpdatedAt:     loc.UpdatedAt,
	}
}
