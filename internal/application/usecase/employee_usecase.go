package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

// EmployeeUseCase manages the employee lookup used by job forms.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase builds the use case.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create adds an employee (active by default).
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Active != nil {
		emp.Active = *in.Active
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// ListActive returns the active employees, the list job forms render.
func (uc *EmployeeUseCase) ListActive() ([]*dto.EmployeeResponse, error) {
	emps, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(emps), nil
}

// List lists all employees with pagination.
func (uc *EmployeeUseCase) List(limit, offset int) ([]*dto.EmployeeResponse, error) {
	emps, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(emps), nil
}

// SetActive toggles whether an employee shows up on job forms.
func (uc *EmployeeUseCase) SetActive(id string, active bool) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(id, active)
}

// Delete removes an employee. Historical reports keep the name they recorded.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEmployeeResponses(emps []*entity.Employee) []*dto.EmployeeResponse {
	out := make([]*dto.EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, toEmployeeResponse(e))
	}
	return out
}
