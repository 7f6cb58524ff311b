package repository

import "github.com/seedhouse/farmops-api/internal/domain/entity"

// UserRepository persistence port for accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}

// EmployeeRepository persistence port for the job-form employee lookup.
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	ListActive() ([]*entity.Employee, error)
	SetActive(id string, active bool) error
	Update(emp *entity.Employee) error
	Delete(id string) error
}
