package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo EmployeeRepository on PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository builds the adapter. Pass pool or tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persists a new employee.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		emp.ID, emp.Name, emp.Active, emp.CreatedAt, emp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID fetches one employee.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT id, name, active, created_at, updated_at FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lists employees by name.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT id, name, active, created_at, updated_at FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// ListActive returns the active employees for the job-form lookup.
func (r *EmployeeRepo) ListActive() ([]*entity.Employee, error) {
	query := `SELECT id, name, active, created_at, updated_at FROM employees WHERE active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SetActive toggles job-form visibility for an employee.
func (r *EmployeeRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set employee active: %w", err)
	}
	return nil
}

// Update replaces an employee's fields.
func (r *EmployeeRepo) Update(emp *entity.Employee) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET name = $2, active = $3, updated_at = $4 WHERE id = $1`,
		emp.ID, emp.Name, emp.Active, emp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete removes an employee.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
