package entity

import "time"

// Employee is a worker selectable on job forms. Jobs reference employees by
// name, so the name is what the lookup list serves.
type Employee struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
