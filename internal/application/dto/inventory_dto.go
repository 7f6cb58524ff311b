package dto

import "time"

// LocationRequest create/update body for a storage location.
type LocationRequest struct {
	Location      string   `json:"location"`
	LotNumbers    []string `json:"lot_numbers"`
	Products      []string `json:"products"`
	CurrentWeight string   `json:"current_weight"` // decimal string, lbs
}

// LocationResponse one storage location.
type LocationResponse struct {
	ID            string    `json:"id"`
	Location      string    `json:"location"`
	LotNumbers    []string  `json:"lot_numbers"`
	Products      []string  `json:"products"`
	CurrentWeight string    `json:"current_weight"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PhysicalBoxRequest create/update body for a tare-registry entry.
type PhysicalBoxRequest struct {
	ID          string `json:"id"` // printed identifier
	Weight      string `json:"weight"`
	Description string `json:"description"`
}

// PhysicalBoxResponse one tare-registry entry.
type PhysicalBoxResponse struct {
	ID          string    `json:"id"`
	Weight      string    `json:"weight"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoxRequest create body for a discrete box record.
type BoxRequest struct {
	BoxID     string `json:"box_id"`
	LotNumber string `json:"lot_number"`
	Product   string `json:"product"`
	Weight    string `json:"weight"`
	Location  string `json:"location"`
}

// BoxResponse one discrete box record (scan lookup result).
type BoxResponse struct {
	BoxID     string    `json:"box_id"`
	LotNumber string    `json:"lot_number"`
	Product   string    `json:"product"`
	Weight    string    `json:"weight"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeRequest create/update body for an employee.
type EmployeeRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}

// EmployeeResponse one employee.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
