package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Box is a discrete inventory record addressable by its printed box ID.
// A job that scans a box as an input either deletes it (fully consumed) or
// writes back the remainder (partially consumed).
type Box struct {
	BoxID     string // printed identifier, e.g. "QS1042C3"
	LotNumber string
	Product   string
	Weight    decimal.Decimal // lbs, net
	Location  string          // where it currently sits
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhysicalBox is a reusable container with a known tare weight, looked up by
// identifier to correct gross scale readings. Read-only from the workflow side.
type PhysicalBox struct {
	ID          string // printed identifier on the container
	Weight      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StorageItem is one output row written by a completed job into a destination
// collection (clean storage, screenings storage, ...).
type StorageItem struct {
	ID          string
	BoxID       string // generated: processID + category code + box number
	Destination string
	ProcessID   string
	ProcessType string
	Category    string
	Product     string
	LotNumbers  string
	Amount      decimal.Decimal // lbs, net
	Location    string          // storage location chosen on the output line
	JobDate     string
	CreatedAt   time.Time
	CreatedBy   string // user ID
}
