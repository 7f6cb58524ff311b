package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageLocation is a named bulk-inventory bin ("HQ-1", "Shed 3"). Weight is
// mutated only through the job-completion commit, which locks the row.
type StorageLocation struct {
	ID            string
	Location      string // unique human name, scanned/typed on job forms
	LotNumbers    []string
	Products      []string
	CurrentWeight decimal.Decimal // lbs
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
