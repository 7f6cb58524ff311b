package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the denormalized, write-once summary of a completed job: header
// fields, numeric totals, and the full line-item lists (stored as JSONB).
// Reports are created at completion and only ever read or deleted.
type Report struct {
	ID          string
	ProcessID   string
	ProcessType string
	JobDate     string // YYYY-MM-DD
	Employee    string
	Supplier    string
	LotNumbers  string // combined, comma-joined
	Products    string
	Notes       string
	InputTotal  decimal.Decimal
	OutputTotal decimal.Decimal
	Balance     decimal.Decimal
	SourceBins  []SourceBin
	Inbound     []InboundLine
	Outputs     map[string][]OutputLine
	CreatedAt   time.Time
	CreatedBy   string // user ID
}
