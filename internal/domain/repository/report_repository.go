package repository

import "github.com/seedhouse/farmops-api/internal/domain/entity"

// ReportFilter narrows report listings.
type ReportFilter struct {
	ProcessType string // empty = all
	FromDate    string // YYYY-MM-DD, inclusive; empty = open
	ToDate      string
	Limit       int
	Offset      int
}

// ReportRepository persistence port for denormalized job reports.
// Reports are write-once: there is no update.
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	List(filter ReportFilter) ([]*entity.Report, int, error)
	Delete(id string) error
	DeleteByIDs(ids []string) (int64, error)
	// DeleteYearRange removes every report whose job date falls in
	// [fromYear, toYear] with a single statement.
	DeleteYearRange(fromYear, toYear int) (int64, error)
}
