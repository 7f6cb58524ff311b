package dto

import (
	"time"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
)

// ReportListRequest query filters for listing reports.
type ReportListRequest struct {
	ProcessType string `query:"process_type"`
	FromDate    string `query:"from_date"` // YYYY-MM-DD
	ToDate      string `query:"to_date"`
	PageRequest
}

// ReportResponse one denormalized job report.
type ReportResponse struct {
	ID          string                               `json:"id"`
	ProcessID   string                               `json:"process_id"`
	ProcessType string                               `json:"process_type"`
	JobDate     string                               `json:"job_date"`
	Employee    string                               `json:"employee"`
	Supplier    string                               `json:"supplier,omitempty"`
	LotNumbers  string                               `json:"lot_numbers"`
	Products    string                               `json:"products"`
	Notes       string                               `json:"notes,omitempty"`
	InputTotal  string                               `json:"input_total"`
	OutputTotal string                               `json:"output_total"`
	Balance     string                               `json:"balance"`
	SourceBins  []entity.SourceBin                   `json:"source_bins,omitempty"`
	Inbound     []entity.InboundLine                 `json:"inbound,omitempty"`
	Outputs     map[string][]entity.OutputLine       `json:"outputs,omitempty"`
	CreatedAt   time.Time                            `json:"created_at"`
}

// BulkDeleteRequest body for deleting a selection of reports.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// YearRangeDeleteRequest body for deleting reports by calendar-year range.
type YearRangeDeleteRequest struct {
	FromYear int `json:"from_year"`
	ToYear   int `json:"to_year"`
}

// ToReportResponse maps the entity, including the nested line items when
// full is set (detail view) and omitting them for listings.
func ToReportResponse(r *entity.Report, full bool) ReportResponse {
	resp := ReportResponse{
		ID:          r.ID,
		ProcessID:   r.ProcessID,
		ProcessType: r.ProcessType,
		JobDate:     r.JobDate,
		Employee:    r.Employee,
		Supplier:    r.Supplier,
		LotNumbers:  r.LotNumbers,
		Products:    r.Products,
		Notes:       r.Notes,
		InputTotal:  r.InputTotal.String(),
		OutputTotal: r.OutputTotal.String(),
		Balance:     r.Balance.String(),
		CreatedAt:   r.CreatedAt,
	}
	if full {
		resp.SourceBins = r.SourceBins
		resp.Inbound = r.Inbound
		resp.Outputs = r.Outputs
	}
	return resp
}
