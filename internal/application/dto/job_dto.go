package dto

import "github.com/seedhouse/farmops-api/internal/domain/entity"

// CompleteJobRequest is the body of POST /api/jobs/:type/complete. The client
// submits its final draft state; warnings must be acknowledged explicitly for
// completion to proceed past them.
type CompleteJobRequest struct {
	Draft               entity.JobDraft `json:"draft"`
	AcknowledgeWarnings bool            `json:"acknowledge_warnings"`
}

// CompleteJobResponse summarizes a successful completion.
type CompleteJobResponse struct {
	ReportID    string `json:"report_id"`
	ProcessID   string `json:"process_id"`
	InputTotal  string `json:"input_total"`
	OutputTotal string `json:"output_total"`
	Balance     string `json:"balance"`
	BoxesStored int    `json:"boxes_stored"`
}

// JobTypeResponse describes one registered job type for form rendering.
type JobTypeResponse struct {
	Type            string                `json:"type"`
	Label           string                `json:"label"`
	RequireEmployee bool                  `json:"require_employee"`
	Categories      []JobCategoryResponse `json:"categories"`
}

// JobCategoryResponse one output section of a job type.
type JobCategoryResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Code        string `json:"code"`
	Destination string `json:"destination"`
}

// TotalsResponse derived totals for a draft (recomputed server-side).
type TotalsResponse struct {
	InputTotal  string            `json:"input_total"`
	Subtotals   map[string]string `json:"subtotals"`
	OutputTotal string            `json:"output_total"`
	Balance     string            `json:"balance"`
	LotNumbers  string            `json:"lot_numbers"`
	Products    string            `json:"products"`
}
