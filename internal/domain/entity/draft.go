package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftSchemaVersion is the current draft payload version. Older persisted
// drafts are upgraded on load (see application/draft.Migrate).
const DraftSchemaVersion = 2

// Inbound line source types.
const (
	SourceTypeBin    = "bin"    // drawn from a storage location
	SourceTypeBoxID  = "box_id" // scanned discrete box record
	SourceTypeCustom = "custom" // manual lot/product entry
)

// SourceBin is a snapshot of a storage location taken when the user selects it
// as a job input. Snapshot fields are copied at selection time and not
// re-synced if the location changes underneath.
type SourceBin struct {
	Location      string          `json:"location"`
	LotNumbers    []string        `json:"lot_numbers"`
	Products      []string        `json:"products"`
	CurrentWeight decimal.Decimal `json:"current_weight"`
}

// InboundLine is one input quantity on a job draft. GrossInput keeps the raw
// text the user typed so the form never snaps mid-edit; GrossWeight and
// NetWeight hold the parsed and tare-corrected values.
type InboundLine struct {
	SourceType     string          `json:"source_type"` // bin, box_id, custom
	BinLocation    string          `json:"bin_location,omitempty"`
	BoxID          string          `json:"box_id,omitempty"`
	LotNumber      string          `json:"lot_number,omitempty"`
	Product        string          `json:"product,omitempty"`
	GrossInput     string          `json:"gross_input"`
	GrossWeight    decimal.Decimal `json:"gross_weight"`
	PhysicalBoxID  string          `json:"physical_box_id,omitempty"`
	UsePhysicalBox bool            `json:"use_physical_box"`
	NetWeight      decimal.Decimal `json:"net_weight"`
}

// OutputLine is one produced quantity on a job draft. BoxNumber feeds the
// generated identifier processID + categoryCode + boxNumber.
type OutputLine struct {
	BoxNumber       int             `json:"box_number"`
	GrossInput      string          `json:"gross_input"`
	GrossWeight     decimal.Decimal `json:"gross_weight"`
	PhysicalBoxID   string          `json:"physical_box_id,omitempty"`
	UsePhysicalBox  bool            `json:"use_physical_box"`
	NetWeight       decimal.Decimal `json:"net_weight"`
	StorageLocation string          `json:"storage_location"`
	ProductOverride string          `json:"product_override,omitempty"`
}

// JobDraft is the in-progress state of one job form, owned by one user and
// persisted server-side for recovery. Derived totals are never stored here;
// they are recomputed from the lines (see domain/job.ComputeTotals).
type JobDraft struct {
	SchemaVersion int                     `json:"schema_version"`
	JobType       string                  `json:"job_type"`
	ProcessID     string                  `json:"process_id"`
	JobDate       string                  `json:"job_date"` // YYYY-MM-DD
	Employee      string                  `json:"employee"`
	Supplier      string                  `json:"supplier"`
	Notes         string                  `json:"notes"`
	SourceBins    []SourceBin             `json:"source_bins"`
	InboundLines  []InboundLine           `json:"inbound_lines"`
	OutputLines   map[string][]OutputLine `json:"output_lines"` // category key -> lines
	UpdatedAt     time.Time               `json:"updated_at"`
}

// NewJobDraft returns the default (empty) draft for a job type. Loading a
// persisted draft merges stored fields over this default so fields added after
// the draft was written fall back to sane values.
func NewJobDraft(jobType string) *JobDraft {
	return &JobDraft{
		SchemaVersion: DraftSchemaVersion,
		JobType:       jobType,
		SourceBins:    []SourceBin{},
		InboundLines:  []InboundLine{},
		OutputLines:   map[string][]OutputLine{},
	}
}
