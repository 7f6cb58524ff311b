package job

import (
	"fmt"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ValidationResult separates hard errors (completion is blocked) from soft
// warnings (completion proceeds only when the caller acknowledges them).
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether completion may proceed without acknowledgement.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Validate checks a draft against the completion rules for its job type.
// Hard errors: process ID, employee (when the type requires one), at least one
// source, at least one inbound and one output line with positive net weight,
// no duplicate generated box IDs, no output lines under a category the job
// type does not define. Soft warnings: outputs exceeding inputs and
// consumption exceeding a source bin's snapshot weight.
func Validate(d *entity.JobDraft, cfg Config) ValidationResult {
	var res ValidationResult

	if d.ProcessID == "" {
		res.Errors = append(res.Errors, "Process ID is required")
	}
	if cfg.RequireEmployee && d.Employee == "" {
		res.Errors = append(res.Errors, "An employee must be selected")
	}
	if len(d.SourceBins) == 0 && !hasBoxOrCustomSource(d) {
		res.Errors = append(res.Errors, "Add at least one source (bin, box scan, or custom entry)")
	}

	inboundWithWeight := 0
	for _, line := range d.InboundLines {
		if line.NetWeight.IsPositive() {
			inboundWithWeight++
		}
	}
	if inboundWithWeight == 0 {
		res.Errors = append(res.Errors, "Add at least one inbound line with a positive net weight")
	}

	outputWithWeight := 0
	seenIDs := map[string]string{}
	for _, cat := range cfg.Categories {
		for _, line := range d.OutputLines[cat.Key] {
			if line.NetWeight.IsPositive() {
				outputWithWeight++
			}
			id := BoxID(d.ProcessID, cat.Code, line.BoxNumber)
			if prev, dup := seenIDs[id]; dup {
				res.Errors = append(res.Errors, fmt.Sprintf("Duplicate box ID %s (%s and %s)", id, prev, cat.Label))
			} else {
				seenIDs[id] = cat.Label
			}
		}
	}
	if outputWithWeight == 0 {
		res.Errors = append(res.Errors, "Add at least one output line with a positive net weight")
	}

	// Lines under a category the job type does not define would count toward
	// the totals but never be stored.
	for key, lines := range d.OutputLines {
		if _, known := cfg.Category(key); !known && len(lines) > 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("Unknown output category %s for %s jobs", key, cfg.Label))
		}
	}

	totals := ComputeTotals(d)
	if totals.OutputTotal.GreaterThan(totals.InputTotal) {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Output weight (%s lbs) exceeds input weight (%s lbs)",
			totals.OutputTotal.StringFixed(1), totals.InputTotal.StringFixed(1)))
	}

	for bin, consumed := range ConsumedPerBin(d) {
		for _, src := range d.SourceBins {
			if src.Location == bin && consumed.GreaterThan(src.CurrentWeight) {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"Bin %s: drawing %s lbs but only %s lbs were available when selected",
					bin, consumed.StringFixed(1), src.CurrentWeight.StringFixed(1)))
			}
		}
	}

	return res
}

// ConsumedPerBin aggregates inbound net weight per source bin location.
// The commit sequence uses this to decrement each bin exactly once.
func ConsumedPerBin(d *entity.JobDraft) map[string]decimal.Decimal {
	consumed := map[string]decimal.Decimal{}
	for _, line := range d.InboundLines {
		if line.SourceType != entity.SourceTypeBin || line.BinLocation == "" {
			continue
		}
		consumed[line.BinLocation] = consumed[line.BinLocation].Add(line.NetWeight)
	}
	return consumed
}

func hasBoxOrCustomSource(d *entity.JobDraft) bool {
	for _, line := range d.InboundLines {
		switch line.SourceType {
		case entity.SourceTypeBoxID:
			if line.BoxID != "" {
				return true
			}
		case entity.SourceTypeCustom:
			if line.LotNumber != "" || line.Product != "" {
				return true
			}
		}
	}
	return false
}
