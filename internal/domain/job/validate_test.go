package job_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

// validDraft builds a draft that passes every completion rule for Qsage.
func validDraft() *entity.JobDraft {
	d := entity.NewJobDraft(job.TypeQsage)
	d.ProcessID = "QS1042"
	d.JobDate = "2026-08-30"
	d.Employee = "Dana"
	d.SourceBins = []entity.SourceBin{{
		Location:      "HQ-1",
		LotNumbers:    []string{"L-100"},
		Products:      []string{"Rye"},
		CurrentWeight: dec("1000"),
	}}
	d.InboundLines = []entity.InboundLine{
		{SourceType: entity.SourceTypeBin, BinLocation: "HQ-1", NetWeight: dec("1000")},
	}
	d.OutputLines = map[string][]entity.OutputLine{
		"clean": {{BoxNumber: 1, NetWeight: dec("1000"), StorageLocation: "W-4"}},
	}
	return d
}

func qsageConfig(t *testing.T) job.Config {
	t.Helper()
	cfg, ok := job.Lookup(job.TypeQsage)
	require.True(t, ok)
	return cfg
}

func TestValidate_ValidDraftPasses(t *testing.T) {
	res := job.Validate(validDraft(), qsageConfig(t))
	assert.True(t, res.OK(), "errors=%v warnings=%v", res.Errors, res.Warnings)
}

func TestValidate_MissingProcessID(t *testing.T) {
	d := validDraft()
	d.ProcessID = ""

	res := job.Validate(d, qsageConfig(t))
	assert.Contains(t, res.Errors, "Process ID is required")
}

func TestValidate_MissingEmployee(t *testing.T) {
	d := validDraft()
	d.Employee = ""

	res := job.Validate(d, qsageConfig(t))
	assert.NotEmpty(t, res.Errors)

	// Order fulfillment has no employee requirement.
	ofCfg, ok := job.Lookup(job.TypeOrderFulfillment)
	require.True(t, ok)
	d = validDraft()
	d.Employee = ""
	d.OutputLines = map[string][]entity.OutputLine{
		"pallets": {{BoxNumber: 1, NetWeight: dec("1000")}},
	}
	res = job.Validate(d, ofCfg)
	assert.True(t, res.OK(), "errors=%v", res.Errors)
}

func TestValidate_NoSources(t *testing.T) {
	d := validDraft()
	d.SourceBins = nil
	d.InboundLines = nil

	res := job.Validate(d, qsageConfig(t))
	assert.Contains(t, res.Errors, "Add at least one source (bin, box scan, or custom entry)")
}

// A scanned box or a manual lot/product entry counts as a source even with no
// bins selected.
func TestValidate_BoxScanCountsAsSource(t *testing.T) {
	d := validDraft()
	d.SourceBins = nil
	d.InboundLines = []entity.InboundLine{
		{SourceType: entity.SourceTypeBoxID, BoxID: "QS900C1", NetWeight: dec("1000")},
	}

	res := job.Validate(d, qsageConfig(t))
	assert.True(t, res.OK(), "errors=%v warnings=%v", res.Errors, res.Warnings)
}

func TestValidate_RequiresPositiveLines(t *testing.T) {
	d := validDraft()
	d.InboundLines[0].NetWeight = dec("0")
	d.OutputLines["clean"][0].NetWeight = dec("0")

	res := job.Validate(d, qsageConfig(t))
	assert.Contains(t, res.Errors, "Add at least one inbound line with a positive net weight")
	assert.Contains(t, res.Errors, "Add at least one output line with a positive net weight")
}

// Two output lines that would print the same generated box ID block
// completion outright; the collision can span categories that share a code.
func TestValidate_DuplicateBoxIDs(t *testing.T) {
	d := validDraft()
	d.OutputLines["clean"] = []entity.OutputLine{
		{BoxNumber: 1, NetWeight: dec("500")},
		{BoxNumber: 1, NetWeight: dec("500")},
	}

	res := job.Validate(d, qsageConfig(t))
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Duplicate box ID QS1042C1")
}

// Output lines under a key the job type does not define inflate the computed
// totals without ever being stored, so they block completion.
func TestValidate_UnknownOutputCategory(t *testing.T) {
	d := validDraft()
	d.OutputLines["clean"][0].NetWeight = dec("500")
	d.OutputLines["bogus"] = []entity.OutputLine{
		{BoxNumber: 1, NetWeight: dec("500")},
	}

	res := job.Validate(d, qsageConfig(t))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Unknown output category bogus for Qsage jobs", res.Errors[0])

	// A leftover empty slice under a stale key is harmless.
	d = validDraft()
	d.OutputLines["bogus"] = nil
	res = job.Validate(d, qsageConfig(t))
	assert.True(t, res.OK(), "errors=%v warnings=%v", res.Errors, res.Warnings)
}

func TestValidate_OutputExceedsInput_Warns(t *testing.T) {
	d := validDraft()
	d.OutputLines["clean"][0].NetWeight = dec("1200")

	res := job.Validate(d, qsageConfig(t))
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "exceeds input weight")
}

func TestValidate_BinOverdraw_Warns(t *testing.T) {
	d := validDraft()
	d.InboundLines = append(d.InboundLines, entity.InboundLine{
		SourceType: entity.SourceTypeBin, BinLocation: "HQ-1", NetWeight: dec("500"),
	})
	d.OutputLines["clean"][0].NetWeight = dec("1500")

	res := job.Validate(d, qsageConfig(t))
	assert.Empty(t, res.Errors)
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "Bin HQ-1") && strings.Contains(w, "1500.0") {
			found = true
		}
	}
	assert.True(t, found, "expected an overdraw warning, got %v", res.Warnings)
}

func TestConsumedPerBin(t *testing.T) {
	d := entity.NewJobDraft(job.TypeSpiral)
	d.InboundLines = []entity.InboundLine{
		{SourceType: entity.SourceTypeBin, BinLocation: "HQ-1", NetWeight: dec("300")},
		{SourceType: entity.SourceTypeBin, BinLocation: "HQ-1", NetWeight: dec("200")},
		{SourceType: entity.SourceTypeBin, BinLocation: "HQ-2", NetWeight: dec("100")},
		{SourceType: entity.SourceTypeCustom, LotNumber: "L-1", NetWeight: dec("50")},
	}

	got := job.ConsumedPerBin(d)
	require.Len(t, got, 2)
	assert.True(t, dec("500").Equal(got["HQ-1"]))
	assert.True(t, dec("100").Equal(got["HQ-2"]))
}
