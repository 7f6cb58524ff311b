package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

func TestComputeTotals(t *testing.T) {
	d := entity.NewJobDraft("spiral")
	d.SourceBins = []entity.SourceBin{{
		Location:      "HQ-1",
		LotNumbers:    []string{"L-100", "L-101"},
		Products:      []string{"Rye"},
		CurrentWeight: dec("1500"),
	}}
	d.InboundLines = []entity.InboundLine{
		{SourceType: entity.SourceTypeBin, BinLocation: "HQ-1", NetWeight: dec("600")},
		{SourceType: entity.SourceTypeCustom, LotNumber: "L-200", Product: "Wheat", NetWeight: dec("400")},
	}
	d.OutputLines = map[string][]entity.OutputLine{
		"clean":  {{BoxNumber: 1, NetWeight: dec("700")}, {BoxNumber: 2, NetWeight: dec("200")}},
		"reruns": {{BoxNumber: 1, NetWeight: dec("50")}},
	}

	got := job.ComputeTotals(d)

	assert.True(t, dec("1000").Equal(got.InputTotal))
	assert.True(t, dec("900").Equal(got.Subtotals["clean"]))
	assert.True(t, dec("50").Equal(got.Subtotals["reruns"]))
	assert.True(t, dec("950").Equal(got.OutputTotal))
	assert.True(t, dec("50").Equal(got.Balance), "balance = input - output")
	assert.Equal(t, "L-100, L-101, L-200", got.LotNumbers)
	assert.Equal(t, "Rye, Wheat", got.Products)
}

// Totals are a pure function of the lines: recomputing twice gives the same
// numbers, and an empty draft yields all zeros.
func TestComputeTotals_EmptyDraft(t *testing.T) {
	d := entity.NewJobDraft("qsage")

	got := job.ComputeTotals(d)

	assert.True(t, got.InputTotal.IsZero())
	assert.True(t, got.OutputTotal.IsZero())
	assert.True(t, got.Balance.IsZero())
	assert.Empty(t, got.LotNumbers)
	assert.Empty(t, got.Products)
}

func TestCombineUnique(t *testing.T) {
	got := job.CombineUnique(
		[]string{"L-1", "L-2"},
		[]string{"L-2", " ", "L-3"},
		nil,
		[]string{" L-1 "},
	)
	assert.Equal(t, "L-1, L-2, L-3", got, "dedupe, trim, keep first-appearance order")

	assert.Equal(t, "", job.CombineUnique())
	assert.Equal(t, "", job.CombineUnique([]string{"", "  "}))
}
