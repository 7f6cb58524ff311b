package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

// Box numbers count up from the highest existing number, so removing a middle
// line never reissues an already-printed label.
func TestAddOutput_Numbering(t *testing.T) {
	d := entity.NewJobDraft(job.TypeSpiral)

	first := job.AddOutput(d, "clean")
	second := job.AddOutput(d, "clean")
	third := job.AddOutput(d, "clean")
	assert.Equal(t, 1, first.BoxNumber)
	assert.Equal(t, 2, second.BoxNumber)
	assert.Equal(t, 3, third.BoxNumber)

	require.NoError(t, job.RemoveOutput(d, "clean", 1))
	next := job.AddOutput(d, "clean")
	assert.Equal(t, 4, next.BoxNumber, "numbers never go backwards after a removal")

	// Categories number independently.
	other := job.AddOutput(d, "reruns")
	assert.Equal(t, 1, other.BoxNumber)
}

func TestRemoveOutput_OutOfRange(t *testing.T) {
	d := entity.NewJobDraft(job.TypeSpiral)
	job.AddOutput(d, "clean")

	assert.Error(t, job.RemoveOutput(d, "clean", 5))
	assert.Error(t, job.RemoveOutput(d, "clean", -1))
	assert.Error(t, job.RemoveOutput(d, "nope", 0))
}

func TestAddRemoveInbound(t *testing.T) {
	d := entity.NewJobDraft(job.TypeQsage)

	line := job.AddInbound(d, entity.SourceTypeBoxID)
	line.BoxID = "QS900C1"
	job.AddInbound(d, entity.SourceTypeBin)
	require.Len(t, d.InboundLines, 2)

	require.NoError(t, job.RemoveInbound(d, 0))
	require.Len(t, d.InboundLines, 1)
	assert.Equal(t, entity.SourceTypeBin, d.InboundLines[0].SourceType)

	assert.Error(t, job.RemoveInbound(d, 7))
}

// AddSourceBin snapshots the location; later mutation of the location does
// not leak into the draft.
func TestAddSourceBin_Snapshots(t *testing.T) {
	d := entity.NewJobDraft(job.TypeQsage)
	loc := &entity.StorageLocation{
		Location:      "HQ-1",
		LotNumbers:    []string{"L-100"},
		Products:      []string{"Rye"},
		CurrentWeight: dec("1000"),
	}

	job.AddSourceBin(d, loc)
	loc.LotNumbers[0] = "CHANGED"
	loc.CurrentWeight = dec("1")

	require.Len(t, d.SourceBins, 1)
	assert.Equal(t, []string{"L-100"}, d.SourceBins[0].LotNumbers)
	assert.True(t, dec("1000").Equal(d.SourceBins[0].CurrentWeight))
}

func TestSetOutputWeight(t *testing.T) {
	tares := testTares(map[string]string{"PB-1": "52.0"})
	d := entity.NewJobDraft(job.TypeSpiral)
	job.AddOutput(d, "clean")

	require.NoError(t, job.SetOutputWeight(d, "clean", 0, "1,052.0", tares))
	assert.True(t, dec("1052.0").Equal(d.OutputLines["clean"][0].NetWeight))

	require.NoError(t, job.SetOutputTare(d, "clean", 0, true, "PB-1", tares))
	assert.True(t, dec("1000.0").Equal(d.OutputLines["clean"][0].NetWeight))

	assert.Error(t, job.SetOutputWeight(d, "clean", 9, "1", tares))
}
