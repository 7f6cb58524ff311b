package job_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

// testTares is a fixed in-memory tare registry for the weight tests.
func testTares(weights map[string]string) job.TareLookup {
	return func(id string) (decimal.Decimal, bool) {
		w, ok := weights[id]
		if !ok {
			return decimal.Zero, false
		}
		return decimal.RequireFromString(w), true
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNetWeight_SubtractsTare(t *testing.T) {
	tares := testTares(map[string]string{"PB-7": "52.0"})

	net := job.NetWeight(dec("1052.0"), true, "PB-7", tares)
	assert.True(t, dec("1000.0").Equal(net), "net = gross - tare")
}

// A tare heavier than the gross clamps to zero rather than going negative.
func TestNetWeight_ClampsAtZero(t *testing.T) {
	tares := testTares(map[string]string{"PB-7": "50.0"})

	net := job.NetWeight(dec("45.5"), true, "PB-7", tares)
	assert.True(t, net.IsZero(), "net must clamp at zero, got %s", net)
}

func TestNetWeight_NoPhysicalBox_ReturnsGross(t *testing.T) {
	tares := testTares(map[string]string{"PB-7": "52.0"})

	net := job.NetWeight(dec("100"), false, "PB-7", tares)
	assert.True(t, dec("100").Equal(net), "tare only applies when the toggle is on")

	net = job.NetWeight(dec("100"), true, "", tares)
	assert.True(t, dec("100").Equal(net), "empty box id means no tare")
}

// An unknown physical box id counts as tare 0.
func TestNetWeight_UnknownBox_TareZero(t *testing.T) {
	tares := testTares(map[string]string{})

	net := job.NetWeight(dec("100"), true, "NOPE", tares)
	assert.True(t, dec("100").Equal(net))
}

// Toggling the tare on and back off restores the original net exactly.
func TestSetInboundTare_ToggleRoundTrip(t *testing.T) {
	tares := testTares(map[string]string{"PB-1": "52.0"})
	d := entity.NewJobDraft("qsage")
	job.AddInbound(d, entity.SourceTypeBin)
	require.NoError(t, job.SetInboundWeight(d, 0, "1052.0", tares))

	require.NoError(t, job.SetInboundTare(d, 0, true, "PB-1", tares))
	assert.True(t, dec("1000.0").Equal(d.InboundLines[0].NetWeight))

	require.NoError(t, job.SetInboundTare(d, 0, false, "", tares))
	assert.True(t, dec("1052.0").Equal(d.InboundLines[0].NetWeight),
		"toggling off must restore net == gross")
}

func TestParseWeight(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1000", "1000"},
		{"  45.5 ", "45.5"},
		{"1,052.5", "1052.5"},
		{"", "0"},
		{"abc", "0"},
		{"12.3.4", "0"},
	}
	for _, tc := range cases {
		got := job.ParseWeight(tc.raw)
		assert.True(t, dec(tc.want).Equal(got), "ParseWeight(%q) = %s, want %s", tc.raw, got, tc.want)
	}
}

// RecomputeNets reparses raw inputs, so a stale stored net never survives.
func TestRecomputeNets_OverridesStoredNets(t *testing.T) {
	tares := testTares(map[string]string{"PB-1": "52.0"})
	d := entity.NewJobDraft("qsage")
	d.InboundLines = []entity.InboundLine{{
		SourceType:     entity.SourceTypeBin,
		GrossInput:     "1052.0",
		UsePhysicalBox: true,
		PhysicalBoxID:  "PB-1",
		NetWeight:      dec("999999"), // stale client value
	}}
	d.OutputLines["clean"] = []entity.OutputLine{{
		BoxNumber:  1,
		GrossInput: "45.5",
		NetWeight:  dec("-3"),
	}}

	job.RecomputeNets(d, tares)

	assert.True(t, dec("1000.0").Equal(d.InboundLines[0].NetWeight))
	assert.True(t, dec("45.5").Equal(d.OutputLines["clean"][0].NetWeight))
}
