package draft_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/application/draft"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

type memDraftRepo struct {
	payloads map[string][]byte
}

func newMemDraftRepo() *memDraftRepo { return &memDraftRepo{payloads: map[string][]byte{}} }

func (r *memDraftRepo) Get(userID, jobType string) ([]byte, error) {
	return r.payloads[userID+"/"+jobType], nil
}

func (r *memDraftRepo) Upsert(userID, jobType string, payload []byte) error {
	r.payloads[userID+"/"+jobType] = payload
	return nil
}

func (r *memDraftRepo) Delete(userID, jobType string) error {
	delete(r.payloads, userID+"/"+jobType)
	return nil
}

type memTareRepo struct {
	tares map[string]decimal.Decimal
}

func (r *memTareRepo) Create(*entity.PhysicalBox) error             { return nil }
func (r *memTareRepo) List(int, int) ([]*entity.PhysicalBox, error) { return nil, nil }
func (r *memTareRepo) Update(*entity.PhysicalBox) error             { return nil }
func (r *memTareRepo) Delete(string) error                          { return nil }

func (r *memTareRepo) GetByID(id string) (*entity.PhysicalBox, error) {
	w, ok := r.tares[id]
	if !ok {
		return nil, nil
	}
	return &entity.PhysicalBox{ID: id, Weight: w}, nil
}

func newTestUseCase() (*draft.UseCase, *memDraftRepo) {
	repo := newMemDraftRepo()
	uc := draft.NewUseCase(repo, &memTareRepo{tares: map[string]decimal.Decimal{"PB-1": decimal.RequireFromString("52")}})
	return uc, repo
}

// Save then Load round-trips the whole form state.
func TestSaveLoad_RoundTrip(t *testing.T) {
	uc, _ := newTestUseCase()

	d := entity.NewJobDraft(job.TypeQsage)
	d.ProcessID = "QS1042"
	d.JobDate = "2026-08-30"
	d.Supplier = "Acme Seed Co"
	d.Notes = "second pass"
	d.InboundLines = []entity.InboundLine{{
		SourceType: entity.SourceTypeBin, BinLocation: "HQ-1", GrossInput: "1052",
		UsePhysicalBox: true, PhysicalBoxID: "PB-1",
	}}
	require.NoError(t, uc.Save("u1", job.TypeQsage, d))

	got, err := uc.Load("u1", job.TypeQsage)
	require.NoError(t, err)

	assert.Equal(t, "QS1042", got.ProcessID)
	assert.Equal(t, "Acme Seed Co", got.Supplier)
	assert.Equal(t, "second pass", got.Notes)
	require.Len(t, got.InboundLines, 1)
	assert.True(t, decimal.RequireFromString("1000").Equal(got.InboundLines[0].NetWeight),
		"nets recomputed from raw input and tare on load")
}

// Loading with no stored draft yields the default empty form, not an error.
func TestLoad_NoStoredDraft(t *testing.T) {
	uc, _ := newTestUseCase()

	got, err := uc.Load("u1", job.TypeSpiral)
	require.NoError(t, err)
	assert.Equal(t, entity.DraftSchemaVersion, got.SchemaVersion)
	assert.Equal(t, job.TypeSpiral, got.JobType)
	assert.Empty(t, got.InboundLines)
	assert.NotNil(t, got.OutputLines)
}

// Fields absent from an old payload fall back to defaults instead of
// clobbering the struct with zero values.
func TestLoad_MergesOverDefaults(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.payloads["u1/qsage"] = []byte(`{"schema_version":2,"process_id":"QS7"}`)

	got, err := uc.Load("u1", job.TypeQsage)
	require.NoError(t, err)
	assert.Equal(t, "QS7", got.ProcessID)
	assert.Equal(t, "", got.Notes)
	assert.NotNil(t, got.OutputLines, "absent map takes the constructor default")
}

// A v1 payload (no schema_version, supplier stored as vendor) migrates on
// load.
func TestLoad_MigratesV1Payload(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.payloads["u1/qsage"] = []byte(`{"process_id":"QS7","vendor":"Acme Seed Co"}`)

	got, err := uc.Load("u1", job.TypeQsage)
	require.NoError(t, err)
	assert.Equal(t, entity.DraftSchemaVersion, got.SchemaVersion)
	assert.Equal(t, "Acme Seed Co", got.Supplier)
}

func TestLoad_UnknownJobType(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Load("u1", "washing")
	assert.ErrorIs(t, err, domain.ErrUnknownJobType)
}

// Save stamps the current schema version even when the client sent an old
// one.
func TestSave_StampsSchemaVersion(t *testing.T) {
	uc, repo := newTestUseCase()

	d := entity.NewJobDraft(job.TypeQsage)
	d.SchemaVersion = 1
	require.NoError(t, uc.Save("u1", job.TypeQsage, d))

	var m map[string]any
	require.NoError(t, json.Unmarshal(repo.payloads["u1/qsage"], &m))
	assert.EqualValues(t, entity.DraftSchemaVersion, m["schema_version"])
}

func TestClear(t *testing.T) {
	uc, repo := newTestUseCase()
	require.NoError(t, uc.Save("u1", job.TypeQsage, entity.NewJobDraft(job.TypeQsage)))
	require.NoError(t, uc.Clear("u1", job.TypeQsage))
	assert.Empty(t, repo.payloads)

	assert.ErrorIs(t, uc.Clear("u1", "washing"), domain.ErrUnknownJobType)
}
