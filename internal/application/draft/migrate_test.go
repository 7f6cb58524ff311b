package draft_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/application/draft"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
)

func migrateToMap(t *testing.T, raw string) map[string]any {
	t.Helper()
	out, err := draft.Migrate([]byte(raw))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestMigrate_V1RenamesVendor(t *testing.T) {
	m := migrateToMap(t, `{"process_id":"QS7","vendor":"Acme Seed Co"}`)

	assert.EqualValues(t, entity.DraftSchemaVersion, m["schema_version"])
	assert.Equal(t, "Acme Seed Co", m["supplier"])
	_, hasVendor := m["vendor"]
	assert.False(t, hasVendor)
}

// A payload that already carries both keys keeps the supplier value.
func TestMigrate_SupplierWins(t *testing.T) {
	m := migrateToMap(t, `{"vendor":"Old Co","supplier":"New Co"}`)
	assert.Equal(t, "New Co", m["supplier"])
}

// Current payloads pass through byte-identical.
func TestMigrate_CurrentVersionUnchanged(t *testing.T) {
	raw := []byte(`{"schema_version":2,"process_id":"QS7"}`)
	out, err := draft.Migrate(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestMigrate_InvalidJSON(t *testing.T) {
	_, err := draft.Migrate([]byte(`{nope`))
	assert.Error(t, err)
}
