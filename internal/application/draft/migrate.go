package draft

import (
	"encoding/json"
	"fmt"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
)

// Migrate upgrades a stored draft payload to the current schema version.
// Drafts written before versioning existed carry no schema_version field and
// count as version 1. The payload is returned unchanged when already current.
//
// v1 -> v2: the supplier field was stored as "vendor".
func Migrate(raw []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	version := 1
	if v, ok := m["schema_version"].(float64); ok && v > 0 {
		version = int(v)
	}
	if version >= entity.DraftSchemaVersion {
		return raw, nil
	}

	if version < 2 {
		if vendor, ok := m["vendor"]; ok {
			if _, exists := m["supplier"]; !exists {
				m["supplier"] = vendor
			}
			delete(m, "vendor")
		}
	}

	m["schema_version"] = entity.DraftSchemaVersion
	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return out, nil
}
