// Package draft owns the persistence of in-progress job forms: explicit
// save/load/clear, schema migration of old payloads, and the debounced
// autosave policy shared by every job type.
package draft

import (
	"encoding/json"
	"fmt"

	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase save/load/clear for job drafts.
type UseCase struct {
	drafts        repository.DraftRepository
	physicalBoxes repository.PhysicalBoxRepository
}

// NewUseCase builds the use case.
func NewUseCase(drafts repository.DraftRepository, physicalBoxes repository.PhysicalBoxRepository) *UseCase {
	return &UseCase{drafts: drafts, physicalBoxes: physicalBoxes}
}

// Load reads the stored draft for a user and job type. The payload is
// migrated if it predates the current schema, then unmarshalled over the
// default draft so fields absent from an old payload take default values
// instead of zero-meaning ones. Nets are recomputed before returning.
func (uc *UseCase) Load(userID, jobType string) (*entity.JobDraft, error) {
	if _, ok := job.Lookup(jobType); !ok {
		return nil, domain.ErrUnknownJobType
	}
	raw, err := uc.drafts.Get(userID, jobType)
	if err != nil {
		return nil, err
	}
	d := entity.NewJobDraft(jobType)
	if raw != nil {
		migrated, err := Migrate(raw)
		if err != nil {
			return nil, fmt.Errorf("migrate draft: %w", err)
		}
		if err := json.Unmarshal(migrated, d); err != nil {
			return nil, fmt.Errorf("decode draft: %w", err)
		}
	}
	d.SchemaVersion = entity.DraftSchemaVersion
	d.JobType = jobType
	job.RecomputeNets(d, uc.tareLookup())
	return d, nil
}

// Save persists a draft immediately (the manual "Save Draft" action and the
// autosave flush both land here). Nets are recomputed server-side first.
func (uc *UseCase) Save(userID, jobType string, d *entity.JobDraft) error {
	if _, ok := job.Lookup(jobType); !ok {
		return domain.ErrUnknownJobType
	}
	d.SchemaVersion = entity.DraftSchemaVersion
	d.JobType = jobType
	job.RecomputeNets(d, uc.tareLookup())
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return uc.drafts.Upsert(userID, jobType, payload)
}

// Clear deletes the stored draft.
func (uc *UseCase) Clear(userID, jobType string) error {
	if _, ok := job.Lookup(jobType); !ok {
		return domain.ErrUnknownJobType
	}
	return uc.drafts.Delete(userID, jobType)
}

func (uc *UseCase) tareLookup() job.TareLookup {
	return func(id string) (decimal.Decimal, bool) {
		pb, err := uc.physicalBoxes.GetByID(id)
		if err != nil || pb == nil {
			return decimal.Zero, false
		}
		return pb.Weight, true
	}
}
