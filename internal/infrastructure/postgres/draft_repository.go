package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo DraftRepository on PostgreSQL: one JSONB payload per
// (user, job type). The payload stays opaque here; versioning and defaults
// are the application layer's business.
type DraftRepo struct {
	q Querier
}

// NewDraftRepository builds the adapter. Pass pool or tx (Querier).
func NewDraftRepository(q Querier) *DraftRepo {
	return &DraftRepo{q: q}
}

// Get returns the stored payload, or (nil, nil) when absent.
func (r *DraftRepo) Get(userID, jobType string) ([]byte, error) {
	var payload []byte
	err := r.q.QueryRow(context.Background(),
		`SELECT payload FROM job_drafts WHERE user_id = $1 AND job_type = $2`,
		userID, jobType).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return payload, nil
}

// Upsert inserts or replaces the payload for a (user, job type).
func (r *DraftRepo) Upsert(userID, jobType string, payload []byte) error {
	query := `
		INSERT INTO job_drafts (user_id, job_type, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, job_type)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, userID, jobType, payload)
	if err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	return nil
}

// Delete removes the stored draft, if any.
func (r *DraftRepo) Delete(userID, jobType string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM job_drafts WHERE user_id = $1 AND job_type = $2`, userID, jobType)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
