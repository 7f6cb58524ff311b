package repository

// DraftRepository persistence port for in-progress job drafts, keyed per user
// and job type. Payloads are opaque JSON; schema migration and merging over
// defaults happen in the application layer. Get returns (nil, nil) when no
// draft is stored.
type DraftRepository interface {
	Get(userID, jobType string) ([]byte, error)
	Upsert(userID, jobType string, payload []byte) error
	Delete(userID, jobType string) error
}
