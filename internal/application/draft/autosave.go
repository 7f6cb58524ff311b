package draft

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/pkg/config"
)

// SaveFunc persists one draft (normally UseCase.Save).
type SaveFunc func(userID, jobType string, d *entity.JobDraft) error

type pendingDraft struct {
	userID   string
	jobType  string
	draft    *entity.JobDraft
	lastEdit time.Time
	lastSave time.Time
	gen      uint64 // bumped on every Touch
	dirty    bool
}

// flushItem is the state captured under the lock for one due draft. The
// generation lets flush detect an edit that landed while its save call was
// running.
type flushItem struct {
	p     *pendingDraft
	draft *entity.JobDraft
	gen   uint64
}

// Autosaver applies one debounce+idle autosave policy to every job type:
// a touched draft is flushed once its owner has been idle for cfg.Idle and at
// least cfg.MinInterval has passed since its previous autosave. Flush
// failures are logged and retried on the next tick.
type Autosaver struct {
	cfg  config.AutosaveConfig
	save SaveFunc
	now  func() time.Time

	mu      sync.Mutex
	pending map[string]*pendingDraft
}

// NewAutosaver builds the autosaver.
func NewAutosaver(cfg config.AutosaveConfig, save SaveFunc) *Autosaver {
	return &Autosaver{
		cfg:     cfg,
		save:    save,
		now:     time.Now,
		pending: map[string]*pendingDraft{},
	}
}

// Touch records the latest draft state for a user and job type and marks it
// dirty. Called on every edit notification; the flush loop decides when the
// state actually hits storage.
func (a *Autosaver) Touch(userID, jobType string, d *entity.JobDraft) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := userID + "/" + jobType
	p, ok := a.pending[key]
	if !ok {
		p = &pendingDraft{userID: userID, jobType: jobType}
		a.pending[key] = p
	}
	p.draft = d
	p.lastEdit = a.now()
	p.gen++
	p.dirty = true
}

// Forget drops any pending state for a user and job type. Called after a
// manual save, a clear, or a completed job so a stale flush cannot resurrect
// the draft.
func (a *Autosaver) Forget(userID, jobType string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.pending, userID+"/"+jobType)
}

// Run flushes on a fixed tick until the context is cancelled.
func (a *Autosaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.FlushEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.flush(a.now())
		}
	}
}

func (a *Autosaver) flush(now time.Time) {
	a.mu.Lock()
	var due []flushItem
	for _, p := range a.pending {
		if !p.dirty {
			continue
		}
		if now.Sub(p.lastEdit) < a.cfg.Idle {
			continue
		}
		if !p.lastSave.IsZero() && now.Sub(p.lastSave) < a.cfg.MinInterval {
			continue
		}
		due = append(due, flushItem{p: p, draft: p.draft, gen: p.gen})
	}
	a.mu.Unlock()

	for _, it := range due {
		if err := a.save(it.p.userID, it.p.jobType, it.draft); err != nil {
			log.Error().Err(err).Str("job_type", it.p.jobType).Msg("autosave draft")
			continue
		}
		a.mu.Lock()
		it.p.lastSave = now
		// An edit that arrived while the save was running stays dirty so
		// the next tick picks up the newer state.
		if it.p.gen == it.gen {
			it.p.dirty = false
		}
		a.mu.Unlock()
	}
}
