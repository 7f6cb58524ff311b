package draft

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/pkg/config"
)

type savedCall struct {
	userID  string
	jobType string
}

type recordingSaver struct {
	mu    sync.Mutex
	calls []savedCall
	err   error
}

func (s *recordingSaver) save(userID, jobType string, _ *entity.JobDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, savedCall{userID: userID, jobType: jobType})
	return nil
}

func (s *recordingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func testAutosaver(saver *recordingSaver) (*Autosaver, time.Time) {
	a := NewAutosaver(config.AutosaveConfig{
		Idle:        5 * time.Second,
		MinInterval: 60 * time.Second,
		FlushEvery:  2 * time.Second,
	}, saver.save)
	t0 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	return a, t0
}

// Nothing flushes while the user is still typing.
func TestAutosaver_WaitsForIdle(t *testing.T) {
	saver := &recordingSaver{}
	a, t0 := testAutosaver(saver)

	a.now = func() time.Time { return t0 }
	a.Touch("u1", "qsage", entity.NewJobDraft("qsage"))

	a.flush(t0.Add(2 * time.Second))
	assert.Equal(t, 0, saver.count(), "idle threshold not reached")

	a.flush(t0.Add(6 * time.Second))
	require.Equal(t, 1, saver.count())
	assert.Equal(t, savedCall{userID: "u1", jobType: "qsage"}, saver.calls[0])

	// Clean draft: a second tick saves nothing.
	a.flush(t0.Add(8 * time.Second))
	assert.Equal(t, 1, saver.count())
}

// Once saved, further edits wait out the minimum interval between autosaves.
func TestAutosaver_MinIntervalBetweenSaves(t *testing.T) {
	saver := &recordingSaver{}
	a, t0 := testAutosaver(saver)

	a.now = func() time.Time { return t0 }
	a.Touch("u1", "qsage", entity.NewJobDraft("qsage"))
	a.flush(t0.Add(6 * time.Second))
	require.Equal(t, 1, saver.count())

	a.now = func() time.Time { return t0.Add(10 * time.Second) }
	a.Touch("u1", "qsage", entity.NewJobDraft("qsage"))

	a.flush(t0.Add(20 * time.Second))
	assert.Equal(t, 1, saver.count(), "idle but within the minimum interval")

	a.flush(t0.Add(70 * time.Second))
	assert.Equal(t, 2, saver.count())
}

// Draft keys are independent: two users on the same page flush separately.
func TestAutosaver_PerUserPerType(t *testing.T) {
	saver := &recordingSaver{}
	a, t0 := testAutosaver(saver)

	a.now = func() time.Time { return t0 }
	a.Touch("u1", "qsage", entity.NewJobDraft("qsage"))
	a.Touch("u1", "sortex", entity.NewJobDraft("sortex"))
	a.Touch("u2", "qsage", entity.NewJobDraft("qsage"))

	a.flush(t0.Add(6 * time.Second))
	assert.Equal(t, 3, saver.count())
}

// A failed flush stays dirty and is retried on the next tick.
func TestAutosaver_RetriesFailedFlush(t *testing.T) {
	saver := &recordingSaver{err: errors.New("db down")}
	a, t0 := testAutosaver(saver)

	a.now = func() time.Time { return t0 }
	a.Touch("u1", "qsage", entity.NewJobDraft("qsage"))

	a.flush(t0.Add(6 * time.Second))
	assert.Equal(t, 0, saver.count())

	saver.mu.Lock()
	saver.err = nil
	saver.mu.Unlock()

	a.flush(t0.Add(8 * time.Second))
	assert.Equal(t, 1, saver.count())
}

// An edit that lands while a flush's save call is in progress stays dirty and
// is picked up on the next tick.
func TestAutosaver_EditDuringSaveIsNotLost(t *testing.T) {
	var (
		mu    sync.Mutex
		notes []string
	)
	entered := make(chan struct{})
	gate := make(chan struct{})
	first := true
	save := func(_, _ string, d *entity.JobDraft) error {
		if first {
			first = false
			close(entered)
			<-gate
		}
		mu.Lock()
		defer mu.Unlock()
		notes = append(notes, d.Notes)
		return nil
	}

	a := NewAutosaver(config.AutosaveConfig{
		Idle:        5 * time.Second,
		MinInterval: time.Second,
		FlushEvery:  2 * time.Second,
	}, save)
	t0 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return t0 }

	d1 := entity.NewJobDraft("qsage")
	d1.Notes = "first pass"
	a.Touch("u1", "qsage", d1)

	done := make(chan struct{})
	go func() {
		a.flush(t0.Add(6 * time.Second))
		close(done)
	}()
	<-entered

	a.now = func() time.Time { return t0.Add(6 * time.Second) }
	d2 := entity.NewJobDraft("qsage")
	d2.Notes = "second pass"
	a.Touch("u1", "qsage", d2)
	close(gate)
	<-done

	a.flush(t0.Add(20 * time.Second))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, notes, 2)
	assert.Equal(t, "first pass", notes[0])
	assert.Equal(t, "second pass", notes[1])
}

// Forget drops pending state so a stale flush cannot resurrect a cleared
// draft.
func TestAutosaver_Forget(t *testing.T) {
	saver := &recordingSaver{}
	a, t0 := testAutosaver(saver)

	a.now = func() time.Time { return t0 }
	a.Touch("u1", "qsage", entity.NewJobDraft("qsage"))
	a.Forget("u1", "qsage")

	a.flush(t0.Add(10 * time.Second))
	assert.Equal(t, 0, saver.count())
}
