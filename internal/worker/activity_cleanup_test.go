package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
)

type recordingActivityRepo struct {
	mu      sync.Mutex
	cutoffs []time.Time
}

func (r *recordingActivityRepo) Create(_ context.Context, _ *model.Activity) error { return nil }

func (r *recordingActivityRepo) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]*model.Activity, error) {
	return nil, nil
}

func (r *recordingActivityRepo) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cutoffs = append(r.cutoffs, cutoff)
	return 1, nil
}

func TestCleanupUsesRetentionCutoff(t *testing.T) {
	repo := &recordingActivityRepo{}
	w := NewActivityCleanupWorker(repo, 90, time.Hour)

	err := w.cleanup(context.Background())
	assert.NoError(t, err)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.cutoffs, 1)

	expected := time.Now().AddDate(0, 0, -90)
	assert.WithinDuration(t, expected, repo.cutoffs[0], time.Minute)
}

func TestStartStopsOnContextCancel(t *testing.T) {
	repo := &recordingActivityRepo{}
	w := NewActivityCleanupWorker(repo, 30, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.NotEmpty(t, repo.cutoffs)
}
