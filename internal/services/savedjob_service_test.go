package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/models"
	"github.com/careerspark/jobspark-backend/internal/storage"
)

type fakeRemoteStore struct {
	rows       map[string][]string
	failList   bool
	failCreate bool
	failDelete bool

	createCalls int
	deleteCalls int
}

func newFakeRemoteStore() *fakeRemoteStore {
	return &fakeRemoteStore{rows: make(map[string][]string)}
}

func (f *fakeRemoteStore) ListJobIDs(ctx context.Context, userID string) ([]string, error) {
	if f.failList {
		return nil, errors.New("remote unavailable")
	}
	return f.rows[userID], nil
}

func (f *fakeRemoteStore) Create(ctx context.Context, saved *models.SavedJob) error {
	f.createCalls++
	if f.failCreate {
		return errors.New("remote unavailable")
	}
	f.rows[saved.UserID] = append(f.rows[saved.UserID], saved.JobID)
	return nil
}

func (f *fakeRemoteStore) Delete(ctx context.Context, userID, jobID string) error {
	f.deleteCalls++
	if f.failDelete {
		return errors.New("remote unavailable")
	}
	ids := f.rows[userID]
	for i, id := range ids {
		if id == jobID {
			f.rows[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func newTestService(t *testing.T, remote storage.SavedJobStore) (*SavedJobService, *storage.FallbackStore) {
	t.Helper()
	fallback := storage.NewFallbackStore(filepath.Join(t.TempDir(), "saved_jobs.json"))
	return NewSavedJobService(remote, fallback, zap.NewNop()), fallback
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestToggle_AddThenRemove(t *testing.T) {
	remote := newFakeRemoteStore()
	svc, fallback := newTestService(t, remote)
	ctx := context.Background()

	saved, ids := svc.Toggle(ctx, "u1", "job-1")
	if !saved {
		t.Error("first Toggle should report saved=true")
	}
	if !contains(ids, "job-1") {
		t.Errorf("first Toggle ids = %v, want job-1 present", ids)
	}
	if stored, _ := fallback.Get("u1"); !contains(stored, "job-1") {
		t.Errorf("fallback after save = %v, want job-1 present", stored)
	}
	if remote.createCalls != 1 {
		t.Errorf("remote create calls = %d, want 1", remote.createCalls)
	}

	saved, ids = svc.Toggle(ctx, "u1", "job-1")
	if saved {
		t.Error("second Toggle should report saved=false")
	}
	if contains(ids, "job-1") {
		t.Errorf("second Toggle ids = %v, want job-1 absent", ids)
	}
	if stored, _ := fallback.Get("u1"); contains(stored, "job-1") {
		t.Errorf("fallback after unsave = %v, want job-1 absent", stored)
	}
	if remote.deleteCalls != 1 {
		t.Errorf("remote delete calls = %d, want 1", remote.deleteCalls)
	}
}

// The optimistic dual-write: a dead remote must not stop the local state from
// moving.
func TestToggle_RemoteFailureStillUpdatesFallback(t *testing.T) {
	remote := newFakeRemoteStore()
	remote.failList = true
	remote.failCreate = true
	remote.failDelete = true
	svc, fallback := newTestService(t, remote)
	ctx := context.Background()

	saved, ids := svc.Toggle(ctx, "u1", "job-1")
	if !saved {
		t.Error("Toggle should report saved=true despite remote failure")
	}
	if !contains(ids, "job-1") {
		t.Errorf("Toggle ids = %v, want job-1 present", ids)
	}
	if stored, _ := fallback.Get("u1"); !contains(stored, "job-1") {
		t.Errorf("fallback = %v, want job-1 present", stored)
	}

	saved, _ = svc.Toggle(ctx, "u1", "job-1")
	if saved {
		t.Error("second Toggle should report saved=false despite remote failure")
	}
	if stored, _ := fallback.Get("u1"); contains(stored, "job-1") {
		t.Errorf("fallback after unsave = %v, want job-1 absent", stored)
	}
}

func TestList_PrefersRemote(t *testing.T) {
	remote := newFakeRemoteStore()
	remote.rows["u1"] = []string{"job-7"}
	svc, fallback := newTestService(t, remote)

	if err := fallback.Put("u1", []string{"stale-job"}); err != nil {
		t.Fatalf("seeding fallback: %v", err)
	}

	ids := svc.List(context.Background(), "u1")
	if !contains(ids, "job-7") || contains(ids, "stale-job") {
		t.Errorf("List = %v, want remote view [job-7]", ids)
	}
}

func TestList_FallsBackOnRemoteError(t *testing.T) {
	remote := newFakeRemoteStore()
	remote.failList = true
	svc, fallback := newTestService(t, remote)

	if err := fallback.Put("u1", []string{"job-3"}); err != nil {
		t.Fatalf("seeding fallback: %v", err)
	}

	ids := svc.List(context.Background(), "u1")
	if !contains(ids, "job-3") {
		t.Errorf("List = %v, want fallback view [job-3]", ids)
	}
}

func TestList_EmptyWhenBothTiersEmpty(t *testing.T) {
	remote := newFakeRemoteStore()
	remote.failList = true
	svc, _ := newTestService(t, remote)

	ids := svc.List(context.Background(), "u1")
	if len(ids) != 0 {
		t.Errorf("List = %v, want empty", ids)
	}
}
