package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FallbackStore {
	t.Helper()
	return NewFallbackStore(filepath.Join(t.TempDir(), "saved_jobs.json"))
}

func TestGet_MissingFile(t *testing.T) {
	store := newTestStore(t)

	ids, err := store.Get("u1")
	if err != nil {
		t.Fatalf("Get on missing file returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Get on missing file = %v, want empty", ids)
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := []string{"job-1", "job-2"}
	if err := store.Put("u1", want); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	got, err := store.Get("u1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Get = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Get[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPut_RewritesList(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put("u1", []string{"job-1", "job-2"}); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := store.Put("u1", []string{"job-2"}); err != nil {
		t.Fatalf("second Put returned error: %v", err)
	}

	got, err := store.Get("u1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != 1 || got[0] != "job-2" {
		t.Errorf("Get after rewrite = %v, want [job-2]", got)
	}
}

func TestPut_IsolatesUsers(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put("u1", []string{"job-1"}); err != nil {
		t.Fatalf("Put u1 returned error: %v", err)
	}
	if err := store.Put("u2", []string{"job-9"}); err != nil {
		t.Fatalf("Put u2 returned error: %v", err)
	}

	got, err := store.Get("u1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != 1 || got[0] != "job-1" {
		t.Errorf("Get(u1) = %v, want [job-1]", got)
	}
}

func TestPut_UsesSavedJobsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_jobs.json")
	store := NewFallbackStore(path)

	if err := store.Put("u1", []string{"job-1"}); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading store file: %v", err)
	}
	var data map[string][]string
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("store file is not valid JSON: %v", err)
	}
	if _, ok := data["savedJobs_u1"]; !ok {
		t.Errorf("store file keys = %v, want savedJobs_u1 present", data)
	}
}

func TestSavedJobsKey(t *testing.T) {
	if got := SavedJobsKey("abc"); got != "savedJobs_abc" {
		t.Errorf("SavedJobsKey(abc) = %q, want savedJobs_abc", got)
	}
}
