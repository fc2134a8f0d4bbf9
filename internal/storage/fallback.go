package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FallbackStore is the local mirror of the saved-job set, used whenever the
// remote collection is unreachable. It keeps one JSON object on disk mapping
// "savedJobs_<userID>" to that user's bookmarked job ids — the same keying the
// browser-local storage of the original client used, so the two stay
// interchangeable.
type FallbackStore struct {
	path string
	mu   sync.Mutex
}

func NewFallbackStore(path string) *FallbackStore {
	return &FallbackStore{path: path}
}

// SavedJobsKey returns the storage key for a user's bookmark list.
func SavedJobsKey(userID string) string {
	return "savedJobs_" + userID
}

// Get returns the job ids stored for the user. A missing file or key yields an
// empty list, not an error.
func (s *FallbackStore) Get(userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data[SavedJobsKey(userID)], nil
}

// Put rewrites the user's job-id list. The whole list is replaced on every
// toggle, mirroring how the client rewrote its local storage entry.
func (s *FallbackStore) Put(userID string, jobIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if jobIDs == nil {
		jobIDs = []string{}
	}
	data[SavedJobsKey(userID)] = jobIDs

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create fallback dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open fallback store: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(data); err != nil {
		return fmt.Errorf("encode fallback store: %w", err)
	}
	return nil
}

func (s *FallbackStore) load() (map[string][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string][]string), nil
		}
		return nil, fmt.Errorf("open fallback store: %w", err)
	}
	defer f.Close()

	data := make(map[string][]string)
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode fallback store: %w", err)
	}
	return data, nil
}
