package storage

import (
	"context"
	"fmt"
	"time"

	supabase "github.com/nedpals/supabase-go"

	"github.com/careerspark/jobspark-backend/internal/models"
)

const savedJobsTable = "saved_jobs"

// SupabaseStore persists saved jobs in a Supabase collection via the
// nedpals/supabase-go SDK.
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) ListJobIDs(ctx context.Context, userID string) ([]string, error) {
	var rows []models.SavedJob
	err := s.client.DB.From(savedJobsTable).
		Select("*").
		Eq("user_id", userID).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.JobID)
	}
	return ids, nil
}

func (s *SupabaseStore) Create(ctx context.Context, saved *models.SavedJob) error {
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}

	var results []models.SavedJob
	err := s.client.DB.From(savedJobsTable).
		Insert(*saved).
		ExecuteWithContext(ctx, &results)
	if err != nil {
		return fmt.Errorf("create saved job: %w", err)
	}
	return nil
}

func (s *SupabaseStore) Delete(ctx context.Context, userID, jobID string) error {
	var results []models.SavedJob
	err := s.client.DB.From(savedJobsTable).
		Delete().
		Eq("user_id", userID).
		Eq("job_id", jobID).
		ExecuteWithContext(ctx, &results)
	if err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	return nil
}
