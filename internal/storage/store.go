package storage

import (
	"context"

	"github.com/careerspark/jobspark-backend/internal/models"
)

// SavedJobStore is the remote bookmark collection. Callers treat every method
// as best-effort and fall back to local storage on error.
type SavedJobStore interface {
	ListJobIDs(ctx context.Context, userID string) ([]string, error)
	Create(ctx context.Context, saved *models.SavedJob) error
	Delete(ctx context.Context, userID, jobID string) error
}
