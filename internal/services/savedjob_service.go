package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/models"
	"github.com/careerspark/jobspark-backend/internal/storage"
)

// SavedJobService keeps a user's bookmark set across two tiers: the remote
// collection (best-effort) and the local fallback file (always rewritten).
// The tiers are allowed to diverge; there is no reconciliation pass.
type SavedJobService struct {
	remote   storage.SavedJobStore
	fallback *storage.FallbackStore
	logger   *zap.Logger
}

func NewSavedJobService(remote storage.SavedJobStore, fallback *storage.FallbackStore, logger *zap.Logger) *SavedJobService {
	return &SavedJobService{
		remote:   remote,
		fallback: fallback,
		logger:   logger,
	}
}

// List returns the user's saved job ids from the remote collection, degrading
// to the local fallback when the remote call fails. It never returns an error:
// the worst case is an empty set.
func (s *SavedJobService) List(ctx context.Context, userID string) []string {
	ids, err := s.remote.ListJobIDs(ctx, userID)
	if err == nil {
		return ids
	}

	s.logger.Warn("remote saved-job list failed, using fallback",
		zap.String("user_id", userID),
		zap.Error(err),
	)

	ids, err = s.fallback.Get(userID)
	if err != nil {
		s.logger.Error("fallback read failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return ids
}

// Toggle flips the bookmark state of jobID for the user and returns the new
// state plus the full id set. The remote write is best-effort; the in-memory
// result and the fallback file are updated regardless of its outcome.
func (s *SavedJobService) Toggle(ctx context.Context, userID, jobID string) (bool, []string) {
	ids := s.List(ctx, userID)

	idx := -1
	for i, id := range ids {
		if id == jobID {
			idx = i
			break
		}
	}

	var saved bool
	if idx >= 0 {
		if err := s.remote.Delete(ctx, userID, jobID); err != nil {
			s.logger.Warn("remote saved-job delete failed",
				zap.String("user_id", userID),
				zap.String("job_id", jobID),
				zap.Error(err),
			)
		}
		ids = append(ids[:idx], ids[idx+1:]...)
		saved = false
	} else {
		record := &models.SavedJob{
			ID:        uuid.NewString(),
			UserID:    userID,
			JobID:     jobID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.remote.Create(ctx, record); err != nil {
			s.logger.Warn("remote saved-job create failed",
				zap.String("user_id", userID),
				zap.String("job_id", jobID),
				zap.Error(err),
			)
		}
		ids = append(ids, jobID)
		saved = true
	}

	if err := s.fallback.Put(userID, ids); err != nil {
		s.logger.Error("fallback write failed", zap.String("user_id", userID), zap.Error(err))
	}

	return saved, ids
}
