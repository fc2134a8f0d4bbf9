package dtos

import "github.com/careerspark/jobspark-backend/internal/models"

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type JobListResponse struct {
	Jobs []models.JobPosting `json:"jobs"`
}

// FeedResponse is the initial-load payload: generated postings plus the
// caller's current bookmark set, fetched in parallel.
type FeedResponse struct {
	Jobs        []models.JobPosting `json:"jobs"`
	SavedJobIDs []string            `json:"saved_job_ids"`
}

type ToggleSavedJobRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

type SavedJobsResponse struct {
	JobIDs []string `json:"job_ids"`
}

type ToggleSavedJobResponse struct {
	Saved  bool     `json:"saved"`
	JobIDs []string `json:"job_ids"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
