package models

import (
	"time"
)

// Experience level values the generator is asked to choose from.
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// JobType constants
const (
	JobTypeFullTime  = "full-time"
	JobTypePartTime  = "part-time"
	JobTypeContract  = "contract"
	JobTypeFreelance = "freelance"
)

// JobPosting is a single AI-generated listing. Postings are ephemeral: they are
// never persisted and the whole list is replaced on every search.
type JobPosting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Posted          string   `json:"posted"`
	Requirements    []string `json:"requirements"`
	Remote          bool     `json:"remote"`
	ExperienceLevel string   `json:"experience_level"`
}

// SavedJob links a user to a bookmarked posting id. Rows live in the remote
// saved_jobs collection; the fallback store only mirrors the job ids.
type SavedJob struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	JobID     string    `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}

// User is the slice of the auth provider's account we care about.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is what a successful login returns to the client.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
