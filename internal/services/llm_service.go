package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/models"
)

// Generator synthesizes job postings. An empty query means the fixed
// initial-feed prompt.
type Generator interface {
	GenerateJobs(ctx context.Context, query string, count int) ([]models.JobPosting, error)
}

type LLMService struct {
	client llms.Model
	logger *zap.Logger
}

func NewLLMService(ctx context.Context, apiKey, model string, logger *zap.Logger) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &LLMService{client: llm, logger: logger}, nil
}

const jobGenerationPrompt = `
You are a job board content generator. Produce %d realistic job postings %s.

### INSTRUCTIONS:
1. Vary companies, locations, salaries and seniority across the postings.
2. Use believable present-day companies and market-rate salary ranges.
3. Format the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "jobs": [
        {
            "id": "short unique string",
            "title": "Job title (e.g., Senior Backend Engineer)",
            "company": "Company name",
            "location": "City, Country or 'Remote'",
            "salary": "Salary range string (e.g., '$120k - $160k')",
            "type": "one of: full-time, part-time, contract, freelance",
            "description": "2-3 sentence summary of the role",
            "posted": "relative time string (e.g., '3 days ago')",
            "requirements": ["Array", "of", "requirement", "strings"],
            "remote": true,
            "experience_level": "one of: entry, mid, senior"
        }
    ]
}

### CONSTRAINT:
Return exactly %d postings in the "jobs" array. Every field must be present.
`

// GenerateJobs asks the model for count postings and parses its JSON reply.
// Failures leave the caller's current list untouched; there are no retries.
func (s *LLMService) GenerateJobs(ctx context.Context, query string, count int) ([]models.JobPosting, error) {
	subject := "for a general technology job board (a mix of popular software roles)"
	if q := strings.TrimSpace(query); q != "" {
		subject = fmt.Sprintf("matching the search query: %q", q)
	}

	prompt := fmt.Sprintf(jobGenerationPrompt, count, subject, count)

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate jobs: %w", err)
	}

	jobs, err := parseJobsPayload(resp)
	if err != nil {
		s.logger.Error("failed to parse generation response",
			zap.Error(err),
			zap.Int("response_len", len(resp)),
		)
		return nil, err
	}

	s.logger.Info("generated postings",
		zap.Int("requested", count),
		zap.Int("returned", len(jobs)),
	)
	return jobs, nil
}

// parseJobsPayload unwraps the model reply into postings. Models sometimes
// fence the JSON or prepend prose despite instructions, so the payload is the
// outermost {...} span of the reply.
func parseJobsPayload(raw string) ([]models.JobPosting, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in generation response")
	}

	var payload struct {
		Jobs []models.JobPosting `json:"jobs"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("parse generation response: %w", err)
	}
	if len(payload.Jobs) == 0 {
		return nil, fmt.Errorf("generation response contained no jobs")
	}

	for i := range payload.Jobs {
		if payload.Jobs[i].ID == "" {
			payload.Jobs[i].ID = uuid.NewString()
		}
	}
	return payload.Jobs, nil
}
