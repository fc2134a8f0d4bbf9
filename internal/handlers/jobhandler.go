package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/auth"
	"github.com/careerspark/jobspark-backend/internal/cache"
	"github.com/careerspark/jobspark-backend/internal/dtos"
	"github.com/careerspark/jobspark-backend/internal/models"
	"github.com/careerspark/jobspark-backend/internal/services"
)

// JobHandler serves the generated-posting endpoints. Cache may be nil, in
// which case every search hits the generator.
type JobHandler struct {
	Generator   services.Generator
	SavedJobs   *services.SavedJobService
	Cache       *cache.Cache
	LLMTimeout  time.Duration
	FeedCount   int
	SearchCount int
	Logger      *zap.Logger
}

func NewJobHandler(generator services.Generator, savedJobs *services.SavedJobService, jobCache *cache.Cache, llmTimeout time.Duration, feedCount, searchCount int, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		Generator:   generator,
		SavedJobs:   savedJobs,
		Cache:       jobCache,
		LLMTimeout:  llmTimeout,
		FeedCount:   feedCount,
		SearchCount: searchCount,
		Logger:      logger,
	}
}

// Feed is the GET /jobs/feed endpoint: the initial page load. The posting
// generation and the saved-job lookup run concurrently.
func (h *JobHandler) Feed(c *gin.Context) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.LLMTimeout)
	defer cancel()

	var (
		wg       sync.WaitGroup
		jobs     []models.JobPosting
		genErr   error
		savedIDs []string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		jobs, genErr = h.Generator.GenerateJobs(ctx, "", h.FeedCount)
	}()
	go func() {
		defer wg.Done()
		savedIDs = h.SavedJobs.List(ctx, user.ID)
	}()
	wg.Wait()

	if genErr != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI generation failed: " + genErr.Error()})
		return
	}
	if savedIDs == nil {
		savedIDs = []string{}
	}

	c.JSON(http.StatusOK, dtos.FeedResponse{Jobs: jobs, SavedJobIDs: savedIDs})
}

// Search is the POST /jobs/search endpoint. A whitespace-only query is
// rejected before any generation call. Overlapping searches are independent
// requests; whichever response the client applies last wins.
func (h *JobHandler) Search(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}

	key := cache.SearchKey(query)
	if h.Cache != nil {
		if jobs, err := h.Cache.GetJobs(c.Request.Context(), key); err == nil {
			c.JSON(http.StatusOK, dtos.JobListResponse{Jobs: jobs})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.LLMTimeout)
	defer cancel()

	jobs, err := h.Generator.GenerateJobs(ctx, query, h.SearchCount)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI generation failed: " + err.Error()})
		return
	}

	if h.Cache != nil {
		if err := h.Cache.SetJobs(c.Request.Context(), key, jobs, cache.SearchCacheTTL); err != nil {
			h.Logger.Warn("search cache write failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, dtos.JobListResponse{Jobs: jobs})
}
