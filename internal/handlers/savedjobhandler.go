package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerspark/jobspark-backend/internal/auth"
	"github.com/careerspark/jobspark-backend/internal/dtos"
	"github.com/careerspark/jobspark-backend/internal/services"
)

type SavedJobHandler struct {
	SavedJobs *services.SavedJobService
}

func NewSavedJobHandler(savedJobs *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{SavedJobs: savedJobs}
}

// List is the GET /saved-jobs endpoint.
func (h *SavedJobHandler) List(c *gin.Context) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ids := h.SavedJobs.List(c.Request.Context(), user.ID)
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, dtos.SavedJobsResponse{JobIDs: ids})
}

// Toggle is the POST /saved-jobs/toggle endpoint. It always succeeds from the
// client's point of view: remote write failures degrade to the local fallback.
func (h *SavedJobHandler) Toggle(c *gin.Context) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dtos.ToggleSavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	saved, ids := h.SavedJobs.Toggle(c.Request.Context(), user.ID, req.JobID)
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, dtos.ToggleSavedJobResponse{Saved: saved, JobIDs: ids})
}
