package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncjobshub/ncjobshub/internal/dtos"
	"github.com/ncjobshub/ncjobshub/internal/models"
	"github.com/ncjobshub/ncjobshub/internal/services"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

// JobHandler serves the job CRUD routes plus email drafting.
type JobHandler struct {
	Jobs    *services.JobService
	Emailer *services.EmailService
	Store   *store.Store
}

// NewJobHandler creates the handler with dependencies.
func NewJobHandler(jobs *services.JobService, emailer *services.EmailService, st *store.Store) *JobHandler {
	return &JobHandler{Jobs: jobs, Emailer: emailer, Store: st}
}

// List is GET /api/jobs.
func (h *JobHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Jobs.List())
}

// Get is GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, ok := h.Jobs.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is POST /api/jobs. The body carries its own id and upserts by it.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job payload: " + err.Error()})
		return
	}
	job := h.Jobs.Ingest(req.ToModel())
	c.JSON(http.StatusCreated, job)
}

// Update is PUT /api/jobs/:id. Supplied fields are merged over the stored
// record; absent fields are preserved.
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job payload: " + err.Error()})
		return
	}
	job, ok := h.Jobs.Patch(c.Param("id"), &req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// DraftEmail is POST /api/jobs/:id/draft-email.
func (h *JobHandler) DraftEmail(c *gin.Context) {
	job, ok := h.Jobs.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	var req dtos.EmailDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft payload: " + err.Error()})
		return
	}

	identity := h.Store.Identity()
	lang := identity.Language
	if req.Language != "" {
		lang = models.Language(req.Language)
	}

	draft, err := h.Emailer.DraftApplicationEmail(c.Request.Context(), job, identity, lang)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Email drafting failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobId": job.ID, "language": lang, "draft": draft})
}
