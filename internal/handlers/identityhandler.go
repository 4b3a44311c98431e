package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncjobshub/ncjobshub/internal/dtos"
	"github.com/ncjobshub/ncjobshub/internal/services"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

// IdentityHandler serves the single identity record.
type IdentityHandler struct {
	Store *store.Store
	Jobs  *services.JobService
}

// NewIdentityHandler creates the handler with dependencies.
func NewIdentityHandler(st *store.Store, jobs *services.JobService) *IdentityHandler {
	return &IdentityHandler{Store: st, Jobs: jobs}
}

// Get is GET /api/identity.
func (h *IdentityHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Identity())
}

// Update is PUT /api/identity. Supplied fields shallow-merge into the stored
// record. A change to a scoring-relevant field (skills, transport,
// experience summary) triggers a background rescore of every job.
func (h *IdentityHandler) Update(c *gin.Context) {
	var req dtos.IdentityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity payload: " + err.Error()})
		return
	}

	identity := h.Store.Identity()
	req.Apply(&identity)
	merged := h.Store.SetIdentity(identity)

	if req.TouchesScoring() {
		go h.Jobs.RescoreAll(merged)
	}
	c.JSON(http.StatusOK, merged)
}
