package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ncjobshub/ncjobshub/internal/store"
)

// OpenClawHandler serves the read-only mirror the external bot polls.
type OpenClawHandler struct {
	Store    *store.Store
	DeepLink string
}

// NewOpenClawHandler creates the handler.
func NewOpenClawHandler(st *store.Store, deepLink string) *OpenClawHandler {
	return &OpenClawHandler{Store: st, DeepLink: deepLink}
}

// sinceCursor parses the optional `since` query parameter. An unparseable
// value is treated as absent rather than rejected: the bot must always get
// an answer.
func sinceCursor(c *gin.Context) *time.Time {
	raw := c.Query("since")
	if raw == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}
	return &ts
}

// Jobs is GET /api/openclaw/jobs.
func (h *OpenClawHandler) Jobs(c *gin.Context) {
	list := h.Store.ListJobs()
	c.JSON(http.StatusOK, gin.H{"jobs": list, "count": len(list)})
}

// Identity is GET /api/openclaw/identity.
func (h *OpenClawHandler) Identity(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Identity())
}

// Logs is GET /api/openclaw/logs.
func (h *OpenClawHandler) Logs(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListLogs())
}

// Events is GET /api/openclaw/events?since=<RFC3339>.
func (h *OpenClawHandler) Events(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListEvents(sinceCursor(c)))
}

// Feed is GET /api/openclaw/feed?since=<RFC3339> — the combined bundle the
// poller consumes in a single request.
func (h *OpenClawHandler) Feed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"jobs":              h.Store.ListJobs(),
		"identity":          h.Store.Identity(),
		"logs":              h.Store.ListLogs(),
		"events":            h.Store.ListEvents(sinceCursor(c)),
		"dashboardDeepLink": h.DeepLink,
	})
}
