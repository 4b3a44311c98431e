package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncjobshub/ncjobshub/internal/dtos"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

// LogHandler serves the application tracking log routes.
type LogHandler struct {
	Store *store.Store
}

// NewLogHandler creates the handler.
func NewLogHandler(st *store.Store) *LogHandler {
	return &LogHandler{Store: st}
}

// List is GET /api/logs, newest first.
func (h *LogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListLogs())
}

// Create is POST /api/logs. Entries are append-only; the server assigns id
// and timestamp when omitted.
func (h *LogHandler) Create(c *gin.Context) {
	var req dtos.LogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log payload: " + err.Error()})
		return
	}
	entry := h.Store.AddLog(req.ToModel())
	c.JSON(http.StatusCreated, entry)
}
