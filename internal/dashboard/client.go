// Package dashboard is the client-side state layer: it loads jobs, identity,
// and logs from the API, derives the filtered/grouped views, and pushes
// mutations back optimistically.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/ncjobshub/ncjobshub/internal/models"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

// Client talks to the NC Jobs Hub API. When the API is unreachable,
// FetchJobs falls back to the built-in dataset and FetchLogs returns an
// empty list, so the dashboard stays populable offline.
type Client struct {
	BaseURL string

	http          *http.Client
	usingFallback atomic.Bool
}

// NewClient creates an API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// UsingFallback reports whether the last FetchJobs served offline data.
func (c *Client) UsingFallback() bool {
	return c.usingFallback.Load()
}

// FallbackJobs is the static offline dataset.
func FallbackJobs() []models.JobListing {
	return store.SeedJobs()
}

// FetchJobs loads all jobs, falling back to the built-in dataset on any
// connectivity failure.
func (c *Client) FetchJobs(ctx context.Context) []models.JobListing {
	var raw []models.JobListing
	if err := c.getJSON(ctx, "/api/jobs", &raw); err != nil {
		c.usingFallback.Store(true)
		return FallbackJobs()
	}
	c.usingFallback.Store(false)
	for i := range raw {
		normalizeJob(&raw[i])
	}
	return raw
}

// FetchLogs loads the tracking logs, returning an empty list on failure.
func (c *Client) FetchLogs(ctx context.Context) []models.ApplicationLog {
	var raw []models.ApplicationLog
	if err := c.getJSON(ctx, "/api/logs", &raw); err != nil {
		return []models.ApplicationLog{}
	}
	for i := range raw {
		raw[i].Status = models.StatusOrNew(string(raw[i].Status))
	}
	return raw
}

// FetchIdentity loads the identity record.
func (c *Client) FetchIdentity(ctx context.Context) (models.UserIdentity, error) {
	var identity models.UserIdentity
	if err := c.getJSON(ctx, "/api/identity", &identity); err != nil {
		return models.UserIdentity{}, err
	}
	return identity, nil
}

// SaveIdentity replaces the supplied identity fields server-side and returns
// the merged record.
func (c *Client) SaveIdentity(ctx context.Context, identity models.UserIdentity) (models.UserIdentity, error) {
	var merged models.UserIdentity
	if err := c.sendJSON(ctx, http.MethodPut, "/api/identity", identity, &merged); err != nil {
		return models.UserIdentity{}, err
	}
	return merged, nil
}

// UpdateJobStatus persists a status change for one job.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus) (models.JobListing, error) {
	patch := map[string]any{"id": jobID, "status": status}
	var job models.JobListing
	if err := c.sendJSON(ctx, http.MethodPut, "/api/jobs/"+jobID, patch, &job); err != nil {
		return models.JobListing{}, err
	}
	normalizeJob(&job)
	return job, nil
}

// AddLog appends a tracking entry and returns the server-issued record.
func (c *Client) AddLog(ctx context.Context, entry models.ApplicationLog) (models.ApplicationLog, error) {
	payload := map[string]any{
		"jobId":     entry.JobID,
		"status":    entry.Status,
		"timestamp": entry.Timestamp,
		"notes":     entry.Notes,
	}
	var saved models.ApplicationLog
	if err := c.sendJSON(ctx, http.MethodPost, "/api/logs", payload, &saved); err != nil {
		return models.ApplicationLog{}, err
	}
	return saved, nil
}

// normalizeJob coerces external data to safe defaults instead of rejecting
// it: unknown status becomes "new", a missing requirements array becomes
// empty.
func normalizeJob(job *models.JobListing) {
	job.Status = models.StatusOrNew(string(job.Status))
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
