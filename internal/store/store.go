// Package store holds the canonical in-memory state: jobs, the single user
// identity, application logs, and bot-facing events. State lives for the
// process lifetime only and is seeded from fixtures at startup.
//
// The store is created once in main and passed by handle to everything that
// needs it — no package-level singleton.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

// Store is the canonical state container. Every operation takes the lock, so
// a concurrent read observes either the old or the fully-new record, never a
// partial one.
type Store struct {
	mu       sync.RWMutex
	jobs     map[string]models.JobListing
	order    []string // job insertion order
	identity models.UserIdentity
	logs     []models.ApplicationLog // newest first
	events   []models.OpenClawEvent  // append order
}

// New returns an empty store with the default identity.
func New() *Store {
	return &Store{
		jobs:     make(map[string]models.JobListing),
		identity: DefaultIdentity(),
	}
}

// NewSeeded returns a store populated with the fixture job dataset.
func NewSeeded() *Store {
	s := New()
	for _, job := range SeedJobs() {
		s.UpsertJob(job)
	}
	return s
}

// ListJobs returns all jobs in insertion order.
func (s *Store) ListJobs() []models.JobListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JobListing, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.jobs[id])
	}
	return out
}

// GetJob returns the job with the given id, reporting whether it exists.
func (s *Store) GetJob(id string) (models.JobListing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// UpsertJob inserts or fully replaces a job by id, stamping a scrape
// timestamp when the record carries none. Returns the stored record.
func (s *Store) UpsertJob(job models.JobListing) models.JobListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ScrapeTimestamp.IsZero() {
		job.ScrapeTimestamp = time.Now().UTC()
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if _, exists := s.jobs[job.ID]; !exists {
		s.order = append(s.order, job.ID)
	}
	s.jobs[job.ID] = job
	return job
}

// ReplaceJobs swaps the whole job set for the supplied list.
func (s *Store) ReplaceJobs(list []models.JobListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = make(map[string]models.JobListing, len(list))
	s.order = s.order[:0]
	for _, job := range list {
		if _, exists := s.jobs[job.ID]; !exists {
			s.order = append(s.order, job.ID)
		}
		s.jobs[job.ID] = job
	}
}

// SetJobScore updates only the relevance score of a job, leaving the rest of
// the record untouched. Returns false when the job no longer exists, so a
// stale scoring batch cannot resurrect a replaced job.
func (s *Store) SetJobScore(id string, score int) (models.JobListing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.JobListing{}, false
	}
	job.RelevanceScore = &score
	s.jobs[id] = job
	return job, true
}

// Identity returns the current user identity.
func (s *Store) Identity() models.UserIdentity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// SetIdentity stores the merged identity record wholesale. Custom sources are
// deduplicated by (type, url). Returns the stored record.
func (s *Store) SetIdentity(identity models.UserIdentity) models.UserIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity.CustomSources = models.DedupeCustomSources(identity.CustomSources)
	s.identity = identity
	return s.identity
}

// ListLogs returns all log entries, newest first.
func (s *Store) ListLogs() []models.ApplicationLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ApplicationLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// AddLog prepends a log entry, assigning an id and timestamp when missing.
// Entries are immutable once stored.
func (s *Store) AddLog(entry models.ApplicationLog) models.ApplicationLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = "log-" + uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	s.logs = append([]models.ApplicationLog{entry}, s.logs...)
	return entry
}

// ListEvents returns all events, or only those with timestamp >= since when a
// cursor is supplied.
func (s *Store) ListEvents(since *time.Time) []models.OpenClawEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.OpenClawEvent, 0, len(s.events))
	for _, ev := range s.events {
		if since != nil && ev.Timestamp.Before(*since) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// AddEvent appends a bot-facing event, assigning an id and timestamp when
// missing.
func (s *Store) AddEvent(ev models.OpenClawEvent) models.OpenClawEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.ID == "" {
		ev.ID = "evt-" + uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	s.events = append(s.events, ev)
	return ev
}
