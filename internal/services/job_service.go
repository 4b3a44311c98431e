package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ncjobshub/ncjobshub/internal/dtos"
	"github.com/ncjobshub/ncjobshub/internal/models"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

// matchThreshold is the relevance score at which a freshly ingested job is
// announced to the bot feed as a MATCH event.
const matchThreshold = 70

// scoreTimeout bounds one scoring batch; a hung model call must not pin a
// goroutine forever.
const scoreTimeout = 2 * time.Minute

// JobService orchestrates job ingestion, status transitions, and the
// background relevance scoring that feeds the bot events.
type JobService struct {
	Store  *store.Store
	Scorer *RelevanceService
}

// NewJobService creates the service.
func NewJobService(st *store.Store, scorer *RelevanceService) *JobService {
	return &JobService{Store: st, Scorer: scorer}
}

// List returns all jobs in insertion order.
func (s *JobService) List() []models.JobListing {
	return s.Store.ListJobs()
}

// Get returns a job by id.
func (s *JobService) Get(id string) (models.JobListing, bool) {
	return s.Store.GetJob(id)
}

// Ingest inserts or replaces a job by id. New jobs are scored in the
// background; a high-scoring one appends a MATCH event.
func (s *JobService) Ingest(job models.JobListing) models.JobListing {
	_, existed := s.Store.GetJob(job.ID)
	stored := s.Store.UpsertJob(job)
	if !existed {
		go s.scoreNewJob(stored)
	}
	return stored
}

// Patch merges the supplied fields over an existing job. A status transition
// appends a STATUS_CHANGE event for the bot feed. Returns false when the job
// does not exist.
func (s *JobService) Patch(id string, patch *dtos.JobPatchRequest) (models.JobListing, bool) {
	job, ok := s.Store.GetJob(id)
	if !ok {
		return models.JobListing{}, false
	}

	prev := job.Status
	patch.Apply(&job)
	job.ID = id // the path parameter wins over any id in the body
	stored := s.Store.UpsertJob(job)

	if stored.Status != prev {
		s.Store.AddEvent(models.OpenClawEvent{
			Type:    models.EventStatusChange,
			Message: fmt.Sprintf("%s at %s moved from %s to %s", stored.Title, stored.Company, prev, stored.Status),
		})
	}
	return stored, true
}

// RescoreAll recomputes the relevance score of every job against the given
// identity. Runs synchronously; callers wanting fire-and-forget wrap it in a
// goroutine. A batch started against a stale identity is not cancelled when
// the identity changes again — later results simply overwrite.
func (s *JobService) RescoreAll(identity models.UserIdentity) {
	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	jobs := s.Store.ListJobs()
	log.Printf("[jobs] rescoring %d job(s)", len(jobs))
	for _, job := range jobs {
		score := s.Scorer.ScoreJob(ctx, job, identity)
		s.Store.SetJobScore(job.ID, score)
	}
}

// scoreNewJob scores one freshly ingested job and emits a MATCH event when
// it clears the threshold.
func (s *JobService) scoreNewJob(job models.JobListing) {
	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	score := s.Scorer.ScoreJob(ctx, job, s.Store.Identity())
	stored, ok := s.Store.SetJobScore(job.ID, score)
	if !ok {
		return
	}
	if score >= matchThreshold {
		s.Store.AddEvent(models.OpenClawEvent{
			Type:    models.EventMatch,
			Message: fmt.Sprintf("Relevant match: %s at %s (score %d)", stored.Title, stored.Company, score),
		})
	}
}
