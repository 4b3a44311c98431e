// Digest emitter: periodically appends a DIGEST event summarizing the board
// so the OpenClaw relay has something to say even on quiet days.
package services

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/ncjobshub/ncjobshub/internal/models"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

// DigestService wraps robfig/cron and appends one DIGEST event per tick.
type DigestService struct {
	store *store.Store
	cron  *cron.Cron
	spec  string
}

// NewDigestService creates a digest emitter that fires every intervalHours
// hours.
func NewDigestService(st *store.Store, intervalHours int) *DigestService {
	return &DigestService{
		store: st,
		cron:  cron.New(),
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the digest job and starts the scheduler.
func (s *DigestService) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.emit)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	log.Printf("[digest] scheduler started — spec: %s", s.spec)
	return nil
}

// Stop shuts the scheduler down.
func (s *DigestService) Stop() {
	s.cron.Stop()
	log.Println("[digest] scheduler stopped")
}

// emit appends one DIGEST event with the current board counts.
func (s *DigestService) emit() {
	var newCount, saved, applied int
	jobs := s.store.ListJobs()
	for _, job := range jobs {
		switch job.Status {
		case models.StatusNew:
			newCount++
		case models.StatusSaved:
			saved++
		case models.StatusApplied, models.StatusInterview:
			applied++
		}
	}

	ev := s.store.AddEvent(models.OpenClawEvent{
		Type: models.EventDigest,
		Message: fmt.Sprintf("Daily digest: %d jobs on the board — %d new, %d saved, %d in progress",
			len(jobs), newCount, saved, applied),
	})
	log.Printf("[digest] emitted %s", ev.ID)
}
