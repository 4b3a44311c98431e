package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

// Tab is the active dashboard view.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabSaved        Tab = "saved"
	TabIdentity     Tab = "identity"
	TabLogs         Tab = "logs"
	TabAlphabetical Tab = "alphabetical"
)

// AlphaGroup is one letter bucket of the alphabetical view.
type AlphaGroup struct {
	Letter string
	Jobs   []models.JobListing
}

// State holds the dashboard's in-memory working set and derives the visible
// views from it. Mutations apply locally first, then persist in the
// background; persistence failures land on the Errors channel instead of
// being swallowed.
type State struct {
	client *Client

	mu             sync.Mutex
	jobs           []models.JobListing
	logs           []models.ApplicationLog
	identity       models.UserIdentity
	enabledSources map[string]bool
	selectedJobID  string
	tab            Tab
	loadErr        error
	usingFallback  bool

	pending sync.WaitGroup
	errs    chan error
}

// NewState creates a dashboard state bound to the API client. The identity
// starts from the local defaults until Load replaces it with the server's.
func NewState(client *Client) *State {
	identity := defaultLocalIdentity()
	return &State{
		client:         client,
		identity:       identity,
		enabledSources: DefaultEnabledSources(),
		tab:            TabDashboard,
		errs:           make(chan error, 16),
	}
}

func defaultLocalIdentity() models.UserIdentity {
	identity := models.UserIdentity{
		Language:           models.LanguageEN,
		Skills:             []string{},
		Certifications:     []string{},
		PreferredLocations: []string{},
		PreferredCommunes:  []string{},
		PreferredJobTypes:  []string{},
		CustomSources:      DefaultCustomSources(),
	}
	return identity
}

// Errors exposes background persistence failures. The channel is buffered;
// when nobody drains it, newer errors are dropped rather than blocking a
// mutation.
func (s *State) Errors() <-chan error {
	return s.errs
}

func (s *State) reportError(err error) {
	select {
	case s.errs <- err:
	default:
	}
}

// Wait blocks until all in-flight background writes finish. Used by the CLI
// so it can report failures before exiting.
func (s *State) Wait() {
	s.pending.Wait()
}

// Load fetches jobs, logs, and the identity. Jobs fall back to the built-in
// dataset when the API is unreachable; an identity fetch failure keeps the
// local defaults.
func (s *State) Load(ctx context.Context) error {
	jobs := s.client.FetchJobs(ctx)
	logs := s.client.FetchLogs(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = jobs
	s.logs = logs
	s.usingFallback = s.client.UsingFallback()
	s.loadErr = nil

	if identity, err := s.client.FetchIdentity(ctx); err == nil {
		s.identity = identity
	}
	return nil
}

// Retry re-runs the initial load after a failure.
func (s *State) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

// UsingFallback reports whether the job list came from the offline dataset.
// The dashboard shows a persistent degraded-mode banner while true.
func (s *State) UsingFallback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usingFallback
}

// SetTab switches the active view.
func (s *State) SetTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}

// Tab returns the active view.
func (s *State) Tab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// SetEnabledSources replaces the enabled-source set.
func (s *State) SetEnabledSources(ids []string) {
	enabled := make(map[string]bool, len(ids))
	for _, id := range ids {
		enabled[id] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabledSources = enabled
}

// SelectJob sets the selected-job pointer; empty clears it.
func (s *State) SelectJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedJobID = id
}

// SelectedJob returns the selected job, if any.
func (s *State) SelectedJob() (models.JobListing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range s.jobs {
		if job.ID == s.selectedJobID {
			return job, true
		}
	}
	return models.JobListing{}, false
}

// Identity returns the current identity.
func (s *State) Identity() models.UserIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// SetIdentity applies the identity locally, then persists it in the
// background. Failures go to the Errors channel.
func (s *State) SetIdentity(ctx context.Context, identity models.UserIdentity) {
	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if _, err := s.client.SaveIdentity(ctx, identity); err != nil {
			s.reportError(fmt.Errorf("save identity: %w", err))
		}
	}()
}

// Logs returns the tracking logs, newest first.
func (s *State) Logs() []models.ApplicationLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ApplicationLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// Jobs returns the unfiltered working set.
func (s *State) Jobs() []models.JobListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JobListing, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// VisibleJobs derives the job list for the active tab: enabled-source
// filter, then preferred-commune substring match, then saved-only on the
// saved tab, then a stable sort by descending relevance on dashboard/saved.
func (s *State) VisibleJobs() []models.JobListing {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.JobListing, 0, len(s.jobs))
	for _, job := range s.jobs {
		if !s.enabledSources[job.SourceID] {
			continue
		}
		if len(s.identity.PreferredCommunes) > 0 && !matchesCommune(job.Location, s.identity.PreferredCommunes) {
			continue
		}
		if s.tab == TabSaved && job.Status != models.StatusSaved {
			continue
		}
		filtered = append(filtered, job)
	}

	if s.tab == TabDashboard || s.tab == TabSaved {
		sort.SliceStable(filtered, func(i, j int) bool {
			return scoreOf(filtered[i]) > scoreOf(filtered[j])
		})
	}
	return filtered
}

func scoreOf(job models.JobListing) int {
	if job.RelevanceScore == nil {
		return 0
	}
	return *job.RelevanceScore
}

func matchesCommune(location string, communes []string) bool {
	loc := strings.ToLower(location)
	for _, commune := range communes {
		if strings.Contains(loc, strings.ToLower(commune)) {
			return true
		}
	}
	return false
}

// AlphabeticalGroups derives the A-Z view: visible jobs grouped by the
// uppercase first rune of the title, groups sorted ascending, jobs within a
// group sorted by title case-insensitively.
func (s *State) AlphabeticalGroups() []AlphaGroup {
	jobs := s.VisibleJobs()

	buckets := make(map[string][]models.JobListing)
	for _, job := range jobs {
		letter := "#"
		for _, r := range job.Title {
			letter = string(unicode.ToUpper(r))
			break
		}
		buckets[letter] = append(buckets[letter], job)
	}

	letters := make([]string, 0, len(buckets))
	for letter := range buckets {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	groups := make([]AlphaGroup, 0, len(letters))
	for _, letter := range letters {
		group := buckets[letter]
		sort.SliceStable(group, func(i, j int) bool {
			return strings.ToLower(group[i].Title) < strings.ToLower(group[j].Title)
		})
		groups = append(groups, AlphaGroup{Letter: letter, Jobs: group})
	}
	return groups
}

// UpdateJobStatus is the two-phase status update: the local job mutates and
// a locally-identified log entry is prepended immediately, then both persist
// in the background. On success the local log id is reconciled with the
// server-issued one; on failure the error is published, the optimistic state
// stays.
func (s *State) UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus, note string) {
	timestamp := time.Now().UTC()
	notes := note
	if notes == "" {
		notes = fmt.Sprintf("Status updated to %s", status)
	}
	localID := "local-" + uuid.NewString()
	entry := models.ApplicationLog{
		ID:        localID,
		JobID:     jobID,
		Status:    status,
		Timestamp: timestamp,
		Notes:     notes,
	}

	s.mu.Lock()
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			s.jobs[i].Status = status
			break
		}
	}
	s.logs = append([]models.ApplicationLog{entry}, s.logs...)
	s.mu.Unlock()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if _, err := s.client.UpdateJobStatus(ctx, jobID, status); err != nil {
			s.reportError(fmt.Errorf("update job %s: %w", jobID, err))
		}
	}()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		saved, err := s.client.AddLog(ctx, entry)
		if err != nil {
			s.reportError(fmt.Errorf("add log for %s: %w", jobID, err))
			return
		}
		s.mu.Lock()
		for i := range s.logs {
			if s.logs[i].ID == localID {
				s.logs[i].ID = saved.ID
				break
			}
		}
		s.mu.Unlock()
	}()
}
