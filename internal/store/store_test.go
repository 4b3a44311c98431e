package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncjobshub/ncjobshub/internal/models"
	"github.com/ncjobshub/ncjobshub/internal/store"
)

func testJob(id, title string) models.JobListing {
	return models.JobListing{
		ID:           id,
		SourceID:     "job-nc",
		Title:        title,
		Company:      "Acme NC",
		Location:     "Nouméa",
		Status:       models.StatusNew,
		Requirements: []string{"Permit B"},
	}
}

func TestUpsertJob_InsertStampsScrapeTimestamp(t *testing.T) {
	s := store.New()
	stored := s.UpsertJob(testJob("j1", "Paysagiste"))
	assert.False(t, stored.ScrapeTimestamp.IsZero(), "scrape timestamp should be stamped")

	got, ok := s.GetJob("j1")
	require.True(t, ok)
	assert.Equal(t, stored, got)
}

func TestUpsertJob_ReplacesEntirelyKeepingID(t *testing.T) {
	s := store.New()
	s.UpsertJob(testJob("j1", "Paysagiste"))

	replacement := testJob("j1", "Chef de Chantier")
	replacement.Company = "Socat NC"
	replacement.Status = models.StatusSaved
	s.UpsertJob(replacement)

	got, ok := s.GetJob("j1")
	require.True(t, ok)
	assert.Equal(t, "j1", got.ID)
	assert.Equal(t, "Chef de Chantier", got.Title)
	assert.Equal(t, "Socat NC", got.Company)
	assert.Equal(t, models.StatusSaved, got.Status)

	assert.Len(t, s.ListJobs(), 1, "replace must not duplicate the job")
}

func TestListJobs_PreservesInsertionOrder(t *testing.T) {
	s := store.New()
	s.UpsertJob(testJob("b", "Second"))
	s.UpsertJob(testJob("a", "First"))
	s.UpsertJob(testJob("c", "Third"))

	jobs := s.ListJobs()
	require.Len(t, jobs, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{jobs[0].ID, jobs[1].ID, jobs[2].ID})
}

func TestSetJobScore_OnlyTouchesScore(t *testing.T) {
	s := store.New()
	s.UpsertJob(testJob("j1", "Paysagiste"))

	updated, ok := s.SetJobScore("j1", 85)
	require.True(t, ok)
	require.NotNil(t, updated.RelevanceScore)
	assert.Equal(t, 85, *updated.RelevanceScore)
	assert.Equal(t, "Paysagiste", updated.Title)

	_, ok = s.SetJobScore("missing", 10)
	assert.False(t, ok, "scoring a removed job must not resurrect it")
}

func TestSetIdentity_MergedRecordAndSourceDedupe(t *testing.T) {
	s := store.New()
	identity := s.Identity()
	identity.FullName = "Jean Dupont"
	identity.CustomSources = []models.CustomSource{
		{Type: "website", URL: "https://www.job.nc"},
		{Type: "website", URL: "https://www.job.nc"},
	}

	stored := s.SetIdentity(identity)
	assert.Equal(t, "Jean Dupont", stored.FullName)
	assert.Len(t, stored.CustomSources, 1)
	assert.Equal(t, stored, s.Identity())
}

func TestAddLog_AssignsIDAndTimestampAndPrepends(t *testing.T) {
	s := store.New()
	first := s.AddLog(models.ApplicationLog{JobID: "j1", Status: models.StatusSaved})
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	second := s.AddLog(models.ApplicationLog{JobID: "j2", Status: models.StatusApplied})

	logs := s.ListLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID, "newest entry comes first")
	assert.Equal(t, first.ID, logs[1].ID)
}

func TestAddLog_PresetFieldsNeverChange(t *testing.T) {
	s := store.New()
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	entry := s.AddLog(models.ApplicationLog{
		ID:        "log-fixed",
		JobID:     "j1",
		Status:    models.StatusApplied,
		Timestamp: ts,
	})
	assert.Equal(t, "log-fixed", entry.ID)
	assert.Equal(t, ts, entry.Timestamp)

	// Subsequent reads return the same id and timestamp.
	for i := 0; i < 3; i++ {
		logs := s.ListLogs()
		require.Len(t, logs, 1)
		assert.Equal(t, "log-fixed", logs[0].ID)
		assert.Equal(t, ts, logs[0].Timestamp)
	}
}

func TestListEvents_SinceCursor(t *testing.T) {
	s := store.New()
	t0 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)
	s.AddEvent(models.OpenClawEvent{ID: "e0", Type: models.EventMatch, Timestamp: t0})
	s.AddEvent(models.OpenClawEvent{ID: "e1", Type: models.EventDigest, Timestamp: t1})
	s.AddEvent(models.OpenClawEvent{ID: "e2", Type: models.EventStatusChange, Timestamp: t2})

	assert.Len(t, s.ListEvents(nil), 3, "no cursor returns everything")

	before := t0.Add(-time.Hour)
	assert.Len(t, s.ListEvents(&before), 3, "cursor before all events returns the full set")

	after := t2.Add(time.Hour)
	assert.Empty(t, s.ListEvents(&after), "cursor after all events returns the empty set")

	// The filter is inclusive: timestamp >= cursor.
	got := s.ListEvents(&t1)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)
}

func TestNewSeeded_PopulatesFixtures(t *testing.T) {
	s := store.NewSeeded()
	jobs := s.ListJobs()
	assert.Len(t, jobs, 17)
	for _, job := range jobs {
		assert.Equal(t, models.StatusNew, job.Status)
		assert.NotEmpty(t, job.ID)
		assert.False(t, job.ScrapeTimestamp.IsZero())
	}
}
