package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncjobshub/ncjobshub/internal/dashboard"
	"github.com/ncjobshub/ncjobshub/internal/models"
)

func intPtr(n int) *int { return &n }

func job(id, sourceID, title, location string, score *int) models.JobListing {
	return models.JobListing{
		ID:             id,
		SourceID:       sourceID,
		Title:          title,
		Company:        "Acme NC",
		Location:       location,
		Status:         models.StatusNew,
		RelevanceScore: score,
		Requirements:   []string{},
	}
}

// apiStub serves the read endpoints the state loads from. Identity is
// optional: when nil the endpoint 404s and the state keeps local defaults.
func apiStub(t *testing.T, jobs []models.JobListing, logs []models.ApplicationLog, identity *models.UserIdentity) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(jobs)
	})
	mux.HandleFunc("/api/logs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(logs)
	})
	mux.HandleFunc("/api/identity", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if identity == nil {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(identity)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loadedState(t *testing.T, srv *httptest.Server) *dashboard.State {
	t.Helper()
	state := dashboard.NewState(dashboard.NewClient(srv.URL))
	require.NoError(t, state.Load(context.Background()))
	return state
}

func TestLoad_FallsBackWhenUnreachable(t *testing.T) {
	state := dashboard.NewState(dashboard.NewClient("http://127.0.0.1:1"))
	require.NoError(t, state.Load(context.Background()))

	assert.True(t, state.UsingFallback())
	assert.Len(t, state.Jobs(), 17, "offline dataset fills the board")
	assert.Empty(t, state.Logs())
}

func TestVisibleJobs_SourceFilter(t *testing.T) {
	srv := apiStub(t, []models.JobListing{
		job("j1", "job-nc", "Soudeur", "Nouméa", nil),
		job("j2", "indeed", "Grutier", "Nouméa", nil),
		job("j3", "emploi-nc", "Plombier", "Nouméa", nil),
	}, nil, nil)
	state := loadedState(t, srv)

	// Indeed is disabled out of the box.
	visible := state.VisibleJobs()
	require.Len(t, visible, 2)
	assert.Equal(t, "j1", visible[0].ID)
	assert.Equal(t, "j3", visible[1].ID)

	state.SetEnabledSources([]string{"indeed"})
	visible = state.VisibleJobs()
	require.Len(t, visible, 1)
	assert.Equal(t, "j2", visible[0].ID)
}

func TestVisibleJobs_CommuneFilter(t *testing.T) {
	identity := models.UserIdentity{Language: models.LanguageEN, PreferredCommunes: []string{"Nouméa"}}
	srv := apiStub(t, []models.JobListing{
		job("j1", "job-nc", "Soudeur", "Nouméa, Ducos", nil),
		job("j2", "job-nc", "Grutier", "Koné", nil),
		job("j3", "job-nc", "Plombier", "nouméa centre", nil),
	}, nil, &identity)
	state := loadedState(t, srv)

	visible := state.VisibleJobs()
	require.Len(t, visible, 2, "commune match is a case-insensitive substring")
	assert.Equal(t, "j1", visible[0].ID)
	assert.Equal(t, "j3", visible[1].ID)
}

func TestVisibleJobs_SavedTabAndRelevanceSort(t *testing.T) {
	srv := apiStub(t, []models.JobListing{
		job("j1", "job-nc", "Soudeur", "Nouméa", intPtr(40)),
		job("j2", "job-nc", "Grutier", "Nouméa", intPtr(90)),
		job("j3", "job-nc", "Plombier", "Nouméa", nil),
	}, nil, nil)
	state := loadedState(t, srv)

	visible := state.VisibleJobs()
	require.Len(t, visible, 3)
	assert.Equal(t, []string{"j2", "j1", "j3"}, []string{visible[0].ID, visible[1].ID, visible[2].ID},
		"dashboard sorts by descending relevance, unscored last")

	state.SetTab(dashboard.TabSaved)
	assert.Empty(t, state.VisibleJobs())

	state.UpdateJobStatus(context.Background(), "j1", models.StatusSaved, "")
	state.Wait()
	visible = state.VisibleJobs()
	require.Len(t, visible, 1)
	assert.Equal(t, "j1", visible[0].ID)
}

func TestAlphabeticalGroups(t *testing.T) {
	srv := apiStub(t, []models.JobListing{
		job("j1", "job-nc", "Zebra Handler", "Nouméa", nil),
		job("j2", "job-nc", "apple Picker", "Nouméa", nil),
		job("j3", "job-nc", "Banana Sorter", "Nouméa", nil),
		job("j4", "job-nc", "Avocado Grader", "Nouméa", nil),
		job("j5", "job-nc", "", "Nouméa", nil),
	}, nil, nil)
	state := loadedState(t, srv)
	state.SetTab(dashboard.TabAlphabetical)

	groups := state.AlphabeticalGroups()
	require.Len(t, groups, 4)
	assert.Equal(t, "#", groups[0].Letter, "untitled jobs land in the # bucket")
	assert.Equal(t, "A", groups[1].Letter)
	assert.Equal(t, "B", groups[2].Letter)
	assert.Equal(t, "Z", groups[3].Letter)

	// Within a group titles sort case-insensitively.
	require.Len(t, groups[1].Jobs, 2)
	assert.Equal(t, "apple Picker", groups[1].Jobs[0].Title)
	assert.Equal(t, "Avocado Grader", groups[1].Jobs[1].Title)
}

func TestUpdateJobStatus_OptimisticWithReconciledLogID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode([]models.JobListing{job("j1", "job-nc", "Soudeur", "Nouméa", nil)})
	})
	mux.HandleFunc("/api/identity", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/api/jobs/j1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(job("j1", "job-nc", "Soudeur", "Nouméa", nil))
	})
	mux.HandleFunc("/api/logs", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]models.ApplicationLog{})
		case http.MethodPost:
			var entry models.ApplicationLog
			json.NewDecoder(r.Body).Decode(&entry)
			entry.ID = "log-server-issued"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(entry)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	state := loadedState(t, srv)
	state.UpdateJobStatus(context.Background(), "j1", models.StatusApplied, "sent the email")
	state.Wait()

	select {
	case err := <-state.Errors():
		t.Fatalf("unexpected sync error: %v", err)
	default:
	}

	jobs := state.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, models.StatusApplied, jobs[0].Status)

	logs := state.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "log-server-issued", logs[0].ID, "local id reconciles with the server's")
	assert.Equal(t, "sent the email", logs[0].Notes)
}

func TestUpdateJobStatus_ReportsPersistFailures(t *testing.T) {
	srv := apiStub(t, []models.JobListing{job("j1", "job-nc", "Soudeur", "Nouméa", nil)}, nil, nil)
	state := loadedState(t, srv)
	srv.Close() // writes now fail

	state.UpdateJobStatus(context.Background(), "j1", models.StatusRejected, "")
	state.Wait()

	var failures int
	for i := 0; i < 2; i++ {
		select {
		case <-state.Errors():
			failures++
		default:
		}
	}
	assert.Equal(t, 2, failures, "both the job write and the log write report")

	// Optimistic state survives the failed sync.
	jobs := state.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, models.StatusRejected, jobs[0].Status)
	require.Len(t, state.Logs(), 1)
	assert.Contains(t, state.Logs()[0].ID, "local-")
}
