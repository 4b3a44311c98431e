package poller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

// feedServer replays the combined feed, honoring the inclusive since cursor
// the way the API does, and records every since value it sees.
type feedServer struct {
	srv    *httptest.Server
	events []models.OpenClawEvent
	jobs   []models.JobListing
	sinces []string
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()
	fs := &feedServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/openclaw/feed", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		since := r.URL.Query().Get("since")
		fs.sinces = append(fs.sinces, since)

		filtered := fs.events
		if cursor, err := time.Parse(time.RFC3339Nano, since); err == nil {
			filtered = nil
			for _, ev := range fs.events {
				if !ev.Timestamp.Before(cursor) {
					filtered = append(filtered, ev)
				}
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"jobs":              fs.jobs,
			"identity":          models.UserIdentity{Language: models.LanguageEN},
			"logs":              []models.ApplicationLog{},
			"events":            filtered,
			"dashboardDeepLink": "/",
		})
	})
	fs.srv = httptest.NewServer(mux)
	t.Cleanup(fs.srv.Close)
	return fs
}

func TestPollOnce_RelaysEventsAndAdvancesCursor(t *testing.T) {
	fs := newFeedServer(t)
	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	fs.events = []models.OpenClawEvent{
		{ID: "e1", Type: models.EventMatch, Message: "m", Timestamp: t1},
		{ID: "e2", Type: models.EventDigest, Message: "d", Timestamp: t2},
	}

	p := New(fs.srv.URL, time.Minute, NewTelegramNotifier("", ""))
	require.Empty(t, p.Cursor())

	p.PollOnce(context.Background())
	assert.Equal(t, t2.Format(time.RFC3339Nano), p.Cursor(), "cursor lands on the last event")

	// The next poll carries the cursor as the since parameter.
	p.PollOnce(context.Background())
	require.Len(t, fs.sinces, 2)
	assert.Empty(t, fs.sinces[0])
	assert.Equal(t, t2.Format(time.RFC3339Nano), fs.sinces[1])
}

func TestPollOnce_EqualTimestampEventRepeats(t *testing.T) {
	fs := newFeedServer(t)
	ts := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	fs.events = []models.OpenClawEvent{{ID: "e1", Type: models.EventMatch, Message: "m", Timestamp: ts}}

	p := New(fs.srv.URL, time.Minute, NewTelegramNotifier("", ""))
	p.PollOnce(context.Background())
	p.PollOnce(context.Background())

	// The since filter is inclusive, so the event at the cursor comes back
	// on every poll until a newer one moves the cursor past it.
	assert.Equal(t, ts.Format(time.RFC3339Nano), p.Cursor())
	require.Len(t, fs.sinces, 2)
	assert.Equal(t, ts.Format(time.RFC3339Nano), fs.sinces[1])
}

func TestPollOnce_AnchorsCursorOnEventlessBoard(t *testing.T) {
	fs := newFeedServer(t)
	fs.jobs = []models.JobListing{{ID: "j1", Title: "Soudeur", Status: models.StatusNew}}

	p := New(fs.srv.URL, time.Minute, NewTelegramNotifier("", ""))
	p.PollOnce(context.Background())
	assert.NotEmpty(t, p.Cursor(), "a populated but eventless feed anchors the cursor at now")

	// An empty feed leaves the cursor untouched.
	empty := New(fs.srv.URL, time.Minute, NewTelegramNotifier("", ""))
	fs.jobs = nil
	empty.PollOnce(context.Background())
	assert.Empty(t, empty.Cursor())
}

func TestPollOnce_ServerErrorKeepsCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	p := New(srv.URL, time.Minute, NewTelegramNotifier("", ""))
	p.cursor = "2026-08-20T08:00:00Z"
	p.PollOnce(context.Background())
	assert.Equal(t, "2026-08-20T08:00:00Z", p.Cursor())
}

func TestTelegramNotifier_SendsWhenConfigured(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	n := NewTelegramNotifier("token123", "chat456")
	n.apiBase = srv.URL
	require.NoError(t, n.Send(context.Background(), "[MATCH] Relevant match"))

	assert.Equal(t, "/bottoken123/sendMessage", gotPath)
	assert.Equal(t, "chat456", gotBody["chat_id"])
	assert.Equal(t, "[MATCH] Relevant match", gotBody["text"])
	assert.Equal(t, "HTML", gotBody["parse_mode"])
}

func TestTelegramNotifier_StubWithoutCredentials(t *testing.T) {
	n := NewTelegramNotifier("", "")
	assert.False(t, n.Enabled())
	assert.NoError(t, n.Send(context.Background(), "logged locally"))
}
