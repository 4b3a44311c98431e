// Package poller implements the OpenClaw relay: a separate process that
// polls the combined feed endpoint and forwards new events to Telegram.
package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

// feedResponse mirrors GET /api/openclaw/feed.
type feedResponse struct {
	Jobs              []models.JobListing     `json:"jobs"`
	Identity          models.UserIdentity     `json:"identity"`
	Logs              []models.ApplicationLog `json:"logs"`
	Events            []models.OpenClawEvent  `json:"events"`
	DashboardDeepLink string                  `json:"dashboardDeepLink"`
}

// Poller polls the feed on an interval and relays each new event. The only
// dedup is the monotonic `since` cursor: the store filter is inclusive
// (timestamp >= cursor), so an event whose timestamp equals the cursor is
// returned again on the next poll.
type Poller struct {
	APIBaseURL string
	Interval   time.Duration
	Notifier   *TelegramNotifier

	client *http.Client
	cursor string // RFC3339Nano of the last relayed event, empty before the first
}

// New creates a poller against the given API base URL.
func New(apiBaseURL string, interval time.Duration, notifier *TelegramNotifier) *Poller {
	return &Poller{
		APIBaseURL: apiBaseURL,
		Interval:   interval,
		Notifier:   notifier,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Run polls immediately, then on every tick until the context is cancelled.
// There is no overlap protection: a slow poll simply delays the next tick's
// work, matching the unbounded-timer model of the feed contract.
func (p *Poller) Run(ctx context.Context) {
	log.Printf("[poller] polling %s every %s", p.APIBaseURL, p.Interval)
	p.PollOnce(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("[poller] stopped")
			return
		case <-ticker.C:
			p.PollOnce(ctx)
		}
	}
}

// PollOnce performs a single poll cycle. Errors are logged, never fatal.
func (p *Poller) PollOnce(ctx context.Context) {
	feed, err := p.fetchFeed(ctx)
	if err != nil {
		log.Printf("[poller] poll error: %v", err)
		return
	}

	for _, ev := range feed.Events {
		p.cursor = ev.Timestamp.Format(time.RFC3339Nano)
		msg := fmt.Sprintf("[%s] %s", ev.Type, ev.Message)
		if err := p.Notifier.Send(ctx, msg); err != nil {
			log.Printf("[poller] relay error for %s: %v", ev.ID, err)
		}
	}

	// First poll against a feed with jobs but no events yet: anchor the
	// cursor at now so the backlog window closes.
	if len(feed.Events) == 0 && len(feed.Jobs) > 0 && p.cursor == "" {
		p.cursor = time.Now().UTC().Format(time.RFC3339Nano)
	}
}

// Cursor returns the current `since` cursor, empty before any event.
func (p *Poller) Cursor() string {
	return p.cursor
}

func (p *Poller) fetchFeed(ctx context.Context) (*feedResponse, error) {
	feedURL := p.APIBaseURL + "/api/openclaw/feed"
	if p.cursor != "" {
		feedURL += "?since=" + url.QueryEscape(p.cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return &feed, nil
}
