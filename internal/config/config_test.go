package config

import (
	"testing"
	"time"
)

// ── defaults ───────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_URL", "POLL_INTERVAL_MS", "GEMINI_MODEL", "DIGEST_INTERVAL_HOURS"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:3001" {
		t.Errorf("APIBaseURL = %q, want derived from port", cfg.APIBaseURL)
	}
	if cfg.PollInterval != 60*time.Second {
		t.Errorf("PollInterval = %v, want 60s", cfg.PollInterval)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %q, want gemini-2.5-flash", cfg.GeminiModel)
	}
	if cfg.DigestIntervalHrs != 24 {
		t.Errorf("DigestIntervalHrs = %d, want 24", cfg.DigestIntervalHrs)
	}
}

// ── overrides ──────────────────────────────────────────────────────────────

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("API_URL", "https://jobs.example.nc")
	t.Setenv("POLL_INTERVAL_MS", "5000")
	t.Setenv("DIGEST_INTERVAL_HOURS", "6")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.APIBaseURL != "https://jobs.example.nc" {
		t.Errorf("APIBaseURL = %q, explicit API_URL must win over the port", cfg.APIBaseURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.DigestIntervalHrs != 6 {
		t.Errorf("DigestIntervalHrs = %d, want 6", cfg.DigestIntervalHrs)
	}
}

func TestLoad_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MS", "not-a-number")
	t.Setenv("DIGEST_INTERVAL_HOURS", "-3")

	cfg := Load()
	if cfg.PollInterval != 60*time.Second {
		t.Errorf("PollInterval = %v, want the 60s default on garbage input", cfg.PollInterval)
	}
	if cfg.DigestIntervalHrs != 24 {
		t.Errorf("DigestIntervalHrs = %d, want the default on a non-positive value", cfg.DigestIntervalHrs)
	}
}
