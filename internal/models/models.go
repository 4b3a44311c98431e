// Package models defines the domain types shared by the API server, the
// dashboard client, and the OpenClaw poller. JSON field names match the wire
// format the dashboard and the bot already speak (camelCase).
package models

import (
	"fmt"
	"time"
)

// Language selects the UI / drafting language.
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
)

// JobStatus is the lifecycle state of a listing.
type JobStatus string

const (
	StatusNew       JobStatus = "new"
	StatusSaved     JobStatus = "saved"
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusRejected  JobStatus = "rejected"
)

// ParseStatus converts a raw string to a JobStatus, returning an error for
// unknown values.
func ParseStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case StatusNew, StatusSaved, StatusApplied, StatusInterview, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// StatusOrNew coerces a raw string to a JobStatus, defaulting unknown values
// to StatusNew. Used when reading external data that must not be rejected.
func StatusOrNew(s string) JobStatus {
	if st, err := ParseStatus(s); err == nil {
		return st
	}
	return StatusNew
}

// EventType tags an OpenClawEvent.
type EventType string

const (
	EventMatch        EventType = "MATCH"
	EventDigest       EventType = "DIGEST"
	EventStatusChange EventType = "STATUS_CHANGE"
)

// CustomSource is a user-registered scrape target. Sources are a set keyed by
// (Type, URL).
type CustomSource struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// DedupeCustomSources drops duplicate (type, url) pairs, keeping the first
// occurrence.
func DedupeCustomSources(sources []CustomSource) []CustomSource {
	seen := make(map[[2]string]bool, len(sources))
	out := make([]CustomSource, 0, len(sources))
	for _, src := range sources {
		key := [2]string{src.Type, src.URL}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, src)
	}
	return out
}

// JobListing is one posting record.
type JobListing struct {
	ID              string    `json:"id"`
	SourceID        string    `json:"sourceId"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Address         string    `json:"address,omitempty"`
	ContractType    string    `json:"contractType"`
	PostedDate      time.Time `json:"postedDate"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	ContactEmail    string    `json:"contactEmail,omitempty"`
	ContactPhone    string    `json:"contactPhone,omitempty"`
	URL             string    `json:"url"`
	Status          JobStatus `json:"status"`
	RelevanceScore  *int      `json:"relevanceScore,omitempty"`
	ScrapeTimestamp time.Time `json:"scrapeTimestamp"`
}

// UserIdentity is the single user profile. There is no multi-user support.
type UserIdentity struct {
	FullName           string         `json:"fullName"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	Language           Language       `json:"language"`
	ResumeText         string         `json:"resumeText"`
	Skills             []string       `json:"skills"`
	Certifications     []string       `json:"certifications"`
	ExperienceSummary  string         `json:"experienceSummary"`
	PreferredLocations []string       `json:"preferredLocations"`
	PreferredCommunes  []string       `json:"preferredCommunes"`
	PreferredJobTypes  []string       `json:"preferredJobTypes"`
	MeansOfTransport   string         `json:"meansOfTransport"`
	CustomSources      []CustomSource `json:"customSources"`
	OpenClawAPIKey     string         `json:"openClawApiKey,omitempty"`
}

// ApplicationLog is an append-only tracking entry. Immutable once created.
type ApplicationLog struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Status    JobStatus `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes"`
}

// OpenClawEvent is a bot-facing event, polled by the OpenClaw relay with a
// `since` timestamp cursor.
type OpenClawEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// JobSource is one of the known scraped job boards the dashboard can toggle.
type JobSource struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}
