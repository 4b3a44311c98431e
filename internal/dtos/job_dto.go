package dtos

import (
	"time"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

// JobCreateRequest is the POST /api/jobs body. Scrapers supply their own ids,
// so the id is required and acts as the upsert key.
type JobCreateRequest struct {
	ID              string    `json:"id" binding:"required"`
	SourceID        string    `json:"sourceId"`
	Category        string    `json:"category"`
	Title           string    `json:"title" binding:"required"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Address         string    `json:"address"`
	ContractType    string    `json:"contractType"`
	PostedDate      time.Time `json:"postedDate"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	URL             string    `json:"url"`
	Status          string    `json:"status" binding:"omitempty,oneof=new saved applied interview rejected"`
	RelevanceScore  *int      `json:"relevanceScore" binding:"omitempty,min=0,max=100"`
	ScrapeTimestamp time.Time `json:"scrapeTimestamp"`
}

// ToModel converts the request to a JobListing, defaulting the status to
// "new" and the posted date to now.
func (r *JobCreateRequest) ToModel() models.JobListing {
	status := models.StatusNew
	if r.Status != "" {
		status = models.JobStatus(r.Status)
	}
	posted := r.PostedDate
	if posted.IsZero() {
		posted = time.Now().UTC()
	}
	reqs := r.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return models.JobListing{
		ID:              r.ID,
		SourceID:        r.SourceID,
		Category:        r.Category,
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Address:         r.Address,
		ContractType:    r.ContractType,
		PostedDate:      posted,
		Description:     r.Description,
		Requirements:    reqs,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		URL:             r.URL,
		Status:          status,
		RelevanceScore:  r.RelevanceScore,
		ScrapeTimestamp: r.ScrapeTimestamp,
	}
}

// JobPatchRequest is the PUT /api/jobs/:id body. Pointer fields distinguish
// "absent" from "set to zero value": absent fields keep their stored value
// instead of being wiped.
type JobPatchRequest struct {
	SourceID        *string    `json:"sourceId"`
	Category        *string    `json:"category"`
	Title           *string    `json:"title"`
	Company         *string    `json:"company"`
	Location        *string    `json:"location"`
	Address         *string    `json:"address"`
	ContractType    *string    `json:"contractType"`
	PostedDate      *time.Time `json:"postedDate"`
	Description     *string    `json:"description"`
	Requirements    []string   `json:"requirements"`
	ContactEmail    *string    `json:"contactEmail"`
	ContactPhone    *string    `json:"contactPhone"`
	URL             *string    `json:"url"`
	Status          *string    `json:"status" binding:"omitempty,oneof=new saved applied interview rejected"`
	RelevanceScore  *int       `json:"relevanceScore" binding:"omitempty,min=0,max=100"`
	ScrapeTimestamp *time.Time `json:"scrapeTimestamp"`
}

// Apply merges the supplied fields into an existing job record.
func (r *JobPatchRequest) Apply(job *models.JobListing) {
	if r.SourceID != nil {
		job.SourceID = *r.SourceID
	}
	if r.Category != nil {
		job.Category = *r.Category
	}
	if r.Title != nil {
		job.Title = *r.Title
	}
	if r.Company != nil {
		job.Company = *r.Company
	}
	if r.Location != nil {
		job.Location = *r.Location
	}
	if r.Address != nil {
		job.Address = *r.Address
	}
	if r.ContractType != nil {
		job.ContractType = *r.ContractType
	}
	if r.PostedDate != nil {
		job.PostedDate = *r.PostedDate
	}
	if r.Description != nil {
		job.Description = *r.Description
	}
	if r.Requirements != nil {
		job.Requirements = r.Requirements
	}
	if r.ContactEmail != nil {
		job.ContactEmail = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		job.ContactPhone = *r.ContactPhone
	}
	if r.URL != nil {
		job.URL = *r.URL
	}
	if r.Status != nil {
		job.Status = models.JobStatus(*r.Status)
	}
	if r.RelevanceScore != nil {
		job.RelevanceScore = r.RelevanceScore
	}
	if r.ScrapeTimestamp != nil {
		job.ScrapeTimestamp = *r.ScrapeTimestamp
	}
}

// LogCreateRequest is the POST /api/logs body. The server assigns id and
// timestamp when the caller omits them.
type LogCreateRequest struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=new saved applied interview rejected"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes"`
}

// ToModel converts the request to an ApplicationLog.
func (r *LogCreateRequest) ToModel() models.ApplicationLog {
	return models.ApplicationLog{
		ID:        r.ID,
		JobID:     r.JobID,
		Status:    models.JobStatus(r.Status),
		Timestamp: r.Timestamp,
		Notes:     r.Notes,
	}
}

// EmailDraftRequest is the POST /api/jobs/:id/draft-email body. Language
// defaults to the identity's language when omitted.
type EmailDraftRequest struct {
	Language string `json:"language" binding:"omitempty,oneof=en fr"`
}
