package dtos

import "github.com/ncjobshub/ncjobshub/internal/models"

// IdentityUpdateRequest is the PUT /api/identity body. The identity record is
// mutated by shallow merge: only the supplied fields replace their stored
// counterparts.
type IdentityUpdateRequest struct {
	FullName           *string               `json:"fullName"`
	Email              *string               `json:"email"`
	Phone              *string               `json:"phone"`
	Language           *string               `json:"language" binding:"omitempty,oneof=en fr"`
	ResumeText         *string               `json:"resumeText"`
	Skills             []string              `json:"skills"`
	Certifications     []string              `json:"certifications"`
	ExperienceSummary  *string               `json:"experienceSummary"`
	PreferredLocations []string              `json:"preferredLocations"`
	PreferredCommunes  []string              `json:"preferredCommunes"`
	PreferredJobTypes  []string              `json:"preferredJobTypes"`
	MeansOfTransport   *string               `json:"meansOfTransport"`
	CustomSources      []models.CustomSource `json:"customSources"`
	OpenClawAPIKey     *string               `json:"openClawApiKey"`
}

// Apply shallow-merges the supplied fields into an identity record.
func (r *IdentityUpdateRequest) Apply(id *models.UserIdentity) {
	if r.FullName != nil {
		id.FullName = *r.FullName
	}
	if r.Email != nil {
		id.Email = *r.Email
	}
	if r.Phone != nil {
		id.Phone = *r.Phone
	}
	if r.Language != nil {
		id.Language = models.Language(*r.Language)
	}
	if r.ResumeText != nil {
		id.ResumeText = *r.ResumeText
	}
	if r.Skills != nil {
		id.Skills = r.Skills
	}
	if r.Certifications != nil {
		id.Certifications = r.Certifications
	}
	if r.ExperienceSummary != nil {
		id.ExperienceSummary = *r.ExperienceSummary
	}
	if r.PreferredLocations != nil {
		id.PreferredLocations = r.PreferredLocations
	}
	if r.PreferredCommunes != nil {
		id.PreferredCommunes = r.PreferredCommunes
	}
	if r.PreferredJobTypes != nil {
		id.PreferredJobTypes = r.PreferredJobTypes
	}
	if r.MeansOfTransport != nil {
		id.MeansOfTransport = *r.MeansOfTransport
	}
	if r.CustomSources != nil {
		id.CustomSources = r.CustomSources
	}
	if r.OpenClawAPIKey != nil {
		id.OpenClawAPIKey = *r.OpenClawAPIKey
	}
}

// TouchesScoring reports whether the update changes a field the relevance
// scorer reads (skills, transport, experience summary).
func (r *IdentityUpdateRequest) TouchesScoring() bool {
	return r.Skills != nil || r.MeansOfTransport != nil || r.ExperienceSummary != nil
}
