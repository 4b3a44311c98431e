package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

const draftPrompt = `
Draft a professional application email in %s for this job:
Job Title: %s at %s

Using this user profile:
Name: %s
Experience: %s
Skills: %s
Transport: %s

The email should be professional, concise, and persuasive. Include placeholders like [Date] if needed.
`

// EmailService drafts application emails with the model. It produces text
// only — sending is up to the user.
type EmailService struct {
	LLM *LLMService
}

// NewEmailService creates the drafting service.
func NewEmailService(llm *LLMService) *EmailService {
	return &EmailService{LLM: llm}
}

// DraftApplicationEmail returns an application email for the job in the
// requested language. Returns an error when the model is unavailable or the
// call fails; the caller surfaces it rather than fabricating a draft.
func (s *EmailService) DraftApplicationEmail(ctx context.Context, job models.JobListing, identity models.UserIdentity, lang models.Language) (string, error) {
	language := "English"
	if lang == models.LanguageFR {
		language = "French"
	}

	prompt := fmt.Sprintf(draftPrompt,
		language,
		job.Title,
		job.Company,
		identity.FullName,
		identity.ExperienceSummary,
		strings.Join(identity.Skills, ", "),
		identity.MeansOfTransport,
	)

	draft, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("draft email for %s: %w", job.ID, err)
	}
	return strings.TrimSpace(draft), nil
}
