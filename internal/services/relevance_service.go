package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ncjobshub/ncjobshub/internal/models"
)

// FallbackScore is returned whenever the model is unavailable, errors out,
// or replies with something that is not a number.
const FallbackScore = 50

const relevancePrompt = `
Compare the following job listing and user identity to provide a relevance score between 0 and 100.
Consider location accessibility: the user's means of transport is "%s".
If the job is far from Nouméa and the user has no car, the score should be lower unless transport is provided.

JOB:
Title: %s
Location: %s
Description: %s
Requirements: %s

USER IDENTITY:
Transport: %s
Skills: %s
Summary: %s

Respond only with the numeric score.
`

// RelevanceService computes the 0-100 fit estimate between a job and the
// user identity by asking the model. It fails closed: every failure mode
// yields FallbackScore.
type RelevanceService struct {
	LLM *LLMService
}

// NewRelevanceService creates the scorer.
func NewRelevanceService(llm *LLMService) *RelevanceService {
	return &RelevanceService{LLM: llm}
}

// ScoreJob returns an integer in [0,100].
func (s *RelevanceService) ScoreJob(ctx context.Context, job models.JobListing, identity models.UserIdentity) int {
	prompt := fmt.Sprintf(relevancePrompt,
		identity.MeansOfTransport,
		job.Title,
		job.Location,
		job.Description,
		strings.Join(job.Requirements, ", "),
		identity.MeansOfTransport,
		strings.Join(identity.Skills, ", "),
		identity.ExperienceSummary,
	)

	reply, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		if err != ErrLLMUnavailable {
			log.Printf("[relevance] scoring %s failed: %v — using fallback", job.ID, err)
		}
		return FallbackScore
	}
	return parseScore(reply)
}

// parseScore extracts the leading integer from the model reply, clamped to
// [0,100]. A reply with no leading integer yields FallbackScore.
func parseScore(reply string) int {
	trimmed := strings.TrimSpace(reply)
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i == 0 {
		return FallbackScore
	}
	score := 0
	for _, c := range trimmed[:i] {
		score = score*10 + int(c-'0')
		if score > 100 {
			return 100
		}
	}
	return score
}
