package services

import (
	"context"
	"errors"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ErrLLMUnavailable is returned when no Gemini client could be initialized
// (missing API key or failed setup). Callers decide how to degrade.
var ErrLLMUnavailable = errors.New("llm client unavailable")

// LLMService wraps the Gemini client. A service with a nil client is valid:
// every call returns ErrLLMUnavailable and the callers fall back.
type LLMService struct {
	client llms.Model
}

// NewLLMService initializes the Gemini client. Without an API key the
// service starts disabled instead of failing the process — scoring then
// returns the neutral fallback and drafting reports an error.
func NewLLMService(apiKey, model string) *LLMService {
	if apiKey == "" {
		log.Println("[llm] GEMINI_API_KEY not set — relevance scoring and email drafting disabled")
		return &LLMService{}
	}

	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		log.Printf("[llm] failed to create Gemini client: %v — running degraded", err)
		return &LLMService{}
	}

	log.Printf("[llm] Gemini client ready (model %s)", model)
	return &LLMService{client: llm}
}

// Available reports whether a real model client is wired.
func (s *LLMService) Available() bool {
	return s.client != nil
}

// Generate runs a single-prompt completion.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrLLMUnavailable
	}
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}
