package services

import (
	"context"
	"errors"
	"fmt"

	"MindEaseGo/config"
	"MindEaseGo/models"
)

// Prompt is one request to a text-generation backend.
type Prompt struct {
	System string
	Turns  []models.ChatTurn
	// JSON asks the backend for a JSON document instead of free text.
	JSON bool
}

// LLMProvider sends a prompt to an external model and returns its raw text.
type LLMProvider interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
	Name() string
}

// ProviderError wraps any failure talking to the LLM backend.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

var errEmptyCompletion = errors.New("empty completion")

// NewLLMProvider builds the provider selected by LLM_PROVIDER. It returns
// nil without error when live mode is disabled.
func NewLLMProvider(conf config.Config) (LLMProvider, error) {
	if !conf.LiveModeEnabled() {
		return nil, nil
	}
	switch conf.LLMProvider {
	case config.ProviderGemini:
		provider, err := NewGeminiProvider(conf.GeminiAPIKey, conf.GeminiModel)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		provider, err := NewOpenAIProvider(conf.OpenAIAPIKey, conf.OpenAIAPIEndpoint, conf.OpenAIModel)
		if err != nil {
			return nil, err
		}
		return provider, nil
	}
}
