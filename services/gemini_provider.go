package services

import (
	"context"
	"fmt"
	"strings"

	"MindEaseGo/models"

	"google.golang.org/genai"
)

// GeminiProvider uses the generative-content API with one flattened prompt.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini:" + p.model
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt Prompt) (string, error) {
	var cfg *genai.GenerateContentConfig
	if prompt.JSON {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(flattenPrompt(prompt)), cfg)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: err}
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", &ProviderError{Provider: p.Name(), Err: errEmptyCompletion}
	}
	return text, nil
}

// flattenPrompt renders the system instruction and turns as one prompt string.
func flattenPrompt(prompt Prompt) string {
	var sb strings.Builder
	sb.WriteString("System: ")
	sb.WriteString(prompt.System)
	sb.WriteString("\n")
	for _, turn := range prompt.Turns {
		switch turn.NormalizedRole() {
		case models.RoleAssistant:
			sb.WriteString("Assistant: ")
		case models.RoleSystem:
			sb.WriteString("System: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
