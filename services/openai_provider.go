package services

import (
	"context"
	"fmt"

	"MindEaseGo/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider talks to any OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	model string
	llm   llms.Model
}

func NewOpenAIProvider(apiKey, apiEndpoint, model string) (*OpenAIProvider, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if apiEndpoint != "" {
		opts = append(opts, openai.WithBaseURL(apiEndpoint))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{
		model: model,
		llm:   llm,
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai:" + p.model
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt Prompt) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, prompt.System),
	}
	for _, turn := range prompt.Turns {
		messages = append(messages, llms.TextParts(chatMessageType(turn.NormalizedRole()), turn.Content))
	}

	options := []llms.CallOption{
		llms.WithTemperature(0.7),
	}
	if prompt.JSON {
		options = append(options, llms.WithJSONMode())
	}

	resp, err := p.llm.GenerateContent(ctx, messages, options...)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", &ProviderError{Provider: p.Name(), Err: errEmptyCompletion}
	}
	return resp.Choices[0].Content, nil
}

func chatMessageType(role string) llms.ChatMessageType {
	switch role {
	case models.RoleAssistant:
		return llms.ChatMessageTypeAI
	case models.RoleSystem:
		return llms.ChatMessageTypeSystem
	default:
		return llms.ChatMessageTypeHuman
	}
}
