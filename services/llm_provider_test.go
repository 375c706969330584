package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"MindEaseGo/config"
	"MindEaseGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider_MockMode(t *testing.T) {
	for _, key := range []string{"", "  ", config.DummyAPIKey, "your_openai_key_here"} {
		provider, err := NewLLMProvider(config.Config{LLMProvider: config.ProviderOpenAI, OpenAIAPIKey: key})
		require.NoError(t, err)
		assert.Nil(t, provider, "key %q", key)
	}
}

func TestNewLLMProvider_OpenAI(t *testing.T) {
	provider, err := NewLLMProvider(config.Config{
		LLMProvider:  config.ProviderOpenAI,
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-3.5-turbo",
	})
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.Equal(t, "openai:gpt-3.5-turbo", provider.Name())
}

func openAIStub(t *testing.T, status int, content string, seen *[]map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if seen != nil {
			*seen = append(*seen, body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-3.5-turbo",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2},
		})
	}))
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var seen []map[string]interface{}
	server := openAIStub(t, http.StatusOK, "You are doing well.", &seen)
	defer server.Close()

	provider, err := NewOpenAIProvider("sk-test", server.URL, "gpt-3.5-turbo")
	require.NoError(t, err)

	reply, err := provider.Generate(context.Background(), Prompt{
		System: "system prompt",
		Turns:  []models.ChatTurn{{Role: models.RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "You are doing well.", reply)

	require.Len(t, seen, 1)
	messages, ok := seen[0]["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
}

func TestOpenAIProvider_ErrorIsProviderError(t *testing.T) {
	server := openAIStub(t, http.StatusInternalServerError, "", nil)
	defer server.Close()

	provider, err := NewOpenAIProvider("sk-test", server.URL, "gpt-3.5-turbo")
	require.NoError(t, err)

	_, err = provider.Generate(context.Background(), Prompt{System: "s"})
	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr), "got %v", err)
	assert.Equal(t, "openai:gpt-3.5-turbo", providerErr.Provider)
}

func TestFlattenPrompt(t *testing.T) {
	got := flattenPrompt(Prompt{
		System: "Be kind.",
		Turns: []models.ChatTurn{
			{Role: models.RoleAssistant, Content: "How are you?"},
			{Role: "unknown", Content: "Tired."},
		},
	})
	assert.Equal(t, "System: Be kind.\nAssistant: How are you?\nUser: Tired.\n", got)
}
