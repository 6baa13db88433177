package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invocr/internal/config"
	"invocr/internal/llm/openai"
	"invocr/internal/port"
)

func newTestClient(serverURL string) *openai.Client {
	return openai.NewClient(&config.LLMConfig{
		APIKey:      "test-key",
		BaseURL:     serverURL + "/v1",
		Model:       "gpt-4o",
		TimeoutSecs: 10,
	})
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var reqBody struct {
			Model       string  `json:"model"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float32 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody.Model)
		assert.Equal(t, 2048, reqBody.MaxTokens)
		assert.InDelta(t, 0.2, reqBody.Temperature, 1e-6)
		require.Len(t, reqBody.Messages, 1)
		assert.Equal(t, "user", reqBody.Messages[0].Role)
		assert.Equal(t, "hello", reqBody.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "world"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	reply, err := client.Complete(context.Background(), port.CompletionRequest{
		Prompt:      "hello",
		MaxTokens:   2048,
		Temperature: 0.2,
	})

	require.NoError(t, err)
	assert.Equal(t, "world", reply)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionRequest{Prompt: "hello", MaxTokens: 16})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), port.CompletionRequest{Prompt: "hello", MaxTokens: 16})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
