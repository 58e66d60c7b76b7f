package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("  ", "", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	c, err := NewClient("sk-test", "", "")
	require.NoError(t, err)
	assert.Equal(t, defaultModel, c.model)
	assert.Equal(t, defaultBaseURL, c.baseURL)
}

func TestSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Equal(t, 0.7, req.Temperature)
		assert.Equal(t, 500, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, ChatMessage{Role: "system", Content: SystemPrompt}, req.Messages[0])
		assert.Equal(t, ChatMessage{Role: "user", Content: "Ăn gì cho bữa sáng?"}, req.Messages[1])

		_, _ = w.Write([]byte(`{
			"choices":[{"message":{"role":"assistant","content":"Yến mạch và trứng."}}],
			"usage":{"prompt_tokens":40,"completion_tokens":8,"total_tokens":48}
		}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", srv.URL, "")
	require.NoError(t, err)

	reply, usage, err := c.SendMessage(context.Background(), "Ăn gì cho bữa sáng?")
	require.NoError(t, err)
	assert.Equal(t, "Yến mạch và trứng.", reply)
	assert.Equal(t, 48, usage.TotalTokens)
}

func TestSendMessageDoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", srv.URL, "")
	require.NoError(t, err)

	_, _, err = c.SendMessage(context.Background(), "hello")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "Rate limit reached", apiErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSendMessageNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", srv.URL, "")
	require.NoError(t, err)

	_, _, err = c.SendMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNoChoices)

	_, _, err = c.SendMessage(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
