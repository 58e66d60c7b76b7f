package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"
	requestTimeout = 30 * time.Second

	// SystemPrompt frames every conversation as a Vietnamese nutrition assistant.
	SystemPrompt = "Bạn là một trợ lý dinh dưỡng thông minh, chuyên gia về sức khỏe và dinh dưỡng. Hãy trả lời bằng tiếng Việt."

	Temperature = 0.7
	MaxTokens   = 500
)

var (
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is not set")
	ErrEmptyMessage  = errors.New("message is empty")
	ErrNoChoices     = errors.New("no completion choices returned")
)

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage TokenUsage `json:"usage"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// APIError is a non-200 answer from the completion endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API error: %d - %s", e.StatusCode, e.Message)
}

func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// SendMessage runs a single-turn completion: the fixed system prompt plus the
// user's message. It never retries.
func (c *Client) SendMessage(ctx context.Context, message string) (string, TokenUsage, error) {
	if strings.TrimSpace(message) == "" {
		return "", TokenUsage{}, ErrEmptyMessage
	}

	req := ChatCompletionRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		msg := http.StatusText(response.StatusCode)
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err == nil && errorResponse.Error.Message != "" {
			msg = errorResponse.Error.Message
		}
		return "", TokenUsage{}, &APIError{StatusCode: response.StatusCode, Message: msg}
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", TokenUsage{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", result.Usage, ErrNoChoices
	}

	return result.Choices[0].Message.Content, result.Usage, nil
}
