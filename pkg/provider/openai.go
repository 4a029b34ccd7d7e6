package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for the OpenAI-compatible client
type Config struct {
	APIKey  string
	Model   string        // defaults to "gpt-4o-mini"
	BaseURL string        // defaults to "https://api.openai.com/v1"
	Timeout time.Duration // per-call ceiling, defaults to 60s
}

// OpenAIClient implements Client against an OpenAI-compatible
// chat-completions endpoint
type OpenAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewOpenAIClient creates a new client. The API key is checked at call time,
// not here, so a misconfigured deployment fails per-request instead of at
// startup.
func NewOpenAIClient(config Config, log logrus.FieldLogger) *OpenAIClient {
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openai.com/v1"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &OpenAIClient{
		apiKey:  config.APIKey,
		model:   config.Model,
		baseURL: config.BaseURL,
		log:     log,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Generate sends the instruction pair to the chat-completions endpoint and
// returns the raw message content of the first choice.
func (c *OpenAIClient) Generate(ctx context.Context, genReq GenerationRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrUnavailable)
	}

	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: genReq.System},
			{Role: "user", Content: genReq.User},
		},
		Temperature: genReq.Temperature,
		MaxTokens:   genReq.MaxOutputTokens,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		detail := fmt.Sprintf("status %d", resp.StatusCode)
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			detail = fmt.Sprintf("status %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		c.log.WithFields(logrus.Fields{
			"model":  c.model,
			"status": resp.StatusCode,
		}).Warn("provider call failed")
		return "", fmt.Errorf("%w: %s", ErrUnavailable, detail)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("%w: unreadable completion: %v", ErrUnavailable, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrUnavailable)
	}

	c.log.WithFields(logrus.Fields{
		"model":             completion.Model,
		"prompt_tokens":     completion.Usage.PromptTokens,
		"completion_tokens": completion.Usage.CompletionTokens,
		"duration_ms":       time.Since(start).Milliseconds(),
	}).Debug("provider call completed")

	return completion.Choices[0].Message.Content, nil
}

// Wire types for the chat-completions API

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}
