package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"quizbank/internal/config"
	"quizbank/internal/model"
	"time"
)

// CompletionOptions tunes a single completion call
type CompletionOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Completer turns role-tagged messages into generated text
type Completer interface {
	Complete(ctx context.Context, messages []model.ChatMessage, opts CompletionOptions) (string, error)
}

// CompletionClient calls an OpenAI-compatible chat completions endpoint
type CompletionClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewCompletionClient creates a completion client from cfg
func NewCompletionClient(cfg *config.AIConfig) *CompletionClient {
	if !cfg.IsEnabled() {
		log.Println("[Completion] Warning: OPENAI_API_KEY not set")
	}
	return &CompletionClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// DefaultOptions returns the configured model, temperature and token budget
func (c *CompletionClient) DefaultOptions() CompletionOptions {
	return CompletionOptions{
		Model:       c.config.Model,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}
}

type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []model.ChatMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends messages and returns the first choice's content.
// Non-2xx responses become a *CompletionError with the raw body.
func (c *CompletionClient) Complete(ctx context.Context, messages []model.ChatMessage, opts CompletionOptions) (string, error) {
	jsonBody, err := json.Marshal(chatCompletionRequest{
		Model:       opts.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ChatCompletionsURL(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[Completion] request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[Completion] %s returned %d after %v", opts.Model, resp.StatusCode, time.Since(start))
		return "", &CompletionError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", &CompletionError{Status: resp.StatusCode, Body: string(body)}
	}

	log.Printf("[Completion] %s answered in %v", opts.Model, time.Since(start))
	return parsed.Choices[0].Message.Content, nil
}
