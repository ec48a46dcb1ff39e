package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"studyaid/internal/config"
	"studyaid/internal/errors"
)

// OpenRouter calls the OpenRouter chat completions API.
type OpenRouter struct {
	httpClient  *http.Client
	cfg         config.OpenRouterConfig
	maxTokens   int
	temperature float64
}

// NewOpenRouter creates a new OpenRouter provider
func NewOpenRouter(cfg config.OpenRouterConfig, llmCfg config.LLMConfig) *OpenRouter {
	return &OpenRouter{
		httpClient:  &http.Client{Timeout: llmCfg.Timeout},
		cfg:         cfg,
		maxTokens:   llmCfg.MaxTokens,
		temperature: llmCfg.Temperature,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenRouter) Complete(ctx context.Context, prompt string) (string, error) {
	log := zerolog.Ctx(ctx).With().Str("component", "openrouter").Logger()

	if c.cfg.APIKey == "" {
		return "", errors.NewConfigurationError("OpenRouter API key not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	log.Debug().Str("model", c.cfg.Model).Int("prompt_len", len(prompt)).Msg("requesting completion")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.cfg.Referer)
	req.Header.Set("X-Title", c.cfg.Title)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("completion request failed")
		return "", err
	}
	defer resp.Body.Close()

	log.Debug().Dur("elapsed", time.Since(start)).Int("status", resp.StatusCode).Msg("completion response received")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("completion request rejected")
		err := fmt.Errorf("openrouter status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", errors.NewUnavailableError("AI service is temporarily unavailable", err)
		}
		return "", err
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error().Err(err).Msg("failed to decode completion response")
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func (c *OpenRouter) Model() string {
	return c.cfg.Model
}
