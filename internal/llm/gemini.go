package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"studyaid/internal/config"
	"studyaid/internal/errors"
)

// Gemini calls the Google Gemini API.
type Gemini struct {
	cfg         config.GeminiConfig
	maxTokens   int32
	temperature float32
}

// NewGemini creates a new Gemini provider
func NewGemini(cfg config.GeminiConfig, llmCfg config.LLMConfig) *Gemini {
	return &Gemini{
		cfg:         cfg,
		maxTokens:   int32(llmCfg.MaxTokens),
		temperature: float32(llmCfg.Temperature),
	}
}

func (c *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.NewConfigurationError("Gemini API key not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.cfg.APIKey))
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.cfg.Model)
	maxTokens := c.maxTokens
	temperature := c.temperature
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temperature,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return b.String(), nil
}

func (c *Gemini) Model() string {
	return c.cfg.Model
}
