// Package llm talks to text-generation providers behind a common interface.
package llm

import (
	"context"
	"fmt"

	"studyaid/internal/config"
)

// Provider generates a completion for a prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewProvider selects a Provider implementation from the configuration.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouter, cfg.LLM), nil
	case "gemini":
		return NewGemini(cfg.Gemini, cfg.LLM), nil
	case "fake":
		return &Fake{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
