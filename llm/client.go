package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushire/platform/config"
)

// ErrEmptyCompletion is returned when the provider answers without any text
var ErrEmptyCompletion = errors.New("no text in model response")

// Client generates free text for a single prompt
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
	Close() error
}

// NewClient creates the text generation client selected by LLM_PROVIDER
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return NewClaudeClient(cfg), nil
	case config.ProviderVertex:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
