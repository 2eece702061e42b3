package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"

	"github.com/campushire/platform/config"
	"github.com/campushire/platform/utils"
)

// ClaudeClient generates text with Anthropic's Messages API
type ClaudeClient struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	logger      *logrus.Logger
}

// NewClaudeClient creates a new Claude client. Requests are sent once, the
// SDK's own retries are disabled.
func NewClaudeClient(cfg *config.Config, opts ...option.RequestOption) *ClaudeClient {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(utils.NewHTTPClient(time.Duration(cfg.CVTimeoutSeconds) * time.Second)),
	}
	if cfg.AnthropicBaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.AnthropicBaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &ClaudeClient{
		client:      anthropic.NewClient(reqOpts...),
		model:       cfg.LLMModel,
		maxTokens:   int64(cfg.LLMMaxTokens),
		temperature: cfg.LLMTemperature,
		logger:      utils.GetLogger(),
	}
}

// Generate sends prompt as a single user message and returns the first text block
func (c *ClaudeClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.WithFields(logrus.Fields{
		"provider":      "claude",
		"model":         c.model,
		"output_tokens": resp.Usage.OutputTokens,
		"duration":      time.Since(start),
	}).Debug("Claude response received")

	return text, nil
}

// Model returns the configured model name
func (c *ClaudeClient) Model() string {
	return c.model
}

// Close is a no-op, the SDK holds no resources
func (c *ClaudeClient) Close() error {
	return nil
}
