package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/sirupsen/logrus"

	"github.com/campushire/platform/config"
	"github.com/campushire/platform/utils"
)

// GeminiClient wraps the Vertex AI Gemini client
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(float32(cfg.LLMTemperature))
	model.SetMaxOutputTokens(int32(cfg.LLMMaxTokens))

	utils.GetLogger().WithFields(logrus.Fields{
		"provider": "gemini",
		"model":    cfg.GeminiModel,
		"project":  cfg.ProjectID,
		"location": cfg.Location,
	}).Info("Gemini client initialized")

	return &GeminiClient{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Generate returns the concatenated text parts of the first candidate
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.modelName
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
