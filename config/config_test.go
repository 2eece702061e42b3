package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MAX_TOKENS", "")
	t.Setenv("STORAGE_BACKEND", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, 1000, cfg.LLMMaxTokens)
	assert.Equal(t, 0.0, cfg.LLMTemperature)
	assert.Equal(t, StorageLocal, cfg.StorageBackend)
	assert.Equal(t, 15, cfg.CVLinkMinutes)
	assert.Equal(t, "http://api:8080", cfg.BackendURL)
	assert.Equal(t, "http://cv:3000", cfg.CVURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("LLM_PROVIDER", "Vertex")
	t.Setenv("LLM_MAX_TOKENS", "2048")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("CV_RECORDS_ENABLED", "1")
	t.Setenv("PDF_DIR", "/tmp/cvs")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ProviderVertex, cfg.LLMProvider)
	assert.Equal(t, 2048, cfg.LLMMaxTokens)
	assert.InDelta(t, 0.3, cfg.LLMTemperature, 1e-9)
	assert.True(t, cfg.CVRecordsEnabled)
	assert.Equal(t, "/tmp/cvs", cfg.PDFDir)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "lots")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 1000, cfg.LLMMaxTokens)
	assert.False(t, cfg.Debug)
}

func TestValidateCV(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{
			name:  "anthropic without key",
			cfg:   Config{LLMProvider: ProviderAnthropic, LLMMaxTokens: 1000, StorageBackend: StorageLocal, PDFDir: "cvs"},
			field: "API_KEY",
		},
		{
			name:  "vertex without project",
			cfg:   Config{LLMProvider: ProviderVertex, LLMMaxTokens: 1000, StorageBackend: StorageLocal, PDFDir: "cvs"},
			field: "PROJECT_ID",
		},
		{
			name:  "unknown provider",
			cfg:   Config{LLMProvider: "openai"},
			field: "LLM_PROVIDER",
		},
		{
			name:  "gcs without bucket",
			cfg:   Config{LLMProvider: ProviderAnthropic, APIKey: "k", LLMMaxTokens: 1000, StorageBackend: StorageGCS},
			field: "CV_BUCKET_NAME",
		},
		{
			name:  "s3 without bucket",
			cfg:   Config{LLMProvider: ProviderAnthropic, APIKey: "k", LLMMaxTokens: 1000, StorageBackend: StorageS3},
			field: "S3_BUCKET",
		},
		{
			name:  "records without project",
			cfg:   Config{LLMProvider: ProviderAnthropic, APIKey: "k", LLMMaxTokens: 1000, StorageBackend: StorageLocal, PDFDir: "cvs", CVRecordsEnabled: true},
			field: "PROJECT_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCV()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidateCV_Valid(t *testing.T) {
	cfg := Config{
		LLMProvider:    ProviderAnthropic,
		APIKey:         "sk-test",
		LLMMaxTokens:   1000,
		StorageBackend: StorageLocal,
		PDFDir:         "cvs",
	}
	assert.NoError(t, cfg.ValidateCV())
}

func TestValidateFront(t *testing.T) {
	cfg := Config{BackendURL: "http://api:8080", CVURL: "http://cv:3000", JWTSecret: "s"}
	assert.NoError(t, cfg.ValidateFront())

	cfg.CVURL = ""
	err := cfg.ValidateFront()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CV_URL")
}
