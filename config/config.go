package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the CV service and the web front end
type Config struct {
	// Server
	Port      string
	FrontPort string
	Debug     bool

	// Logging
	LogLevel  string
	LogFormat string

	// Text generation
	LLMProvider      string
	APIKey           string
	AnthropicBaseURL string
	LLMModel         string
	LLMMaxTokens     int
	LLMTemperature   float64

	// Google Cloud (Vertex AI, Firestore, Cloud Storage)
	ProjectID   string
	Location    string
	GeminiModel string

	// CV rendering and storage
	IconsPath        string
	PDFDir           string
	StorageBackend   string
	CVBucketName     string
	S3Bucket         string
	S3Endpoint       string
	S3Region         string
	S3AccessKey      string
	S3SecretKey      string
	CVRecordsEnabled bool
	CVLinkMinutes    int
	RabbitMQURL      string

	// Timeouts
	HTTPTimeoutSeconds int
	CVTimeoutSeconds   int

	// Front end
	BackendURL     string
	CVURL          string
	JWTSecret      string
	LoginURL       string
	CVUploadFolder string
	StaticDir      string
	MajorsCSV      string
	CitiesCSV      string
}

// Provider names accepted in LLM_PROVIDER
const (
	ProviderAnthropic = "anthropic"
	ProviderVertex    = "vertex"
)

// Storage backends accepted in STORAGE_BACKEND
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
	StorageS3    = "s3"
)

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		FrontPort: getEnv("FRONT_PORT", "5000"),
		Debug:     getEnvBool("DEBUG", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		LLMProvider:      strings.ToLower(getEnv("LLM_PROVIDER", ProviderAnthropic)),
		APIKey:           getEnv("API_KEY", ""),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
		LLMModel:         getEnv("LLM_MODEL", "claude-3-opus-20240229"),
		LLMMaxTokens:     getEnvInt("LLM_MAX_TOKENS", 1000),
		LLMTemperature:   getEnvFloat("LLM_TEMPERATURE", 0),

		ProjectID:   getEnv("PROJECT_ID", ""),
		Location:    getEnv("LOCATION", "us-central1"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		IconsPath:        getEnv("ICONS_PATH", "icons"),
		PDFDir:           getEnv("PDF_DIR", "cvs"),
		StorageBackend:   strings.ToLower(getEnv("STORAGE_BACKEND", StorageLocal)),
		CVBucketName:     getEnv("CV_BUCKET_NAME", ""),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3Endpoint:       getEnv("S3_ENDPOINT", ""),
		S3Region:         getEnv("S3_REGION", "auto"),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
		CVRecordsEnabled: getEnvBool("CV_RECORDS_ENABLED", false),
		CVLinkMinutes:    getEnvInt("CV_LINK_MINUTES", 15),
		RabbitMQURL:      getEnv("RABBITMQ_URL", ""),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		CVTimeoutSeconds:   getEnvInt("CV_TIMEOUT_SECONDS", 120),

		BackendURL:     getEnv("BACKEND_URL", "http://api:8080"),
		CVURL:          getEnv("CV_URL", "http://cv:3000"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		LoginURL:       getEnv("LOGIN_URL", "/"),
		CVUploadFolder: getEnv("CV_UPLOAD_FOLDER", "static/assets/pdf/cv"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		MajorsCSV:      getEnv("MAJORS_CSV", "fields-of-study.csv"),
		CitiesCSV:      getEnv("CITIES_CSV", "worldcities.csv"),
	}
}

// ValidateCV checks the settings the CV service cannot start without
func (c *Config) ValidateCV() error {
	switch c.LLMProvider {
	case ProviderAnthropic:
		if c.APIKey == "" {
			return &ConfigError{Field: "API_KEY", Message: "API_KEY is required for the anthropic provider"}
		}
	case ProviderVertex:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the vertex provider"}
		}
	default:
		return &ConfigError{Field: "LLM_PROVIDER", Message: "LLM_PROVIDER must be anthropic or vertex"}
	}

	if c.LLMMaxTokens <= 0 {
		return &ConfigError{Field: "LLM_MAX_TOKENS", Message: "LLM_MAX_TOKENS must be positive"}
	}

	switch c.StorageBackend {
	case StorageLocal:
		if c.PDFDir == "" {
			return &ConfigError{Field: "PDF_DIR", Message: "PDF_DIR is required for local storage"}
		}
	case StorageGCS:
		if c.CVBucketName == "" {
			return &ConfigError{Field: "CV_BUCKET_NAME", Message: "CV_BUCKET_NAME is required for gcs storage"}
		}
	case StorageS3:
		if c.S3Bucket == "" {
			return &ConfigError{Field: "S3_BUCKET", Message: "S3_BUCKET is required for s3 storage"}
		}
	default:
		return &ConfigError{Field: "STORAGE_BACKEND", Message: "STORAGE_BACKEND must be local, gcs or s3"}
	}

	if c.CVRecordsEnabled && c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required when CV_RECORDS_ENABLED is set"}
	}

	return nil
}

// ValidateFront checks the settings the web front end cannot start without
func (c *Config) ValidateFront() error {
	if c.BackendURL == "" {
		return &ConfigError{Field: "BACKEND_URL", Message: "BACKEND_URL is required"}
	}
	if c.CVURL == "" {
		return &ConfigError{Field: "CV_URL", Message: "CV_URL is required"}
	}
	if c.JWTSecret == "" {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET is required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
