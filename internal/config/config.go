package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr               string           `mapstructure:"addr"`
	DBPath             string           `mapstructure:"db_path"`
	LogLevel           string           `mapstructure:"log_level"`
	LogPretty          bool             `mapstructure:"log_pretty"`
	CORSAllowedOrigins []string         `mapstructure:"cors_allowed_origins"`
	UploadMaxBytes     int64            `mapstructure:"upload_max_bytes"`
	GenerationWorkers  int              `mapstructure:"generation_workers"`
	ShutdownTimeout    time.Duration    `mapstructure:"shutdown_timeout"`
	Blob               BlobConfig       `mapstructure:"blob"`
	MinIO              MinIOConfig      `mapstructure:"minio"`
	LLM                LLMConfig        `mapstructure:"llm"`
	OpenRouter         OpenRouterConfig `mapstructure:"openrouter"`
	Gemini             GeminiConfig     `mapstructure:"gemini"`
}

type BlobConfig struct {
	Driver   string `mapstructure:"driver"`
	LocalDir string `mapstructure:"local_dir"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Referer string `mapstructure:"referer"`
	Title   string `mapstructure:"title"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Load reads configuration from an optional config.yaml, a .env file and
// the environment, in increasing precedence. Nested keys map to env vars
// with underscores, e.g. openrouter.api_key -> OPENROUTER_API_KEY.
// A missing LLM API key is not an error here: generation endpoints
// report it at call time, the rest of the server works without it.
func Load() (*Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("addr", ":8000")
	viper.SetDefault("db_path", "studyaid.db")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_pretty", false)
	viper.SetDefault("cors_allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("upload_max_bytes", 52428800) // 50MB
	viper.SetDefault("generation_workers", 3)
	viper.SetDefault("shutdown_timeout", "30s")

	viper.SetDefault("blob.driver", "local")
	viper.SetDefault("blob.local_dir", "uploads")

	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "")
	viper.SetDefault("minio.secret_key", "")
	viper.SetDefault("minio.bucket", "studyaid")
	viper.SetDefault("minio.use_ssl", false)

	viper.SetDefault("llm.provider", "openrouter")
	viper.SetDefault("llm.timeout", "60s")
	viper.SetDefault("llm.max_tokens", 2000)
	viper.SetDefault("llm.temperature", 0.7)

	viper.SetDefault("openrouter.api_key", "")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "deepseek/deepseek-r1-distill-llama-70b:free")
	viper.SetDefault("openrouter.referer", "http://localhost:3000")
	viper.SetDefault("openrouter.title", "StudyAid")

	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
}

// Validate reports every problem at once so a misconfigured deployment
// surfaces the full list instead of one complaint per restart.
func (c *Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.UploadMaxBytes <= 0 {
		problems = append(problems, "UPLOAD_MAX_BYTES must be positive")
	}
	if c.GenerationWorkers <= 0 {
		problems = append(problems, "GENERATION_WORKERS must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}

	switch c.Blob.Driver {
	case "local", "minio":
	default:
		problems = append(problems, fmt.Sprintf("BLOB_DRIVER must be local or minio, got %q", c.Blob.Driver))
	}
	if c.Blob.Driver == "local" && c.Blob.LocalDir == "" {
		problems = append(problems, "BLOB_LOCAL_DIR cannot be empty")
	}
	if c.Blob.Driver == "minio" {
		if c.MinIO.Endpoint == "" {
			problems = append(problems, "MINIO_ENDPOINT cannot be empty when BLOB_DRIVER is minio")
		}
		if c.MinIO.Bucket == "" {
			problems = append(problems, "MINIO_BUCKET cannot be empty when BLOB_DRIVER is minio")
		}
	}

	switch c.LLM.Provider {
	case "openrouter", "gemini", "fake":
	default:
		problems = append(problems, fmt.Sprintf("LLM_PROVIDER must be openrouter, gemini or fake, got %q", c.LLM.Provider))
	}
	if c.LLM.Timeout <= 0 {
		problems = append(problems, "LLM_TIMEOUT must be positive")
	}
	if c.LLM.MaxTokens <= 0 {
		problems = append(problems, "LLM_MAX_TOKENS must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		problems = append(problems, "LLM_TEMPERATURE must be between 0 and 2")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
