package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Language model
	Groq GroqConfig
	LLM  LLMConfig

	// Knowledge lookup
	Wikipedia WikipediaConfig

	// Secret store
	AWS AWSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// GroqConfig holds the process-wide defaults for the healthcare model.
// Per-call values override APIKey and Model.
type GroqConfig struct {
	APIKey          string
	APIKeyParameter string // SSM parameter name, used only when APIKey is empty
	Model           string
	BaseURL         string
	Timeout         time.Duration
}

// LLMConfig holds configuration for the LLM provider manager
type LLMConfig struct {
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string

	// FallbackModels are tried in order after the configured model fails.
	FallbackModels []string
}

type WikipediaConfig struct {
	BaseURL            string
	Language           string
	TopK               int
	DocContentCharsMax int
	Timeout            time.Duration
	UserAgent          string
	RatePerSecond      float64
	Burst              int
	CacheSize          int
	CacheTTL           time.Duration
}

type AWSConfig struct {
	Region string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/jarvis/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/jarvis/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
// Environment variables are bound and defaults applied here.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Groq
	cfg.Groq.APIKey = v.GetString("groq.api_key")
	cfg.Groq.APIKeyParameter = v.GetString("groq.api_key_parameter")
	cfg.Groq.Model = v.GetString("groq.model")
	cfg.Groq.BaseURL = v.GetString("groq.base_url")
	cfg.Groq.Timeout = v.GetDuration("groq.timeout")
	if groqKey := v.GetString("groq_api_key"); groqKey != "" {
		cfg.Groq.APIKey = groqKey
	}
	if groqModel := v.GetString("groq_model"); groqModel != "" {
		cfg.Groq.Model = groqModel
	}

	// LLM manager
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.FallbackModels = v.GetStringSlice("llm.fallback_models")

	// Wikipedia
	cfg.Wikipedia.BaseURL = v.GetString("wikipedia.base_url")
	cfg.Wikipedia.Language = v.GetString("wikipedia.language")
	cfg.Wikipedia.TopK = v.GetInt("wikipedia.top_k")
	cfg.Wikipedia.DocContentCharsMax = v.GetInt("wikipedia.doc_content_chars_max")
	cfg.Wikipedia.Timeout = v.GetDuration("wikipedia.timeout")
	cfg.Wikipedia.UserAgent = v.GetString("wikipedia.user_agent")
	cfg.Wikipedia.RatePerSecond = v.GetFloat64("wikipedia.rate_per_second")
	cfg.Wikipedia.Burst = v.GetInt("wikipedia.burst")
	cfg.Wikipedia.CacheSize = v.GetInt("wikipedia.cache_size")
	cfg.Wikipedia.CacheTTL = v.GetDuration("wikipedia.cache_ttl")

	// AWS
	cfg.AWS.Region = v.GetString("aws.region")
	if region := v.GetString("aws_region"); region != "" {
		cfg.AWS.Region = region
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	// Groq defaults
	v.SetDefault("groq.model", "llama3-8b-8192")
	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.timeout", "60s")

	// LLM defaults: a single attempt, no retry
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")

	// Wikipedia defaults
	v.SetDefault("wikipedia.language", "en")
	v.SetDefault("wikipedia.top_k", 3)
	v.SetDefault("wikipedia.doc_content_chars_max", 4000)
	v.SetDefault("wikipedia.timeout", "15s")
	v.SetDefault("wikipedia.user_agent", "jarvis-agent/1.0")
	v.SetDefault("wikipedia.rate_per_second", 5.0)
	v.SetDefault("wikipedia.burst", 5)
	v.SetDefault("wikipedia.cache_size", 256)
	v.SetDefault("wikipedia.cache_ttl", "30m")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.LLM.RetryAttempts < 1 {
		return fmt.Errorf("llm.retry_attempts must be at least 1")
	}
	if _, err := time.ParseDuration(cfg.LLM.RetryDelay); err != nil {
		return fmt.Errorf("llm.retry_delay: %w", err)
	}
	if _, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout); err != nil {
		return fmt.Errorf("llm.max_total_timeout: %w", err)
	}
	if cfg.Wikipedia.TopK <= 0 {
		return fmt.Errorf("wikipedia.top_k must be positive")
	}
	return nil
}
