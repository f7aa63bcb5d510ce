package llmprovider

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"jarvis-agent/config"
	"jarvis-agent/pkg/groq"
	"jarvis-agent/pkg/log"
)

// ProviderConfig describes a single provider instance
type ProviderConfig struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewProvider creates a concrete provider instance based on the provider config
func NewProvider(cfg ProviderConfig) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("provider %s: %w", cfg.Name, ErrMissingAPIKey)
	}

	switch cfg.Name {
	case "", providerGroq:
		var httpClient *http.Client
		if cfg.Timeout > 0 {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		client, err := groq.New(groq.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

// ManagerConfigFromLLM parses the duration strings of config.LLMConfig
func ManagerConfigFromLLM(cfg config.LLMConfig) (*Config, error) {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid retry delay %q: %w", cfg.RetryDelay, err)
	}
	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid max total timeout %q: %w", cfg.MaxTotalTimeout, err)
	}
	return &Config{
		FallbackEnabled: len(modelChain("", cfg.FallbackModels)) > 1,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, nil
}

// NewManagerFor builds a single-provider Manager.
func NewManagerFor(cfg ProviderConfig, managerCfg *Config, logger log.Logger) (*Manager, error) {
	return NewManagerForModels(cfg, nil, managerCfg, logger)
}

// NewManagerForModels builds a Manager whose providers share cfg but differ by
// model: cfg.Model first, then each fallback model in order. Blank and
// repeated models are skipped.
func NewManagerForModels(cfg ProviderConfig, fallbackModels []string, managerCfg *Config, logger log.Logger) (*Manager, error) {
	models := modelChain(cfg.Model, fallbackModels)
	providers := make([]Provider, 0, len(models))
	for _, model := range models {
		pc := cfg
		pc.Model = model
		provider, err := NewProvider(pc)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return NewManager(providers, managerCfg, logger), nil
}

func modelChain(primary string, fallbacks []string) []string {
	primary = strings.TrimSpace(primary)
	chain := []string{primary}
	seen := map[string]bool{primary: true}
	for _, m := range fallbacks {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		chain = append(chain, m)
	}
	return chain
}
