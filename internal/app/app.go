package app

import (
	"context"
	"fmt"
	"net/http"

	"jarvis-agent/config"
	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/agent/graph"
	"jarvis-agent/internal/agent/healthcare"
	"jarvis-agent/internal/agent/knowledge"
	"jarvis-agent/internal/chat"
	chatUC "jarvis-agent/internal/chat/usecase"
	"jarvis-agent/internal/router"
	"jarvis-agent/pkg/llmprovider"
	"jarvis-agent/pkg/log"
	"jarvis-agent/pkg/paramstore"
	"jarvis-agent/pkg/wikipedia"
)

// App is the wired agent shared by the server and the CLI.
type App struct {
	Router   router.Router
	Runner   *graph.Runner
	Chat     chat.UseCase
	Defaults agent.StaticDefaults
}

// GetterFactory opens the secret store. It is only called when the API key
// has to be read from it.
type GetterFactory func(ctx context.Context, region string) (paramstore.Getter, error)

// DefaultGetterFactory connects to AWS SSM with the default credential chain.
func DefaultGetterFactory(ctx context.Context, region string) (paramstore.Getter, error) {
	client, err := paramstore.NewFromEnvironment(ctx, region)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Build wires the router, both handlers and the graph runner from cfg.
func Build(ctx context.Context, cfg *config.Config, l log.Logger, getters GetterFactory) (*App, error) {
	defaults := ResolveDefaults(ctx, cfg, l, getters)

	wikiCfg := wikipedia.Config{
		BaseURL:            cfg.Wikipedia.BaseURL,
		Language:           cfg.Wikipedia.Language,
		TopK:               cfg.Wikipedia.TopK,
		DocContentCharsMax: cfg.Wikipedia.DocContentCharsMax,
		UserAgent:          cfg.Wikipedia.UserAgent,
		RatePerSecond:      cfg.Wikipedia.RatePerSecond,
		Burst:              cfg.Wikipedia.Burst,
		CacheSize:          cfg.Wikipedia.CacheSize,
		CacheTTL:           cfg.Wikipedia.CacheTTL,
	}
	if cfg.Wikipedia.Timeout > 0 {
		wikiCfg.HTTPClient = &http.Client{Timeout: cfg.Wikipedia.Timeout}
	}
	wiki, err := wikipedia.New(wikiCfg)
	if err != nil {
		return nil, fmt.Errorf("wikipedia client: %w", err)
	}

	managerCfg, err := llmprovider.ManagerConfigFromLLM(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm manager config: %w", err)
	}
	factory := healthcare.NewGeneratorFactory(l, healthcare.FactoryConfig{
		Provider: llmprovider.ProviderConfig{
			Name:    "groq",
			BaseURL: cfg.Groq.BaseURL,
			Timeout: cfg.Groq.Timeout,
		},
		FallbackModels: cfg.LLM.FallbackModels,
		Manager:        managerCfg,
	})

	r := router.New()
	registry := agent.NewRegistry()
	registry.Register(router.RouteHealthcare, healthcare.New(l, defaults, factory))
	registry.Register(router.RouteKnowledge, knowledge.New(l, wiki))

	runner, err := graph.New(l, r, registry)
	if err != nil {
		return nil, err
	}

	return &App{
		Router:   r,
		Runner:   runner,
		Chat:     chatUC.New(runner, r, l),
		Defaults: defaults,
	}, nil
}

// ResolveDefaults builds the process-wide model defaults. The key comes from
// config or GROQ_API_KEY, then from the secret store when a parameter name is
// configured. A missing key is not fatal here since callers may supply one.
func ResolveDefaults(ctx context.Context, cfg *config.Config, l log.Logger, getters GetterFactory) agent.StaticDefaults {
	defaults := agent.StaticDefaults{
		APIKey:    cfg.Groq.APIKey,
		ModelName: cfg.Groq.Model,
	}
	if defaults.APIKey != "" || cfg.Groq.APIKeyParameter == "" || getters == nil {
		return defaults
	}

	getter, err := getters(ctx, cfg.AWS.Region)
	if err != nil {
		l.Warnf(ctx, "internal.app.ResolveDefaults: secret store unavailable: %v", err)
		return defaults
	}
	key, err := paramstore.GetSecret(ctx, getter, cfg.Groq.APIKeyParameter)
	if err != nil {
		l.Warnf(ctx, "internal.app.ResolveDefaults: read %s: %v", cfg.Groq.APIKeyParameter, err)
		return defaults
	}

	l.Infof(ctx, "Groq API key loaded from parameter %s", cfg.Groq.APIKeyParameter)
	defaults.APIKey = key
	return defaults
}
