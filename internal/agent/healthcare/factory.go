package healthcare

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"jarvis-agent/internal/agent"
	"jarvis-agent/pkg/llmprovider"
	pkgLog "jarvis-agent/pkg/log"
)

// FactoryConfig describes how generators are built per configuration.
type FactoryConfig struct {
	// Provider is the template every model in the chain is built from. The
	// credential and primary model come from the resolved configuration.
	Provider llmprovider.ProviderConfig

	// FallbackModels are tried in order after the primary model fails.
	FallbackModels []string

	Manager   *llmprovider.Config
	CacheSize int
	CacheTTL  time.Duration
}

type generatorKey struct {
	apiKey string
	model  string
}

// NewGeneratorFactory returns a GeneratorFactory that builds a Manager over
// the resolved model followed by cfg.FallbackModels. Managers are reused for
// identical configurations until they expire.
func NewGeneratorFactory(l pkgLog.Logger, cfg FactoryConfig) GeneratorFactory {
	if l == nil {
		l = pkgLog.NewNop()
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultGeneratorCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultGeneratorCacheTTL
	}
	cache := expirable.NewLRU[generatorKey, *llmprovider.Manager](size, nil, ttl)

	return func(resolved agent.Configuration) (llmprovider.Generator, error) {
		key := generatorKey{apiKey: resolved.APIKey, model: resolved.ModelName}
		if m, ok := cache.Get(key); ok {
			return m, nil
		}

		pc := cfg.Provider
		pc.APIKey = resolved.APIKey
		pc.Model = resolved.ModelName

		m, err := llmprovider.NewManagerForModels(pc, cfg.FallbackModels, cfg.Manager, l)
		if err != nil {
			return nil, agent.NewInvalidConfiguration(ReasonClientConstruction, err)
		}
		cache.Add(key, m)
		return m, nil
	}
}
