package agent

import (
	"os"
	"strings"
)

const (
	// DefaultModelName is used when neither the call nor the defaults name a model.
	DefaultModelName = "llama3-8b-8192"

	EnvAPIKey    = "GROQ_API_KEY"
	EnvModelName = "GROQ_MODEL"

	reasonMissingCredential = "GROQ_API_KEY must be provided in configuration or environment variables"
)

// Configuration is the per-invocation model configuration.
type Configuration struct {
	APIKey    string `json:"groq_api_key,omitempty"`
	ModelName string `json:"model_name,omitempty"`
}

// DefaultSource supplies process-wide defaults for fields a call leaves empty.
type DefaultSource interface {
	DefaultConfiguration() Configuration
}

// StaticDefaults is a DefaultSource with fixed values, typically resolved once
// at start-up from the config file, the environment and the secret store.
type StaticDefaults Configuration

func (d StaticDefaults) DefaultConfiguration() Configuration { return Configuration(d) }

// EnvDefaults reads GROQ_API_KEY and GROQ_MODEL on every call.
type EnvDefaults struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

func (d EnvDefaults) DefaultConfiguration() Configuration {
	lookup := d.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	key, _ := lookup(EnvAPIKey)
	model, _ := lookup(EnvModelName)
	return Configuration{APIKey: key, ModelName: model}
}

// ResolveConfiguration merges override over defaults. Each field is taken from
// override when non-blank, otherwise from defaults; the model falls back to
// DefaultModelName. A blank credential after both steps is a ConfigError.
func ResolveConfiguration(override *Configuration, defaults DefaultSource) (Configuration, error) {
	var base Configuration
	if defaults != nil {
		base = defaults.DefaultConfiguration()
	}

	var explicit Configuration
	if override != nil {
		explicit = *override
	}

	resolved := Configuration{
		APIKey:    firstNonBlank(explicit.APIKey, base.APIKey),
		ModelName: firstNonBlank(explicit.ModelName, base.ModelName, DefaultModelName),
	}

	if resolved.APIKey == "" {
		return Configuration{}, newConfigError(ErrorMissingCredential, reasonMissingCredential, nil)
	}

	return resolved, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
