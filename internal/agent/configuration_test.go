package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestResolveConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		override *Configuration
		defaults DefaultSource
		want     Configuration
	}{
		{
			name:     "explicit values win",
			override: &Configuration{APIKey: "call-key", ModelName: "llama-3.1-70b"},
			defaults: StaticDefaults{APIKey: "env-key", ModelName: "env-model"},
			want:     Configuration{APIKey: "call-key", ModelName: "llama-3.1-70b"},
		},
		{
			name:     "falls back to defaults",
			override: nil,
			defaults: StaticDefaults{APIKey: "env-key", ModelName: "env-model"},
			want:     Configuration{APIKey: "env-key", ModelName: "env-model"},
		},
		{
			name:     "blank override fields fall back per field",
			override: &Configuration{APIKey: "  ", ModelName: "mixtral"},
			defaults: StaticDefaults{APIKey: "env-key"},
			want:     Configuration{APIKey: "env-key", ModelName: "mixtral"},
		},
		{
			name:     "default model name",
			override: &Configuration{APIKey: "call-key"},
			defaults: nil,
			want:     Configuration{APIKey: "call-key", ModelName: DefaultModelName},
		},
		{
			name:     "environment source",
			defaults: EnvDefaults{LookupEnv: fakeEnv(map[string]string{EnvAPIKey: " gsk_env ", EnvModelName: "llama-3.1-8b-instant"})},
			want:     Configuration{APIKey: "gsk_env", ModelName: "llama-3.1-8b-instant"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveConfiguration(tt.override, tt.defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConfiguration_MissingCredential(t *testing.T) {
	sources := map[string]DefaultSource{
		"nil defaults":  nil,
		"empty static":  StaticDefaults{ModelName: "x"},
		"empty env":     EnvDefaults{LookupEnv: fakeEnv(nil)},
		"blank env key": EnvDefaults{LookupEnv: fakeEnv(map[string]string{EnvAPIKey: "   "})},
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveConfiguration(&Configuration{ModelName: "m"}, src)
			require.Error(t, err)

			ce, ok := AsConfigError(err)
			require.True(t, ok)
			assert.Equal(t, ErrorMissingCredential, ce.Code)
			assert.Contains(t, err.Error(), "GROQ_API_KEY")
		})
	}
}

func TestEnvDefaults_UsesProcessEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-process")
	t.Setenv(EnvModelName, "")

	got := EnvDefaults{}.DefaultConfiguration()
	assert.Equal(t, "from-process", got.APIKey)
	assert.Equal(t, "", got.ModelName)
}

func TestConfigError(t *testing.T) {
	cause := errors.New("unknown provider")
	err := NewInvalidConfiguration("cannot build model client", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "agent: INVALID_CONFIGURATION (cannot build model client): unknown provider", err.Error())

	var nilErr *ConfigError
	assert.Equal(t, "", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())

	_, ok := AsConfigError(cause)
	assert.False(t, ok)

	rejected := NewInvalidCredential("model service rejected the API key", cause)
	assert.Equal(t, ErrorInvalidCredential, rejected.Code)
	assert.ErrorIs(t, rejected, cause)
}
