package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	v := viper.New()

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "googleai", cfg.LLM.Provider)
	assert.Equal(t, 10*time.Second, cfg.Extractor.WebsiteTimeout)
	assert.Equal(t, []string{"ko", "en"}, cfg.Extractor.PreferredLanguages)
	assert.Equal(t, 30*time.Minute, cfg.ResultTTL)
	assert.Equal(t, 5, cfg.Defaults.QuestionCount)
	assert.Equal(t, 20, cfg.Defaults.TimeLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret-key")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("LLM_PROVIDER", "genai")
	v := viper.New()

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.LLM.APIKey)
	assert.Equal(t, "genai", cfg.LLM.Provider)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ProviderAPIKeys(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"openai", "openai-key"},
		{"googleai", "gemini-key"},
		{"genai", "gemini-key"},
		{"ollama", ""},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "gemini-key")
			t.Setenv("OPENAI_API_KEY", "openai-key")
			t.Setenv("LLM_PROVIDER", tt.provider)

			cfg, err := Load(viper.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.LLM.APIKey)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		llm     LLMConfig
		wantErr string
	}{
		{"missing api key", LLMConfig{Provider: "googleai", Model: "m"}, "api_key"},
		{"blank api key", LLMConfig{Provider: "genai", Model: "m", APIKey: "  "}, "api_key"},
		{"ollama without key", LLMConfig{Provider: "ollama", Model: "m", ServerURL: "http://x"}, ""},
		{"unknown provider", LLMConfig{Provider: "mystery", Model: "m", APIKey: "k"}, "unsupported"},
		{"missing model", LLMConfig{Provider: "openai", APIKey: "k"}, "llm.model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LLM: tt.llm}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, 1, cfg.Batch.Concurrency)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("45s")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	d, err = parseDuration("90")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = parseDuration("soon")
	assert.Error(t, err)
}
