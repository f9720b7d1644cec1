package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoth-ai/thoth/pkg/config"
)

func TestRouteModel_PassThrough(t *testing.T) {
	assert.Equal(t, "gpt-4o", RouteModel(config.ProviderOpenAI, "gpt-4o"))
	assert.Equal(t, "claude-sonnet-4", RouteModel(config.ProviderAnthropic, "claude-sonnet-4"))
	assert.Equal(t, "llama3", RouteModel(config.ProviderOllama, "llama3"))
}

func TestRouteModel_Groq(t *testing.T) {
	assert.Equal(t, "groq/llama-3.3-70b-versatile", RouteModel(config.ProviderGroq, "llama-3.3-70b-versatile"))
	assert.Equal(t, "groq/meta-llama/llama-4-scout", RouteModel(config.ProviderGroq, "meta-llama/llama-4-scout"))
	assert.Equal(t, "groq/llama3", RouteModel(config.ProviderGroq, "groq/llama3"))
}

func TestRouteModel_OpenRouter(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"openrouter/openai/gpt-4o", "openrouter/openai/gpt-4o"},
		{"anthropic/claude-sonnet-4", "openrouter/anthropic/claude-sonnet-4"},
		{"gemini-2.0-flash", "openrouter/google/gemini-2.0-flash"},
		{"claude-sonnet-4", "openrouter/anthropic/claude-sonnet-4"},
		{"mistral-large", "openrouter/mistralai/mistral-large"},
		{"codestral-latest", "openrouter/mistralai/codestral-latest"},
		{"deepseek-chat", "openrouter/deepseek/deepseek-chat"},
		{"gpt-4o-mini", "openrouter/openai/gpt-4o-mini"},
		{"o3-mini", "openrouter/openai/o3-mini"},
		{"some-unknown-model", "openrouter/some-unknown-model"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RouteModel(config.ProviderOpenRouter, tt.model), "model %q", tt.model)
	}
}

func TestBaseURLFor(t *testing.T) {
	assert.Equal(t, baseURLGroq, baseURLFor(&config.ModelSpec{Provider: config.ProviderGroq}))
	assert.Equal(t, baseURLOllama, baseURLFor(&config.ModelSpec{Provider: config.ProviderLlama}))
	assert.Equal(t, "", baseURLFor(&config.ModelSpec{Provider: config.ProviderOpenAI}))

	override := &config.ModelSpec{Provider: config.ProviderGroq, BaseURL: "http://proxy:8080/v1"}
	assert.Equal(t, "http://proxy:8080/v1", baseURLFor(override))
}

func TestAPIKeyFor(t *testing.T) {
	assert.Equal(t, "sk-abc", apiKeyFor(&config.ModelSpec{Provider: config.ProviderOpenAI, APIKey: "sk-abc"}))
	assert.Equal(t, placeholderKey, apiKeyFor(&config.ModelSpec{Provider: config.ProviderLMStudio}))
	assert.Equal(t, "", apiKeyFor(&config.ModelSpec{Provider: config.ProviderOpenAI}))
}
