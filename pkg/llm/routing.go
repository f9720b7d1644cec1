package llm

import (
	"strings"

	"github.com/thoth-ai/thoth/pkg/config"
)

// Default base URLs for OpenAI-compatible providers.
const (
	baseURLCodestral  = "https://codestral.mistral.ai/v1"
	baseURLDeepSeek   = "https://api.deepseek.com/v1"
	baseURLLMStudio   = "http://localhost:1234/v1"
	baseURLGroq       = "https://api.groq.com/openai/v1"
	baseURLOpenRouter = "https://openrouter.ai/api/v1"
	baseURLOllama     = "http://localhost:11434"
)

// placeholderKey is substituted for local providers that require a non-empty
// API key field but ignore its value.
const placeholderKey = "local-key"

// knownVendorPrefixes are model namespaces recognized when re-prefixing for
// Groq, and the prefix→vendor table used for OpenRouter namespace inference.
var knownVendorPrefixes = []string{
	"openai/", "anthropic/", "google/", "mistralai/", "deepseek/", "meta-llama/", "qwen/",
}

// RouteModel maps a configured model identifier to the provider-facing model
// string. OpenAI-compatible endpoints pass the model through unchanged; Groq
// and OpenRouter apply their namespace conventions.
func RouteModel(provider config.LLMProviderType, model string) string {
	switch provider {
	case config.ProviderGroq:
		return routeGroq(model)
	case config.ProviderOpenRouter:
		return routeOpenRouter(model)
	default:
		return model
	}
}

// routeGroq prefixes with "groq/". A model already namespaced by a known
// vendor prefix is kept verbatim and re-prefixed.
func routeGroq(model string) string {
	if strings.HasPrefix(model, "groq/") {
		return model
	}
	return "groq/" + model
}

// routeOpenRouter prefixes with "openrouter/" and infers a vendor namespace
// from known model-name prefixes when none was supplied.
func routeOpenRouter(model string) string {
	if strings.HasPrefix(model, "openrouter/") {
		return model
	}
	for _, vendor := range knownVendorPrefixes {
		if strings.HasPrefix(model, vendor) {
			return "openrouter/" + model
		}
	}
	switch {
	case strings.HasPrefix(model, "gemini"):
		return "openrouter/google/" + model
	case strings.HasPrefix(model, "claude"):
		return "openrouter/anthropic/" + model
	case strings.HasPrefix(model, "mistral"), strings.HasPrefix(model, "codestral"):
		return "openrouter/mistralai/" + model
	case strings.HasPrefix(model, "deepseek"):
		return "openrouter/deepseek/" + model
	case strings.HasPrefix(model, "gpt"), strings.HasPrefix(model, "o3"):
		return "openrouter/openai/" + model
	default:
		return "openrouter/" + model
	}
}

// baseURLFor returns the default endpoint for OpenAI-compatible providers,
// honoring a per-spec override.
func baseURLFor(spec *config.ModelSpec) string {
	if spec.BaseURL != "" {
		return spec.BaseURL
	}
	switch spec.Provider {
	case config.ProviderCodestral:
		return baseURLCodestral
	case config.ProviderDeepSeek:
		return baseURLDeepSeek
	case config.ProviderLMStudio:
		return baseURLLMStudio
	case config.ProviderGroq:
		return baseURLGroq
	case config.ProviderOpenRouter:
		return baseURLOpenRouter
	case config.ProviderOllama, config.ProviderLlama:
		return baseURLOllama
	default:
		return ""
	}
}

// apiKeyFor returns the configured key, or the placeholder for local providers.
func apiKeyFor(spec *config.ModelSpec) string {
	if spec.APIKey != "" {
		return spec.APIKey
	}
	if spec.Provider.IsLocal() {
		return placeholderKey
	}
	return ""
}
