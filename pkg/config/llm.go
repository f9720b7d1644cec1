package config

import (
	"fmt"
	"sync"
)

// ModelSpec is the normalized model configuration passed to the LLM facade.
// Provider-specific quirks (Groq prefixing, Ollama token parameter) live
// inside the facade, not here.
type ModelSpec struct {
	// Provider family (required)
	Provider LLMProviderType `yaml:"provider" validate:"required"`

	// Model identifier (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Resolved API key (populated by the loader from APIKeyEnv)
	APIKey string `yaml:"-"`

	// Optional custom endpoint
	BaseURL string `yaml:"base_url,omitempty"`

	// Optional default temperature
	Temperature *float64 `yaml:"temperature,omitempty"`

	// Optional default max tokens
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// ModelRegistry stores named model specs with thread-safe access.
type ModelRegistry struct {
	models map[string]*ModelSpec
	mu     sync.RWMutex
}

// NewModelRegistry creates a registry over the given specs.
func NewModelRegistry(models map[string]*ModelSpec) *ModelRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ModelSpec, len(models))
	for k, v := range models {
		copied[k] = v
	}
	return &ModelRegistry{models: copied}
}

// Get retrieves a model spec by name (thread-safe).
func (r *ModelRegistry) Get(name string) (*ModelSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, exists := r.models[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return spec, nil
}

// GetAll returns a copy of all model specs (thread-safe).
func (r *ModelRegistry) GetAll() map[string]*ModelSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ModelSpec, len(r.models))
	for k, v := range r.models {
		result[k] = v
	}
	return result
}

// Has checks if a model spec exists (thread-safe).
func (r *ModelRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.models[name]
	return exists
}

// Len returns the number of registered model specs (thread-safe).
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
