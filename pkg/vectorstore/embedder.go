package vectorstore

import (
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
)

// NewEmbedder builds an embeddings client from the configured embedding model.
// OpenAI-compatible providers share the openai client; Ollama embeds locally.
func NewEmbedder(spec *config.ModelSpec) (embeddings.Embedder, error) {
	if spec == nil {
		return nil, apperrors.Critical(apperrors.CategoryConfiguration,
			"no embedding model configured")
	}

	var (
		client embeddings.EmbedderClient
		err    error
	)
	switch spec.Provider {
	case config.ProviderOllama:
		opts := []ollama.Option{ollama.WithModel(spec.Model)}
		if spec.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(spec.BaseURL))
		}
		client, err = ollama.New(opts...)
	default:
		opts := []openai.Option{
			openai.WithModel(spec.Model),
			openai.WithEmbeddingModel(spec.Model),
			openai.WithToken(spec.APIKey),
		}
		if spec.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(spec.BaseURL))
		}
		client, err = openai.New(opts...)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryConfiguration, apperrors.SeverityCritical,
			fmt.Sprintf("failed to create embedding client for %s", spec.Model), err)
	}

	return embeddings.NewEmbedder(client)
}
