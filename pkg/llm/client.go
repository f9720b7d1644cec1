package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/mistral"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
)

// client adapts a langchaingo model to the Client interface.
type client struct {
	model       llms.Model
	spec        *config.ModelSpec
	routedModel string
}

// New builds a Client for the given model spec. An unsupported provider
// yields a CONFIGURATION error.
func New(ctx context.Context, spec *config.ModelSpec) (Client, error) {
	routed := RouteModel(spec.Provider, spec.Model)

	var (
		model llms.Model
		err   error
	)

	switch spec.Provider {
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithModel(routed), openai.WithToken(apiKeyFor(spec))}
		if spec.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(spec.BaseURL))
		}
		model, err = openai.New(opts...)

	case config.ProviderCodestral, config.ProviderDeepSeek, config.ProviderLMStudio,
		config.ProviderGroq, config.ProviderOpenRouter:
		// OpenAI-compatible endpoints; the routed model string carries the
		// provider's namespace conventions.
		model, err = openai.New(
			openai.WithModel(routed),
			openai.WithToken(apiKeyFor(spec)),
			openai.WithBaseURL(baseURLFor(spec)),
		)

	case config.ProviderAnthropic:
		model, err = anthropic.New(
			anthropic.WithModel(routed),
			anthropic.WithToken(apiKeyFor(spec)),
		)

	case config.ProviderGemini:
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(apiKeyFor(spec)),
			googleai.WithDefaultModel(routed),
		)

	case config.ProviderMistral:
		model, err = mistral.New(
			mistral.WithModel(routed),
			mistral.WithAPIKey(apiKeyFor(spec)),
		)

	case config.ProviderOllama, config.ProviderLlama:
		model, err = ollama.New(
			ollama.WithModel(routed),
			ollama.WithServerURL(baseURLFor(spec)),
		)

	default:
		return nil, apperrors.Critical(apperrors.CategoryConfiguration,
			fmt.Sprintf("unsupported LLM provider: %s", spec.Provider))
	}

	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryConfiguration, apperrors.SeverityCritical,
			fmt.Sprintf("failed to initialize %s client", spec.Provider), err)
	}

	return &client{model: model, spec: spec, routedModel: routed}, nil
}

// Generate performs one call against the configured provider.
func (c *client) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	messages := req.Messages
	if len(messages) == 0 && req.Prompt != "" {
		messages = []Message{{Role: RoleUser, Content: req.Prompt}}
	}

	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		content = append(content, llms.TextParts(chatRole(msg.Role), msg.Content))
	}

	opts := []llms.CallOption{}
	if temp := c.temperature(req); temp != nil {
		opts = append(opts, llms.WithTemperature(*temp))
	}
	if max := c.maxTokens(req); max > 0 {
		// Ollama maps this to its num_predict count parameter internally.
		opts = append(opts, llms.WithMaxTokens(max))
	}
	if req.JSONMode {
		opts = append(opts, llms.WithJSONMode())
	}
	if req.StreamFunc != nil {
		opts = append(opts, llms.WithStreamingFunc(req.StreamFunc))
	}

	resp, err := c.model.GenerateContent(ctx, content, opts...)
	if err != nil {
		return nil, &Error{Provider: string(c.spec.Provider), Model: c.routedModel, Attempt: 1, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Provider: string(c.spec.Provider), Model: c.routedModel, Attempt: 1,
			Err: fmt.Errorf("provider returned no choices")}
	}

	choice := resp.Choices[0]
	result := &GenerateResult{
		Content: choice.Content,
		Model:   c.routedModel,
	}
	if choice.GenerationInfo != nil {
		result.Usage = usageFromInfo(choice.GenerationInfo)
	}

	return result, nil
}

// CountTokens estimates the token count of text for the client's model.
func (c *client) CountTokens(text string) int {
	return llms.CountTokens(c.spec.Model, text)
}

// ModelID returns the provider-facing model identifier.
func (c *client) ModelID() string {
	return c.routedModel
}

func (c *client) temperature(req *GenerateRequest) *float64 {
	if req.Temperature != nil {
		return req.Temperature
	}
	return c.spec.Temperature
}

func (c *client) maxTokens(req *GenerateRequest) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return c.spec.MaxTokens
}

func chatRole(role MessageRole) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// usageFromInfo extracts token usage from provider generation info. Providers
// disagree on key names; both common spellings are checked.
func usageFromInfo(info map[string]any) *Usage {
	usage := &Usage{}
	found := false
	for _, key := range []string{"PromptTokens", "prompt_tokens", "input_tokens"} {
		if v, ok := asInt(info[key]); ok {
			usage.InputTokens = v
			found = true
			break
		}
	}
	for _, key := range []string{"CompletionTokens", "completion_tokens", "output_tokens"} {
		if v, ok := asInt(info[key]); ok {
			usage.OutputTokens = v
			found = true
			break
		}
	}
	for _, key := range []string{"TotalTokens", "total_tokens"} {
		if v, ok := asInt(info[key]); ok {
			usage.TotalTokens = v
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return usage
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
