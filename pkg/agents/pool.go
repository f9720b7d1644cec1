package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thoth-ai/thoth/pkg/apperrors"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/llm"
)

// Pool holds the warmed agent clients of one workspace. Slots left
// unconfigured in the workspace are simply absent; callers check Has first
// for optional agents.
type Pool struct {
	clients map[Slot]llm.Client
	models  map[Slot]string
	logger  *slog.Logger
}

// NewPool resolves the workspace agent slots against the model registry and
// opens one client per configured slot. The validator and translator always
// run on the default model.
func NewPool(ctx context.Context, defaultModel string, slots map[string]string, registry *config.ModelRegistry, logger *slog.Logger) (*Pool, error) {
	p := &Pool{
		clients: make(map[Slot]llm.Client),
		models:  make(map[Slot]string),
		logger:  logger.With("component", "agents"),
	}

	open := func(slot Slot, modelName string) error {
		spec, err := registry.Get(modelName)
		if err != nil {
			return apperrors.Wrap(apperrors.CategoryConfiguration, apperrors.SeverityCritical,
				fmt.Sprintf("agent slot %s references unknown model %q", slot, modelName), err)
		}
		client, err := llm.New(ctx, spec)
		if err != nil {
			return err
		}
		p.clients[slot] = client
		p.models[slot] = modelName
		return nil
	}

	if defaultModel == "" {
		return nil, apperrors.Critical(apperrors.CategoryConfiguration,
			"workspace has no default model")
	}
	if err := open(SlotValidator, defaultModel); err != nil {
		return nil, err
	}
	if err := open(SlotTranslator, defaultModel); err != nil {
		return nil, err
	}

	for name, modelName := range slots {
		if modelName == "" {
			continue
		}
		if err := open(Slot(name), modelName); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewStaticPool wires pre-built clients directly into a pool, bypassing the
// model registry. Used by tests that substitute fake clients.
func NewStaticPool(clients map[Slot]llm.Client, models map[Slot]string, logger *slog.Logger) *Pool {
	p := &Pool{
		clients: make(map[Slot]llm.Client, len(clients)),
		models:  make(map[Slot]string, len(models)),
		logger:  logger.With("component", "agents"),
	}
	for slot, c := range clients {
		p.clients[slot] = c
	}
	for slot, m := range models {
		p.models[slot] = m
	}
	return p
}

// Has reports whether a slot is configured.
func (p *Pool) Has(slot Slot) bool {
	_, ok := p.clients[slot]
	return ok
}

// ModelFor returns the model name behind a slot, or "".
func (p *Pool) ModelFor(slot Slot) string {
	return p.models[slot]
}

func (p *Pool) client(slot Slot) (llm.Client, error) {
	c, ok := p.clients[slot]
	if !ok {
		return nil, apperrors.New(apperrors.CategoryAIAgent, apperrors.SeverityCritical,
			fmt.Sprintf("no agent configured for slot %s", slot))
	}
	return c, nil
}

// Validate runs the question validator.
func (p *Pool) Validate(ctx context.Context, question, workspaceLanguage string) (*ValidationResult, error) {
	c, err := p.client(SlotValidator)
	if err != nil {
		return nil, err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: validatorSystemPrompt},
			{Role: llm.RoleUser, Content: renderValidatorPrompt(question, workspaceLanguage)},
		},
		JSONMode: true,
	})
	if err != nil {
		return nil, err
	}
	var out ValidationResult
	if err := parseJSON(res.Content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Translate rewrites the question into the workspace language.
func (p *Pool) Translate(ctx context.Context, question, from, to string) (string, error) {
	c, err := p.client(SlotTranslator)
	if err != nil {
		return "", err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt: renderTranslatorPrompt(question, from, to),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Content), nil
}

// ExtractKeywords runs the keyword selector.
func (p *Pool) ExtractKeywords(ctx context.Context, question string, evidence []string) ([]string, error) {
	c, err := p.client(SlotKeywordSelector)
	if err != nil {
		return nil, err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt:   renderKeywordPrompt(question, evidence),
		JSONMode: true,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		Keywords []string `json:"keywords"`
	}
	if err := parseJSON(res.Content, &out); err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// GenerateSQL runs the generator for the given level with one method and
// temperature. The result is never nil on nil error; parse failures come back
// as an unsuccessful candidate so siblings keep their indices.
func (p *Pool) GenerateSQL(ctx context.Context, level config.FunctionalityLevel, in *SQLPromptInput, method Method, temperature float64) (*SQLCandidate, error) {
	c, err := p.client(SQLSlotForLevel(level))
	if err != nil {
		return nil, err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt:      renderSQLPrompt(in, method),
		Temperature: &temperature,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}
	var out SQLCandidate
	if err := parseJSON(res.Content, &out); err != nil {
		p.logger.Warn("unparseable SQL candidate", "level", level, "error", err)
		return &SQLCandidate{Success: false, Thinking: res.Content, Method: method, Temperature: temperature}, nil
	}
	out.SQL = strings.TrimSpace(out.SQL)
	out.Method = method
	out.Temperature = temperature
	if out.SQL == "" {
		out.Success = false
	}
	return &out, nil
}

// GenerateTests runs one of the two test generator slots.
func (p *Pool) GenerateTests(ctx context.Context, slot Slot, in *TestPromptInput) (*TestSet, error) {
	c, err := p.client(slot)
	if err != nil {
		return nil, err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt:   renderTestGenPrompt(in),
		JSONMode: true,
	})
	if err != nil {
		return nil, err
	}
	var out TestSet
	if err := parseJSON(res.Content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReduceTests asks the reducer for a semantically deduplicated subset. On
// any failure the input set is returned unchanged; reduction is best-effort.
func (p *Pool) ReduceTests(ctx context.Context, tests []string) []string {
	c, err := p.client(SlotTestExecutor)
	if err != nil {
		return tests
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt:   renderTestReducerPrompt(tests),
		JSONMode: true,
	})
	if err != nil {
		p.logger.Warn("test reduction failed, keeping deduplicated set", "error", err)
		return tests
	}
	var out TestSet
	if err := parseJSON(res.Content, &out); err != nil || len(out.Answers) == 0 {
		return tests
	}
	return out.Answers
}

// Evaluate runs the evaluator for one SQL against the full test list. The
// temperature is fixed at EvaluatorTemperature.
func (p *Pool) Evaluate(ctx context.Context, question, mschema, sql string, tests []string) (*EvaluationSet, error) {
	c, err := p.client(SlotTestExecutor)
	if err != nil {
		return nil, err
	}
	temp := EvaluatorTemperature
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt:      renderEvaluatorPrompt(question, mschema, sql, tests),
		Temperature: &temp,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}
	var out EvaluationSet
	if err := parseJSON(res.Content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Explain runs the SQL explainer.
func (p *Pool) Explain(ctx context.Context, in *ExplainInput) (string, error) {
	c, err := p.client(SlotSQLExplainer)
	if err != nil {
		return "", err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt: renderExplainPrompt(in),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Content), nil
}

// AskHuman runs the clarification agent.
func (p *Pool) AskHuman(ctx context.Context, question, reason string) (*ClarificationRequest, error) {
	c, err := p.client(SlotAskHuman)
	if err != nil {
		return nil, err
	}
	res, err := c.Generate(ctx, &llm.GenerateRequest{
		Prompt:   renderAskHumanPrompt(question, reason),
		JSONMode: true,
	})
	if err != nil {
		return nil, err
	}
	var out ClarificationRequest
	if err := parseJSON(res.Content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// parseJSON unmarshals a model response, tolerating markdown code fences and
// leading prose before the first brace.
func parseJSON(content string, v any) error {
	s := strings.TrimSpace(content)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	if i := strings.IndexAny(s, "{["); i > 0 {
		s = s[i:]
	}
	s = strings.TrimSpace(s)
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return apperrors.Wrap(apperrors.CategoryAIAgent, apperrors.SeverityError,
			"model returned unparseable JSON", err)
	}
	return nil
}
