package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const minimalModels = `
models:
  default:
    provider: openai
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
`

func TestInitialize_DefaultsWithMinimalModels(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", minimalModels)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, "./data", cfg.System.DBRoot)
	assert.Equal(t, 12, cfg.Pipeline.NumSQLCandidates)
	assert.Equal(t, 0.9, cfg.Pipeline.PassThreshold)
	assert.Equal(t, 2, cfg.Pipeline.MaxAttemptsPerLevel)
	assert.Equal(t, 0.2, cfg.Pipeline.EvaluatorTemperature)
	assert.Equal(t, 50, cfg.Jobs.UploadBatchSize)
	assert.Equal(t, 90, cfg.Retention.LogRetentionDays)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)
	assert.Equal(t, 1, cfg.Stats().Models)
}

func TestInitialize_ThothYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", minimalModels)
	writeConfig(t, dir, "thoth.yaml", `
system:
  db_root: /var/lib/thoth
  mode: prod
pipeline:
  num_sql_candidates: 6
  pass_threshold: 0.85
jobs:
  upload_batch_size: 200
retention:
  log_retention_days: 30
  cleanup_interval: 1h
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/thoth", cfg.System.DBRoot)
	assert.Equal(t, "prod", cfg.System.Mode)
	assert.Equal(t, 6, cfg.Pipeline.NumSQLCandidates)
	assert.Equal(t, 0.85, cfg.Pipeline.PassThreshold)
	assert.Equal(t, 200, cfg.Jobs.UploadBatchSize)
	assert.Equal(t, 30, cfg.Retention.LogRetentionDays)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)

	// Fields the file does not mention keep their defaults.
	assert.Equal(t, "English", cfg.System.WorkspaceLanguage)
	assert.Equal(t, 3, cfg.Pipeline.MaxParallelTests)
}

func TestInitialize_MissingModelsYAML(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", "models: [not: a: map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ResolvesAPIKeysFromEnv(t *testing.T) {
	t.Setenv("THOTH_TEST_KEY", "sk-resolved")

	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", `
models:
  default:
    provider: anthropic
    model: claude-sonnet-4
    api_key_env: THOTH_TEST_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	spec, err := cfg.GetModel("default")
	require.NoError(t, err)
	assert.Equal(t, "sk-resolved", spec.APIKey)
}

func TestInitialize_TemplateEnvExpansion(t *testing.T) {
	t.Setenv("THOTH_TEST_BASE_URL", "http://localhost:11434")

	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", `
models:
  local:
    provider: ollama
    model: llama3
    base_url: "{{.THOTH_TEST_BASE_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	spec, err := cfg.GetModel("local")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434", spec.BaseURL)
}

func TestValidate_RejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name   string
		models string
	}{
		{"unknown provider", `
models:
  bad:
    provider: watson
    model: x
    api_key_env: K
`},
		{"missing model id", `
models:
  bad:
    provider: openai
    api_key_env: K
`},
		{"remote without key env", `
models:
  bad:
    provider: openai
    model: gpt-4o
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "models.yaml", tt.models)
			_, err := Initialize(context.Background(), dir)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestValidate_RejectsBadPipelineTuning(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", minimalModels)
	writeConfig(t, dir, "thoth.yaml", `
pipeline:
  pass_threshold: 1.5
`)

	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestLocalProviderNeedsNoKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "models.yaml", `
models:
  local:
    provider: lmstudio
    model: qwen2.5-coder
`)

	_, err := Initialize(context.Background(), dir)
	assert.NoError(t, err)
}

func TestExpandEnv_PreservesLiteralDollar(t *testing.T) {
	out := ExpandEnv([]byte(`pattern: "^secret.*$"`))
	assert.Equal(t, `pattern: "^secret.*$"`, string(out))
}

func TestFunctionalityLevelChain(t *testing.T) {
	next, ok := LevelBasic.Next()
	assert.True(t, ok)
	assert.Equal(t, LevelAdvanced, next)

	next, ok = LevelAdvanced.Next()
	assert.True(t, ok)
	assert.Equal(t, LevelExpert, next)

	_, ok = LevelExpert.Next()
	assert.False(t, ok)

	assert.True(t, LevelExpert.Rank() > LevelAdvanced.Rank())
	assert.True(t, LevelAdvanced.Rank() > LevelBasic.Rank())
}
