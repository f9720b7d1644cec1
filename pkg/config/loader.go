package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ThothYAMLConfig represents the complete thoth.yaml file structure.
type ThothYAMLConfig struct {
	System    *SystemConfig    `yaml:"system"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Jobs      *JobsConfig      `yaml:"jobs"`
	Retention *RetentionConfig `yaml:"retention"`
}

// ModelsYAMLConfig represents the complete models.yaml file structure.
type ModelsYAMLConfig struct {
	Models map[string]*ModelSpec `yaml:"models"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load YAML files from configDir (thoth.yaml, models.yaml)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Merge user values over built-in defaults
//  4. Resolve API keys from the environment
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully", "models", stats.Models)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		System:    DefaultSystemConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Jobs:      DefaultJobsConfig(),
		Retention: DefaultRetentionConfig(),
	}

	// thoth.yaml is optional; defaults apply when it is absent.
	thothPath := filepath.Join(configDir, "thoth.yaml")
	if data, err := os.ReadFile(thothPath); err == nil {
		var parsed ThothYAMLConfig
		if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
			return nil, NewLoadError(thothPath, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		if parsed.System != nil {
			if err := mergo.Merge(cfg.System, parsed.System, mergo.WithOverride); err != nil {
				return nil, NewLoadError(thothPath, err)
			}
		}
		if parsed.Pipeline != nil {
			if err := mergo.Merge(cfg.Pipeline, parsed.Pipeline, mergo.WithOverride); err != nil {
				return nil, NewLoadError(thothPath, err)
			}
		}
		if parsed.Jobs != nil {
			if err := mergo.Merge(cfg.Jobs, parsed.Jobs, mergo.WithOverride); err != nil {
				return nil, NewLoadError(thothPath, err)
			}
		}
		if parsed.Retention != nil {
			if err := mergo.Merge(cfg.Retention, parsed.Retention, mergo.WithOverride); err != nil {
				return nil, NewLoadError(thothPath, err)
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, NewLoadError(thothPath, err)
	}

	// models.yaml is required; agents cannot run without model specs.
	modelsPath := filepath.Join(configDir, "models.yaml")
	data, err := os.ReadFile(modelsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(modelsPath, ErrConfigNotFound)
		}
		return nil, NewLoadError(modelsPath, err)
	}

	var parsed ModelsYAMLConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
		return nil, NewLoadError(modelsPath, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	resolveAPIKeys(parsed.Models)
	if cfg.System.Embedding != nil {
		resolveAPIKeys(map[string]*ModelSpec{"embedding": cfg.System.Embedding})
	}
	cfg.Models = NewModelRegistry(parsed.Models)

	return cfg, nil
}

// resolveAPIKeys fills ModelSpec.APIKey from the environment variable named
// in APIKeyEnv. Missing keys stay empty; validation only rejects them for
// providers that require one.
func resolveAPIKeys(models map[string]*ModelSpec) {
	for _, spec := range models {
		if spec == nil || spec.APIKeyEnv == "" {
			continue
		}
		spec.APIKey = os.Getenv(spec.APIKeyEnv)
	}
}

func validate(cfg *Config) error {
	if cfg.Models == nil || cfg.Models.Len() == 0 {
		return NewValidationError("models", "registry", "", ErrMissingRequiredField)
	}

	for name, spec := range cfg.Models.GetAll() {
		if !spec.Provider.IsValid() {
			return NewValidationError("model", name, "provider", ErrInvalidValue)
		}
		if spec.Model == "" {
			return NewValidationError("model", name, "model", ErrMissingRequiredField)
		}
		if !spec.Provider.IsLocal() && spec.APIKeyEnv == "" && spec.APIKey == "" {
			return NewValidationError("model", name, "api_key_env", ErrMissingRequiredField)
		}
	}

	p := cfg.Pipeline
	if p.NumSQLCandidates < 1 {
		return NewValidationError("pipeline", "pipeline", "num_sql_candidates", ErrInvalidValue)
	}
	if p.PassThreshold <= 0 || p.PassThreshold > 1 {
		return NewValidationError("pipeline", "pipeline", "pass_threshold", ErrInvalidValue)
	}
	if p.MaxAttemptsPerLevel < 1 {
		return NewValidationError("pipeline", "pipeline", "max_attempts_per_level", ErrInvalidValue)
	}
	if p.MaxParallelSQLs < 1 || p.MaxParallelTests < 1 {
		return NewValidationError("pipeline", "pipeline", "max_parallel", ErrInvalidValue)
	}

	if cfg.System.Embedding != nil && !cfg.System.Embedding.Provider.IsValid() {
		return NewValidationError("system", "embedding", "provider", ErrInvalidValue)
	}

	return nil
}
