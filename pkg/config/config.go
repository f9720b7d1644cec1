// Package config loads and validates the Thoth service configuration:
// system settings, pipeline tuning, background-job tuning, and the model
// registry consumed by the LLM facade.
package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configDir string

	// System-wide infrastructure settings
	System *SystemConfig

	// Pipeline tuning
	Pipeline *PipelineConfig

	// Background job tuning
	Jobs *JobsConfig

	// Data retention tuning
	Retention *RetentionConfig

	// Named model specs referenced by workspace agent slots
	Models *ModelRegistry
}

// Stats contains statistics about the loaded configuration.
type Stats struct {
	Models int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Models != nil {
		s.Models = c.Models.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetModel retrieves a model spec by name. Convenience wrapper over
// Models.Get().
func (c *Config) GetModel(name string) (*ModelSpec, error) {
	return c.Models.Get(name)
}
