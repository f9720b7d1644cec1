package config

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// DBRoot is the base directory for file-backed databases and LSH indices.
	// SQLite databases live at {db_root}/{mode}_databases/{name}/{name}.sqlite.
	DBRoot string `yaml:"db_root"`

	// Mode selects the database root subtree (e.g. "dev", "prod").
	Mode string `yaml:"mode"`

	// WorkspaceLanguage is the language questions are expected in; the
	// translator rewrites questions detected in a different language.
	WorkspaceLanguage string `yaml:"workspace_language"`

	// RedisAddr is the optional address of the shared progress cache.
	// Empty means the in-memory tracker is used.
	RedisAddr string `yaml:"redis_addr"`

	// RedisPasswordEnv names the env var holding the Redis password.
	RedisPasswordEnv string `yaml:"redis_password_env"`

	// Embedding is the model spec used by the vector-store facade to embed
	// documents and queries.
	Embedding *ModelSpec `yaml:"embedding"`
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DBRoot:            "./data",
		Mode:              "dev",
		WorkspaceLanguage: "English",
	}
}
