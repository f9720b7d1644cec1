package config

import "time"

// PipelineConfig controls the SQL generation pipeline.
type PipelineConfig struct {
	// NumSQLCandidates is the number of SQL candidates generated in parallel
	// per attempt.
	NumSQLCandidates int `yaml:"num_sql_candidates"`

	// MaxParallelSQLs bounds the candidate-generation fan-out.
	MaxParallelSQLs int `yaml:"max_parallel_sqls"`

	// MaxParallelTests bounds the test-generation fan-out.
	MaxParallelTests int `yaml:"max_parallel_tests"`

	// CandidateTimeout is the per-candidate LLM call deadline.
	CandidateTimeout time.Duration `yaml:"candidate_timeout"`

	// PassThreshold is the minimum pass rate for a SILVER selection (Case C).
	PassThreshold float64 `yaml:"pass_threshold"`

	// MaxAttemptsPerLevel is the attempt budget at each functionality level
	// before escalation.
	MaxAttemptsPerLevel int `yaml:"max_attempts_per_level"`

	// EvaluatorTemperature is the fixed temperature for evaluator calls.
	EvaluatorTemperature float64 `yaml:"evaluator_temperature"`

	// TestReducerMinUnique is the unique-test count above which the reducer
	// agent runs (when more than one test generator is active).
	TestReducerMinUnique int `yaml:"test_reducer_min_unique"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		NumSQLCandidates:     12,
		MaxParallelSQLs:      12,
		MaxParallelTests:     3,
		CandidateTimeout:     20 * time.Second,
		PassThreshold:        0.9,
		MaxAttemptsPerLevel:  2,
		EvaluatorTemperature: 0.2,
		TestReducerMinUnique: 5,
	}
}

// JobsConfig controls the background job runner.
type JobsConfig struct {
	// CommentChunkSize is the number of tables/columns per LLM comment batch.
	CommentChunkSize int `yaml:"comment_chunk_size"`

	// UploadBatchSize is the number of documents per vector-store bulk add.
	UploadBatchSize int `yaml:"upload_batch_size"`

	// JobTimeout is the maximum duration of one background job.
	JobTimeout time.Duration `yaml:"job_timeout"`
}

// DefaultJobsConfig returns the built-in job runner defaults.
func DefaultJobsConfig() *JobsConfig {
	return &JobsConfig{
		CommentChunkSize: 10,
		UploadBatchSize:  50,
		JobTimeout:       30 * time.Minute,
	}
}

// RetentionConfig controls the background retention loop.
type RetentionConfig struct {
	// LogRetentionDays is how long ThothLog rows are kept.
	LogRetentionDays int `yaml:"log_retention_days"`

	// CleanupInterval is the period of the retention loop.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		LogRetentionDays: 90,
		CleanupInterval:  6 * time.Hour,
	}
}
