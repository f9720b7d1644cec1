package config

// Dialect identifies a supported target database engine.
type Dialect string

const (
	DialectPostgreSQL Dialect = "PostgreSQL"
	DialectMySQL      Dialect = "MySQL"
	DialectMariaDB    Dialect = "MariaDB"
	DialectSQLite     Dialect = "SQLite"
	DialectSQLServer  Dialect = "SQLServer"
	DialectOracle     Dialect = "Oracle"
)

// IsValid checks if the dialect is in the supported set.
func (d Dialect) IsValid() bool {
	switch d {
	case DialectPostgreSQL, DialectMySQL, DialectMariaDB, DialectSQLite, DialectSQLServer, DialectOracle:
		return true
	default:
		return false
	}
}

// LLMProviderType identifies a supported LLM provider family.
type LLMProviderType string

const (
	ProviderOpenAI     LLMProviderType = "openai"
	ProviderAnthropic  LLMProviderType = "anthropic"
	ProviderGemini     LLMProviderType = "gemini"
	ProviderMistral    LLMProviderType = "mistral"
	ProviderOllama     LLMProviderType = "ollama"
	ProviderLlama      LLMProviderType = "llama"
	ProviderCodestral  LLMProviderType = "codestral"
	ProviderDeepSeek   LLMProviderType = "deepseek"
	ProviderLMStudio   LLMProviderType = "lmstudio"
	ProviderOpenRouter LLMProviderType = "openrouter"
	ProviderGroq       LLMProviderType = "groq"
)

// IsValid checks if the provider type is supported.
func (p LLMProviderType) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderMistral,
		ProviderOllama, ProviderLlama, ProviderCodestral, ProviderDeepSeek,
		ProviderLMStudio, ProviderOpenRouter, ProviderGroq:
		return true
	default:
		return false
	}
}

// IsLocal reports whether the provider runs on the user's machine and
// therefore needs a placeholder API key.
func (p LLMProviderType) IsLocal() bool {
	return p == ProviderOllama || p == ProviderLlama || p == ProviderLMStudio
}

// VectorBackend identifies a supported vector store engine.
type VectorBackend string

const (
	VectorBackendQdrant   VectorBackend = "Qdrant"
	VectorBackendChroma   VectorBackend = "Chroma"
	VectorBackendPGVector VectorBackend = "PGVector"
	VectorBackendMilvus   VectorBackend = "Milvus"
)

// IsValid checks if the vector backend is supported.
func (b VectorBackend) IsValid() bool {
	switch b {
	case VectorBackendQdrant, VectorBackendChroma, VectorBackendPGVector, VectorBackendMilvus:
		return true
	default:
		return false
	}
}

// FunctionalityLevel is the SQL generator capability tier.
type FunctionalityLevel string

const (
	LevelBasic    FunctionalityLevel = "Basic"
	LevelAdvanced FunctionalityLevel = "Advanced"
	LevelExpert   FunctionalityLevel = "Expert"
)

// IsValid checks if the level is in the escalation chain.
func (l FunctionalityLevel) IsValid() bool {
	return l == LevelBasic || l == LevelAdvanced || l == LevelExpert
}

// Next returns the next level in the BASIC→ADVANCED→EXPERT chain and whether
// a next level exists.
func (l FunctionalityLevel) Next() (FunctionalityLevel, bool) {
	switch l {
	case LevelBasic:
		return LevelAdvanced, true
	case LevelAdvanced:
		return LevelExpert, true
	default:
		return l, false
	}
}

// Rank returns the position of the level in the escalation chain, for
// monotonicity checks. Basic=0, Advanced=1, Expert=2.
func (l FunctionalityLevel) Rank() int {
	switch l {
	case LevelBasic:
		return 0
	case LevelAdvanced:
		return 1
	case LevelExpert:
		return 2
	default:
		return -1
	}
}
