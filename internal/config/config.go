// Package config loads the docqa configuration.
//
// Configuration comes from an optional TOML file with documented
// defaults for every tunable (chunk window size, score threshold,
// evidence limits, completion-service settings). The completion-service
// credential is never stored in the file: it is read from the
// GROQ_API_KEY environment variable, optionally populated from a .env
// file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// EnvAPIKey is the environment variable holding the completion-service
// credential.
const EnvAPIKey = "GROQ_API_KEY"

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Ingest    IngestConfig    `toml:"ingest"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	LLM       LLMConfig       `toml:"llm"`

	// APIKey is resolved from the environment, never from the file.
	APIKey string `toml:"-"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Port is the HTTP listen port.
	Port int `toml:"port"`
}

// IngestConfig configures document ingestion.
type IngestConfig struct {
	// ChunkSize is the chunk window size in words.
	ChunkSize int `toml:"chunk_size"`

	// WatchDir, when set, is a directory watched for new .txt files to
	// ingest automatically.
	WatchDir string `toml:"watch_dir"`
}

// RetrievalConfig configures the retrieval engine.
type RetrievalConfig struct {
	// ScoreThreshold is the minimum (exclusive) TF-IDF score.
	ScoreThreshold float64 `toml:"score_threshold"`

	// MaxEvidence is the maximum number of evidence chunks per question.
	MaxEvidence int `toml:"max_evidence"`

	// MinTermMatches is the distinct-term count required by the
	// minimum-term-match gate.
	MinTermMatches int `toml:"min_term_matches"`

	// ExtraStopwords extends the built-in stopword set.
	ExtraStopwords []string `toml:"extra_stopwords"`
}

// LLMConfig configures the completion service.
type LLMConfig struct {
	// BaseURL is the OpenAI-compatible API base URL.
	BaseURL string `toml:"base_url"`

	// Model is the chat model name.
	Model string `toml:"model"`

	// TimeoutSeconds bounds one completion request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond is the client-side rate limit.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// BurstSize is the rate limiter burst size.
	BurstSize int `toml:"burst_size"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 5000},
		Ingest: IngestConfig{ChunkSize: 500},
		Retrieval: RetrievalConfig{
			ScoreThreshold: 0.1,
			MaxEvidence:    3,
			MinTermMatches: 2,
		},
		LLM: LLMConfig{
			BaseURL:           "https://api.groq.com/openai/v1",
			Model:             "llama-3.3-70b-versatile",
			TimeoutSeconds:    15,
			RequestsPerSecond: 2.0,
			BurstSize:         4,
		},
	}
}

// Load reads the configuration file at path, if it exists, over the
// defaults, then resolves the API key from the environment. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults only
		case err != nil:
			return cfg, fmt.Errorf("reading config file: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	// .env is a developer convenience; absence is fine.
	_ = godotenv.Load()
	cfg.APIKey = os.Getenv(EnvAPIKey)

	return cfg, nil
}

// Timeout returns the completion request timeout as a duration.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
