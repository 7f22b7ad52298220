package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The heuristic constants (fuzzy cutoff, max tables) are carried over from
// the deployed assistant as-is; there is no principled derivation behind
// them, so they are configurable rather than re-derived.
const (
	// DefaultBaseURL is the origin of the museum website. All directory
	// entries and root-relative resources resolve against this URL.
	DefaultBaseURL = "https://www.sciencecenter.go.kr"

	// DefaultTimeout is the per-request fetch timeout. There is no retry:
	// a single failed attempt yields an error result immediately, so the
	// bound stays short to keep the chat responsive.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies the assistant in HTTP requests so the
	// site operators can tell bot traffic apart in their logs.
	DefaultUserAgent = "GNSM-AI-Docent/1.0"

	// DefaultMaxTables limits how many tables are converted per page.
	// Museum pages rarely carry more than a handful; the cap protects
	// against pathological markup.
	DefaultMaxTables = 10

	// DefaultFuzzyCutoff is the minimum similarity ratio for a guessed
	// directory match. Below this, a query with no substring match is
	// treated as unmatchable.
	DefaultFuzzyCutoff = 0.6

	// DefaultModel is the chat completion model used for summarization.
	DefaultModel = "gpt-4o-mini"

	// DefaultTemperature keeps generation deterministic; the model only
	// reformats facts, it never invents content.
	DefaultTemperature = 0.0

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB is generous for museum pages while preventing memory exhaustion.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// DefaultVerifyConcurrency bounds the concurrent requests issued by
	// the directory verification command.
	DefaultVerifyConcurrency = 8

	// AppName is the application name used for XDG directory paths.
	AppName = "docent"

	// APIKeyEnv is the environment variable holding the OpenAI API key.
	APIKeyEnv = "OPENAI_API_KEY"
)

// Config holds all runtime options for the docent assistant.
// It is populated from defaults, an optional YAML file, and CLI flags, then
// passed through the application by dependency injection rather than global
// state.
type Config struct {
	// BaseURL is the museum website origin in "scheme://host" form.
	BaseURL string

	// Timeout is the per-request timeout for page fetches.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// MaxTables limits how many tables the extractor converts per page.
	MaxTables int

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// FuzzyCutoff is the acceptance threshold for a guessed match, in [0,1].
	FuzzyCutoff float64

	// Model is the chat completion model name.
	Model string

	// Temperature is the sampling temperature for generation.
	Temperature float64

	// APIKey is the OpenAI API key. Loaded from APIKeyEnv when empty.
	APIKey string

	// Instructions are optional operator-supplied instructions appended to
	// the model's system messages. They may only refine the answer style;
	// the grounding rules always take precedence.
	Instructions string

	// HistoryDir is the directory for the conversation history database.
	// When empty, history is not persisted.
	HistoryDir string

	// DirectoryPath optionally overrides the embedded page directory with
	// a user-supplied YAML file.
	DirectoryPath string

	// VerifyConcurrency bounds concurrent requests for directory checks.
	VerifyConcurrency int

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig creates a Config with default values. The API key is read from
// the environment so that it never has to appear in a config file.
func NewConfig() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		MaxTables:         DefaultMaxTables,
		MaxBodySize:       DefaultMaxBodySize,
		FuzzyCutoff:       DefaultFuzzyCutoff,
		Model:             DefaultModel,
		Temperature:       DefaultTemperature,
		APIKey:            os.Getenv(APIKeyEnv),
		HistoryDir:        XDGDataDir(),
		VerifyConcurrency: DefaultVerifyConcurrency,
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoBaseURL
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.FuzzyCutoff < 0 || c.FuzzyCutoff > 1 {
		return ErrInvalidFuzzyCutoff
	}
	if c.MaxTables <= 0 {
		return ErrInvalidMaxTables
	}
	if c.VerifyConcurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}

// XDGDataDir returns the XDG data directory for docent.
// On Linux: ~/.local/share/docent
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
