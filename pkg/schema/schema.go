// Package schema defines the configuration structs shared by the
// pagebot commands. All values are sourced from the CI environment;
// see pkg/config for loading.
package schema

import "time"

// AIConfig holds the configuration for the inference caller.
type AIConfig struct {
	// Provider selects the API shape: "openai", "anthropic" or "custom".
	Provider string
	// APIKey authenticates against the selected provider.
	APIKey string
	// BaseURL is the API base for OpenAI-compatible providers.
	BaseURL string
	// Model is the model name sent with every request.
	Model string
	// MaxTokens is the response token budget.
	MaxTokens int
	// SystemPromptFile is the path of the file holding the system prompt.
	SystemPromptFile string
	// UserPrompt is the user message. Empty means read from stdin.
	UserPrompt string
	// RequestTimeout bounds a single API call.
	RequestTimeout time.Duration
}

// ContentConfig holds the configuration for the content extractor.
type ContentConfig struct {
	// Outcome is the crawl step outcome as reported by the pipeline ("success" or not).
	Outcome string
	// RawResponse is the crawl result JSON payload. When empty the
	// extractor falls back to reading ResultFile.
	RawResponse string
	// ResultFile is the well-known temp file the crawl step writes its result to.
	ResultFile string
	// FallbackURL and FallbackTitle feed the placeholder text used when
	// no content can be extracted.
	FallbackURL   string
	FallbackTitle string
	// MaxLength is the content character budget before truncation.
	MaxLength int
}

// CrawlerConfig holds the configuration for the task poller.
type CrawlerConfig struct {
	// BaseURL is the crawler service address.
	BaseURL string
	// SubmitFile is the well-known temp file holding the crawl submission response.
	SubmitFile string
	// RequestTimeout bounds a single status request.
	RequestTimeout time.Duration
}

// Backoff strategies supported by the retry executor.
const (
	BackoffConstant    = "constant"
	BackoffLinear      = "linear"
	BackoffExponential = "exponential"
)

// RetryConfig controls the retry executor in pkg/retry.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BackoffStrategy is one of BackoffConstant, BackoffLinear, BackoffExponential.
	BackoffStrategy string
	// InitialDelay is the pause before the second attempt.
	InitialDelay time.Duration
	// MaxDelay caps the computed delay.
	MaxDelay time.Duration
	// MaxElapsedTime bounds the whole retry loop.
	MaxElapsedTime time.Duration
	// Multiplier grows the delay for the exponential strategy.
	Multiplier float64
	// RandomJitter enables +/-10% jitter on the computed delay.
	RandomJitter bool
}
