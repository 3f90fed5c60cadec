package errors

import "github.com/cockroachdb/errors"

// Sentinel errors for the inference caller.
var (
	ErrMissingProvider         = errors.New("AI provider not specified")
	ErrMissingAPIKey           = errors.New("AI API key not specified")
	ErrMissingSystemPromptFile = errors.New("system prompt file not specified")
	ErrEmptySystemPrompt       = errors.New("system prompt is empty")
	ErrEmptyUserPrompt         = errors.New("no user prompt provided")
	ErrUnsupportedProvider     = errors.New("unsupported AI provider")
	ErrInferenceFailed         = errors.New("AI inference failed")
	ErrEmptyCompletion         = errors.New("no completion choices returned")
)

// Sentinel errors for the comment poster.
var (
	ErrCommentBodyFileNotFound = errors.New("comment body file not found")
	ErrMissingGitHubToken      = errors.New("GH_TOKEN environment variable not set")
	ErrCommentFailed           = errors.New("failed to post issue comment")
)

// Sentinel errors for the crawler poller and content extractor.
var (
	ErrHTTPRequestFailed  = errors.New("HTTP request failed")
	ErrSubmitFileNotFound = errors.New("crawl submit response file not found")
	ErrEmptySubmitFile    = errors.New("empty response from crawl submit")
	ErrCrawlNotSuccessful = errors.New("crawl request was not successful")
	ErrTaskIDNotFound     = errors.New("no task_id found in crawl submit response")
	ErrTaskFailed         = errors.New("crawl task failed")
	ErrTaskStillPending   = errors.New("crawl task still pending")
	ErrTaskTimeout        = errors.New("crawl task did not complete before timeout")
)
