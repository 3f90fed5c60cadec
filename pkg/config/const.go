package config

import "time"

// Environment variables read by the commands.
const (
	EnvAIProvider       = "AI_PROVIDER"
	EnvAIAPIKey         = "AI_API_KEY"
	EnvAIBaseURL        = "AI_BASE_URL"
	EnvAIModel          = "AI_MODEL"
	EnvAIMaxTokens      = "AI_MAX_TOKENS"
	EnvSystemPromptFile = "SYSTEM_PROMPT_FILE"
	EnvUserPrompt       = "USER_PROMPT"

	EnvCrawlOutcome     = "CRAWL_OUTCOME"
	EnvRawResponse      = "RAW_RESPONSE"
	EnvFallbackURL      = "FALLBACK_URL"
	EnvFallbackTitle    = "FALLBACK_TITLE"
	EnvMaxContentLength = "MAX_CONTENT_LENGTH"
	EnvCrawlerBaseURL   = "CRAWLER_BASE_URL"

	EnvGitHubToken  = "GH_TOKEN"
	EnvGitHubOutput = "GITHUB_OUTPUT"

	EnvLogsLevel = "PAGEBOT_LOGS_LEVEL"
)

// Defaults matching the CI workflow's conventions.
const (
	DefaultAIBaseURL      = "https://api.openai.com/v1"
	DefaultAIModel        = "gpt-3.5-turbo"
	DefaultAIMaxTokens    = 2000
	DefaultAITimeout      = 60 * time.Second
	DefaultMaxContent     = 6000
	DefaultCrawlerBaseURL = "http://localhost:11235"
	DefaultCrawlerTimeout = 10 * time.Second

	// Well-known temp files written by earlier pipeline steps.
	DefaultSubmitFile = "/tmp/crawl_submit_response.json"
	DefaultResultFile = "/tmp/crawl_result_response.json"
)
