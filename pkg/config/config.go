// Package config loads command configuration from the process
// environment using viper, applying the workflow's defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pagebotio/pagebot/pkg/schema"
)

// newEnvViper returns a viper instance bound to the given environment variables.
func newEnvViper(keys ...string) *viper.Viper {
	v := viper.New()
	for _, key := range keys {
		// BindEnv with an explicit name keeps the lookup case-sensitive.
		_ = v.BindEnv(key, key)
	}
	return v
}

// LoadAIConfig reads the inference caller configuration from the environment.
func LoadAIConfig() *schema.AIConfig {
	v := newEnvViper(
		EnvAIProvider,
		EnvAIAPIKey,
		EnvAIBaseURL,
		EnvAIModel,
		EnvAIMaxTokens,
		EnvSystemPromptFile,
		EnvUserPrompt,
	)
	v.SetDefault(EnvAIBaseURL, DefaultAIBaseURL)
	v.SetDefault(EnvAIModel, DefaultAIModel)
	v.SetDefault(EnvAIMaxTokens, DefaultAIMaxTokens)

	return &schema.AIConfig{
		Provider:         strings.ToLower(v.GetString(EnvAIProvider)),
		APIKey:           v.GetString(EnvAIAPIKey),
		BaseURL:          v.GetString(EnvAIBaseURL),
		Model:            v.GetString(EnvAIModel),
		MaxTokens:        v.GetInt(EnvAIMaxTokens),
		SystemPromptFile: v.GetString(EnvSystemPromptFile),
		UserPrompt:       v.GetString(EnvUserPrompt),
		RequestTimeout:   DefaultAITimeout,
	}
}

// LoadContentConfig reads the content extractor configuration from the environment.
func LoadContentConfig() *schema.ContentConfig {
	v := newEnvViper(
		EnvCrawlOutcome,
		EnvRawResponse,
		EnvFallbackURL,
		EnvFallbackTitle,
		EnvMaxContentLength,
	)
	v.SetDefault(EnvMaxContentLength, DefaultMaxContent)

	return &schema.ContentConfig{
		Outcome:       v.GetString(EnvCrawlOutcome),
		RawResponse:   v.GetString(EnvRawResponse),
		ResultFile:    DefaultResultFile,
		FallbackURL:   v.GetString(EnvFallbackURL),
		FallbackTitle: v.GetString(EnvFallbackTitle),
		MaxLength:     v.GetInt(EnvMaxContentLength),
	}
}

// LoadCrawlerConfig reads the task poller configuration from the environment.
func LoadCrawlerConfig() *schema.CrawlerConfig {
	v := newEnvViper(EnvCrawlerBaseURL)
	v.SetDefault(EnvCrawlerBaseURL, DefaultCrawlerBaseURL)

	return &schema.CrawlerConfig{
		BaseURL:        v.GetString(EnvCrawlerBaseURL),
		SubmitFile:     DefaultSubmitFile,
		RequestTimeout: DefaultCrawlerTimeout,
	}
}
