// Package ai selects and abstracts the chat-completion provider
// clients used by the inference caller.
package ai

import (
	"context"
	"fmt"

	errUtils "github.com/pagebotio/pagebot/errors"
	"github.com/pagebotio/pagebot/pkg/ai/anthropic"
	"github.com/pagebotio/pagebot/pkg/ai/openai"
	"github.com/pagebotio/pagebot/pkg/schema"
)

// Provider names accepted by ForProvider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderCustom    = "custom"
)

// Client defines the interface for AI clients.
type Client interface {
	// SendMessage sends a system+user prompt pair to the AI and returns the response text.
	SendMessage(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetMaxTokens returns the configured max tokens.
	GetMaxTokens() int
}

// ForProvider returns the client matching the configured provider.
// "custom" is any OpenAI-compatible API reachable at the configured
// base URL, so it shares the OpenAI client.
func ForProvider(config *schema.AIConfig) (Client, error) {
	switch config.Provider {
	case ProviderOpenAI, ProviderCustom:
		return openai.NewClient(config)
	case ProviderAnthropic:
		return anthropic.NewClient(config)
	default:
		return nil, fmt.Errorf("%w: '%s'. Supported: openai, anthropic, custom", errUtils.ErrUnsupportedProvider, config.Provider)
	}
}
