// Package openai implements the chat-completion client for OpenAI and
// OpenAI-compatible APIs. The base URL is configurable, so the same
// client serves custom providers exposing the /chat/completions shape.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	errUtils "github.com/pagebotio/pagebot/errors"
	"github.com/pagebotio/pagebot/pkg/schema"
)

// DefaultTemperature is the sampling temperature sent with every request.
const DefaultTemperature = 0.7

// Client provides a simplified interface to OpenAI-compatible chat-completion APIs.
type Client struct {
	client *openai.Client
	config *schema.AIConfig
}

// NewClient creates a new client from the inference configuration.
// Extra request options are appended after the defaults, which lets
// tests point the client at a local server.
func NewClient(config *schema.AIConfig, opts ...option.RequestOption) (*Client, error) {
	if config.APIKey == "" {
		return nil, errUtils.ErrMissingAPIKey
	}

	options := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(config.BaseURL),
		// The workflow has its own fallback handling; a failed call
		// should surface immediately rather than retry.
		option.WithMaxRetries(0),
	}
	if config.RequestTimeout > 0 {
		options = append(options, option.WithRequestTimeout(config.RequestTimeout))
	}
	options = append(options, opts...)

	client := openai.NewClient(options...)

	return &Client{
		client: &client,
		config: config,
	}, nil
}

// SendMessage sends a system+user prompt pair and returns the response text.
func (c *Client) SendMessage(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       openai.ChatModel(c.config.Model),
		MaxTokens:   openai.Int(int64(c.config.MaxTokens)),
		Temperature: openai.Float(DefaultTemperature),
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", errUtils.ErrEmptyCompletion
	}

	return response.Choices[0].Message.Content, nil
}

// GetModel returns the configured model name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}
