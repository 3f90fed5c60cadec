// Package anthropic implements the chat-completion client for the
// Anthropic Messages API. The system prompt travels as a top-level
// request field rather than a message.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	errUtils "github.com/pagebotio/pagebot/errors"
	"github.com/pagebotio/pagebot/pkg/schema"
)

// Client provides a simplified interface to the Anthropic API.
type Client struct {
	client *anthropic.Client
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
		// The workflow has its own fallback handling; a failed call
		// should surface immediately rather than retry.
		option.WithMaxRetries(0),
	}
	if config.RequestTimeout > 0 {
		options = append(options, option.WithRequestTimeout(config.RequestTimeout))
	}
	options = append(options, opts...)

	client := anthropic.NewClient(options...)

	return &Client{
		client: &client,
		config: config,
	}, nil
}

// SendMessage sends a system+user prompt pair and returns the response text.
func (c *Client) SendMessage(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API request failed: %w", err)
	}

	// Concatenate the text blocks (use indexing to avoid copying large structs).
	var responseText string
	for i := range response.Content {
		if response.Content[i].Type == "text" {
			responseText += response.Content[i].Text
		}
	}

	if responseText == "" {
		return "", errUtils.ErrEmptyCompletion
	}

	return responseText, nil
}

// GetModel returns the configured model name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}
